package session

import (
	"errors"
	"fmt"
	"math/rand"

	"blackjack-engine/internal/config"
	"blackjack-engine/internal/rng"
	"blackjack-engine/internal/util"
	"blackjack-engine/pkg/blackjack"
	"blackjack-engine/pkg/deck"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is a single blackjack table: one shoe, its players and the dealer.
// A Session is not safe for concurrent use; run one Session per table.
type Session struct {
	ID string

	cfg        config.Config
	logger     logrus.FieldLogger
	controller *blackjack.Controller

	shoe    *deck.Deck
	players []*blackjack.Player
	dealer  *blackjack.Dealer

	nextSeed int64
	rounds   int
	shoes    int
}

// New returns a new session seated with the configured players
// If no players are configured, a single player with a random name is seated
func New(cfg config.Config, logger logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rng.NewSeed(rng.Crypto{})
	}

	names := cfg.Players
	if len(names) == 0 {
		names = []string{util.GetRandomName(rand.New(rand.NewSource(seed)))} // nolint:gosec
	}

	players := make([]*blackjack.Player, len(names))
	for i, name := range names {
		players[i] = blackjack.NewPlayer(int64(i+1), name, cfg.StartingBalance)
	}

	id := uuid.New().String()
	logger = logger.WithField("session", id)

	s := &Session{
		ID:         id,
		cfg:        cfg,
		logger:     logger,
		controller: blackjack.NewController(logger),
		players:    players,
		dealer:     blackjack.NewDealer(),
		nextSeed:   seed,
	}

	if err := s.newShoe(); err != nil {
		return nil, err
	}

	return s, nil
}

// Players returns the seated players
func (s *Session) Players() []*blackjack.Player {
	return s.players
}

// Dealer returns the dealer
func (s *Session) Dealer() *blackjack.Dealer {
	return s.dealer
}

// Shoe returns the shoe currently in use
func (s *Session) Shoe() *deck.Deck {
	return s.shoe
}

// newShoe replaces the shoe with a freshly shuffled one
// Each shoe uses the next seed so that a whole session can be replayed from the first seed
func (s *Session) newShoe() error {
	shoe, err := deck.New(s.cfg.Decks)
	if err != nil {
		return err
	}

	shoe.Shuffle(s.nextSeed)
	s.logger.WithFields(logrus.Fields{
		"seed":  s.nextSeed,
		"decks": s.cfg.Decks,
		"hash":  shoe.HashCode(),
	}).Info("new shoe")

	s.shoe = shoe
	s.nextSeed++
	s.shoes++
	return nil
}

// PlayRound plays a complete round: bets, the deal, every player's turn, the dealer and settlement.
// When the shoe runs out mid-round, a fresh shoe is brought in and the round carries on.
// Any other error abandons the round and hands every bet back, so the next round starts clean.
func (s *Session) PlayRound(strategy Strategy) ([]blackjack.Result, error) {
	if s.shoe.Remaining() < s.cfg.ReshuffleBelow {
		if err := s.newShoe(); err != nil {
			return nil, err
		}
	}

	results, err := s.playRound(strategy)
	if err != nil {
		s.controller.CancelRound(s.players, s.dealer)
		return nil, err
	}

	s.rounds++
	return results, nil
}

func (s *Session) playRound(strategy Strategy) ([]blackjack.Result, error) {
	if err := s.takeBets(strategy); err != nil {
		return nil, err
	}

	err := s.controller.DealInitial(s.shoe, s.players, s.dealer)
	if errors.Is(err, blackjack.ErrEndOfDeck) {
		if err := s.newShoe(); err != nil {
			return nil, err
		}

		err = s.controller.DealInitial(s.shoe, s.players, s.dealer)
	}

	if err != nil {
		return nil, err
	}

	upCard, _ := s.dealer.UpCard()
	for _, p := range s.players {
		if err := s.playTurn(strategy, p, upCard); err != nil {
			return nil, err
		}
	}

	if s.anyStanding() {
		if err := s.playDealer(); err != nil {
			return nil, err
		}
	}

	return s.controller.SettleBets(s.players, s.dealer)
}

// takeBets collects every bet before placing any, so a bad bet leaves no one half-committed
func (s *Session) takeBets(strategy Strategy) error {
	bets := make([]int, len(s.players))
	seated := 0
	for i, p := range s.players {
		if p.Balance < s.cfg.MinBet {
			continue
		}

		bet, err := strategy.Bet(p, s.cfg.MinBet)
		if err != nil {
			return err
		}

		if bet > 0 && bet < s.cfg.MinBet {
			return BetError{PlayerID: p.ID, Bet: bet, MinBet: s.cfg.MinBet}
		}

		bets[i] = bet
		if bet > 0 {
			seated++
		}
	}

	if seated == 0 {
		return ErrTableEmpty
	}

	for i, p := range s.players {
		if bets[i] == 0 {
			if err := p.SitOut(); err != nil {
				return fmt.Errorf("player %d: %w", p.ID, err)
			}

			continue
		}

		if err := blackjack.PlaceBet(p, bets[i]); err != nil {
			return fmt.Errorf("player %d: %w", p.ID, err)
		}
	}

	return nil
}

func (s *Session) playTurn(strategy Strategy, p *blackjack.Player, upCard deck.Card) error {
	for p.Active && (p.State == blackjack.PlayerStateDealt || p.State == blackjack.PlayerStateHitting) {
		if p.Hand.Value() == deck.Blackjack {
			return s.controller.Stand(p)
		}

		hit, err := strategy.Hit(p, upCard)
		if err != nil {
			return err
		}

		if !hit {
			return s.controller.Stand(p)
		}

		_, err = s.controller.PlayerHit(s.shoe, p)
		if errors.Is(err, blackjack.ErrEndOfDeck) {
			if err := s.newShoe(); err != nil {
				return err
			}

			_, err = s.controller.PlayerHit(s.shoe, p)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Session) playDealer() error {
	for {
		err := s.controller.DealerPlay(s.shoe, s.dealer)
		if !errors.Is(err, blackjack.ErrEndOfDeck) {
			return err
		}

		if err := s.newShoe(); err != nil {
			return err
		}
	}
}

// anyStanding returns true if at least one player is still in the round against the dealer
func (s *Session) anyStanding() bool {
	for _, p := range s.players {
		if p.State == blackjack.PlayerStateStanding {
			return true
		}
	}

	return false
}

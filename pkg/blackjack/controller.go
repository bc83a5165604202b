package blackjack

import (
	"fmt"

	"blackjack-engine/pkg/deck"
	"github.com/sirupsen/logrus"
)

// dealerStandsOn is the total the dealer stops drawing at, soft or hard
const dealerStandsOn = 17

// Controller runs the steps of a round.
// It holds no game state: the shoe, players and dealer belong to the caller
// and are passed in on every call.
type Controller struct {
	logger logrus.FieldLogger
}

// NewController returns a new round controller
func NewController(logger logrus.FieldLogger) *Controller {
	return &Controller{
		logger: logger,
	}
}

// DealInitial clears every hand and deals two cards to each active player and the dealer.
// Cards go out one at a time: each active player in order, again for the second card,
// then two to the dealer.
// If the shoe cannot cover the whole deal, ErrEndOfDeck is returned and nothing is changed.
// The previous round must have been settled first.
func (c *Controller) DealInitial(shoe *deck.Deck, players []*Player, dealer *Dealer) error {
	if dealer.State != DealerStateWaiting {
		return fmt.Errorf("dealer (%s): %w", dealer.State, ErrRoundInProgress)
	}

	active := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.State.inRound() {
			return fmt.Errorf("player %d (%s): %w", p.ID, p.State, ErrRoundInProgress)
		}

		if !p.Active {
			continue
		}

		if p.Bet <= 0 {
			return fmt.Errorf("player %d: %w", p.ID, ErrNoBet)
		}

		active = append(active, p)
	}

	if len(active) == 0 {
		return ErrNoActivePlayers
	}

	if need := 2*len(active) + 2; !shoe.CanDraw(need) {
		return fmt.Errorf("deal needs %d cards, %d remaining: %w", need, shoe.Remaining(), ErrEndOfDeck)
	}

	for _, p := range players {
		p.Hand.Clear()
	}
	dealer.Hand.Clear()

	for pass := 0; pass < 2; pass++ {
		for _, p := range active {
			p.Hand.AddCard(c.mustDraw(shoe))
		}
	}

	dealer.Hand.AddCard(c.mustDraw(shoe))
	dealer.Hand.AddCard(c.mustDraw(shoe))
	dealer.State = DealerStateDealt

	for _, p := range active {
		p.State = PlayerStateDealt
		c.logger.WithFields(logrus.Fields{
			"player": p.ID,
			"hand":   p.Hand.String(),
			"value":  p.Hand.Value(),
		}).Debug("dealt")
	}

	c.logger.WithFields(logrus.Fields{
		"players":   len(active),
		"upCard":    dealer.Hand[0].String(),
		"remaining": shoe.Remaining(),
	}).Info("initial deal complete")

	return nil
}

// mustDraw must only be called after checking CanDraw()
func (c *Controller) mustDraw(shoe *deck.Deck) deck.Card {
	card, err := shoe.Draw()
	if err != nil {
		panic(fmt.Sprintf("inconsistent state, draw failed after CanDraw(): %v", err))
	}

	return card
}

// PlayerHit draws one card for the player.
// If the card busts the player, the player is made inactive by this same call.
func (c *Controller) PlayerHit(shoe *deck.Deck, p *Player) (deck.Card, error) {
	if !p.Active || !p.State.canHit() {
		return deck.Card{}, fmt.Errorf("player %d (%s): %w", p.ID, p.State, ErrPlayerNotActive)
	}

	card, err := shoe.Draw()
	if err != nil {
		return deck.Card{}, err
	}

	p.Hand.AddCard(card)
	logger := c.logger.WithFields(logrus.Fields{
		"player": p.ID,
		"card":   card.String(),
		"value":  p.Hand.Value(),
	})

	if p.Hand.IsBust() {
		p.Active = false
		p.State = PlayerStateBusted
		logger.Info("player busted")
		return card, nil
	}

	p.State = PlayerStateHitting
	logger.Debug("player hit")
	return card, nil
}

// Stand ends the player's turn
func (c *Controller) Stand(p *Player) error {
	if !p.Active || !p.State.canHit() {
		return fmt.Errorf("player %d (%s): %w", p.ID, p.State, ErrPlayerNotActive)
	}

	p.State = PlayerStateStanding
	c.logger.WithFields(logrus.Fields{
		"player": p.ID,
		"value":  p.Hand.Value(),
	}).Debug("player stands")

	return nil
}

// DealerPlay draws for the dealer until the hand is worth 17 or more.
// A soft 17 stands the same as a hard 17.
// If the shoe runs out, ErrEndOfDeck is returned and the dealer is left playing,
// so calling DealerPlay again with a fresh shoe picks up where it stopped.
func (c *Controller) DealerPlay(shoe *deck.Deck, dealer *Dealer) error {
	if dealer.State != DealerStateDealt && dealer.State != DealerStatePlaying {
		return fmt.Errorf("dealer (%s): %w", dealer.State, ErrDealerNotReady)
	}

	dealer.State = DealerStatePlaying
	for dealer.Hand.Value() < dealerStandsOn {
		card, err := shoe.Draw()
		if err != nil {
			return err
		}

		dealer.Hand.AddCard(card)
		c.logger.WithFields(logrus.Fields{
			"card":  card.String(),
			"value": dealer.Hand.Value(),
		}).Debug("dealer hit")
	}

	dealer.State = DealerStateFinished
	c.logger.WithFields(logrus.Fields{
		"hand":  dealer.Hand.String(),
		"value": dealer.Hand.Value(),
		"bust":  dealer.Hand.IsBust(),
	}).Info("dealer finished")

	return nil
}

// CancelRound abandons the round in progress. Every stake goes back to its player
// and the table is left ready for the next round's bets.
func (c *Controller) CancelRound(players []*Player, dealer *Dealer) {
	for _, p := range players {
		if p.Bet > 0 {
			p.Balance += p.Bet
			c.logger.WithFields(logrus.Fields{
				"player":  p.ID,
				"bet":     p.Bet,
				"balance": p.Balance,
			}).Info("bet refunded")
		}

		p.Bet = 0
		p.Active = true
		p.State = PlayerStateBetting
	}

	dealer.State = DealerStateWaiting
}

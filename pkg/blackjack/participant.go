package blackjack

import "blackjack-engine/pkg/deck"

// Player is a seat at the table with a bankroll
type Player struct {
	ID      int64       `json:"id" yaml:"id"`
	Name    string      `json:"name" yaml:"name"`
	Hand    deck.Hand   `json:"hand" yaml:"hand"`
	Balance int         `json:"balance" yaml:"balance"`
	Bet     int         `json:"bet" yaml:"bet"`
	Active  bool        `json:"active" yaml:"active"`
	State   PlayerState `json:"state" yaml:"state"`
}

// NewPlayer returns a new player ready to bet
func NewPlayer(id int64, name string, balance int) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Hand:    make(deck.Hand, 0, 8),
		Balance: balance,
		Active:  true,
		State:   PlayerStateBetting,
	}
}

// SitOut removes the player from the upcoming round
// The player is back in after the round is settled
func (p *Player) SitOut() error {
	if p.State != PlayerStateBetting && p.State != PlayerStateSettled {
		return ErrBettingClosed
	}

	if p.Bet > 0 {
		return ErrBetAlreadyPlaced
	}

	p.Active = false
	p.State = PlayerStateBetting
	return nil
}

// Dealer is the house. It has a hand and nothing else to lose.
type Dealer struct {
	Hand  deck.Hand   `json:"hand" yaml:"hand"`
	State DealerState `json:"state" yaml:"state"`
}

// NewDealer returns a new dealer
func NewDealer() *Dealer {
	return &Dealer{
		Hand:  make(deck.Hand, 0, 8),
		State: DealerStateWaiting,
	}
}

// UpCard returns the dealer's face-up card
// Returns false if the dealer has not been dealt yet
func (d *Dealer) UpCard() (deck.Card, bool) {
	if len(d.Hand) == 0 {
		return deck.Card{}, false
	}

	return d.Hand[0], true
}

package session

import (
	"blackjack-engine/pkg/blackjack"
	"blackjack-engine/pkg/deck"
)

// Strategy makes the decisions a seated player would make
type Strategy interface {
	// Bet returns how much the player wants to bet this round. Zero sits the player out.
	Bet(p *blackjack.Player, minBet int) (int, error)

	// Hit returns true if the player wants another card
	Hit(p *blackjack.Player, dealerUp deck.Card) (bool, error)
}

// MimicDealer bets the table minimum and plays like the dealer: hit below 17
type MimicDealer struct{}

// Bet bets the minimum while the player can cover it
func (MimicDealer) Bet(p *blackjack.Player, minBet int) (int, error) {
	if p.Balance < minBet {
		return 0, nil
	}

	return minBet, nil
}

// Hit draws on anything under 17
func (MimicDealer) Hit(p *blackjack.Player, _ deck.Card) (bool, error) {
	return p.Hand.Value() < 17, nil
}

package blackjack

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Outcome is how a player's hand finished against the dealer
type Outcome string

// Outcome constants
const (
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeWin       Outcome = "win"
	OutcomePush      Outcome = "push"
	OutcomeLose      Outcome = "lose"
	OutcomeBust      Outcome = "bust"
)

// Result is the settlement of a single player's bet
type Result struct {
	PlayerID    int64   `json:"playerId" yaml:"playerId"`
	Outcome     Outcome `json:"outcome" yaml:"outcome"`
	Bet         int     `json:"bet" yaml:"bet"`
	Payout      int     `json:"payout" yaml:"payout"`
	Net         int     `json:"net" yaml:"net"`
	PlayerValue int     `json:"playerValue" yaml:"playerValue"`
	DealerValue int     `json:"dealerValue" yaml:"dealerValue"`
}

// blackjackPayout is 3:2, rounded down
func blackjackPayout(bet int) int {
	return bet * 3 / 2
}

// settle decides the outcome for one hand and returns what is paid back to the player,
// stake included
func settle(p *Player, dealer *Dealer) (Outcome, int) {
	if p.Hand.IsBust() {
		return OutcomeBust, 0
	}

	dealerBlackjack := dealer.Hand.IsBlackjack()
	if p.Hand.IsBlackjack() {
		if dealerBlackjack {
			return OutcomePush, p.Bet
		}

		return OutcomeBlackjack, p.Bet + blackjackPayout(p.Bet)
	}

	if dealer.Hand.IsBust() {
		return OutcomeWin, p.Bet * 2
	}

	playerValue, dealerValue := p.Hand.Value(), dealer.Hand.Value()
	switch {
	case playerValue > dealerValue:
		return OutcomeWin, p.Bet * 2
	case playerValue == dealerValue:
		return OutcomePush, p.Bet
	}

	return OutcomeLose, 0
}

// SettleBets pays out every player that was dealt into the round and resets
// them for the next one. Each player is settled on their own against the dealer.
// This is the only place a player's balance goes up.
// The dealer must have finished drawing, unless no player is left standing against it.
func (c *Controller) SettleBets(players []*Player, dealer *Dealer) ([]Result, error) {
	if dealer.State == DealerStateWaiting || len(dealer.Hand) < 2 {
		return nil, ErrRoundNotDealt
	}

	if dealer.State == DealerStatePlaying {
		return nil, fmt.Errorf("dealer (%s): %w", dealer.State, ErrDealerNotReady)
	}

	for _, p := range players {
		if p.State.canHit() {
			return nil, fmt.Errorf("player %d (%s): %w", p.ID, p.State, ErrRoundInProgress)
		}

		if p.State == PlayerStateStanding && dealer.State != DealerStateFinished {
			return nil, fmt.Errorf("dealer (%s): %w", dealer.State, ErrDealerNotReady)
		}
	}

	results := make([]Result, 0, len(players))
	for _, p := range players {
		if !p.State.inRound() {
			// sat out, nothing to settle
			p.Active = true
			continue
		}

		outcome, payout := settle(p, dealer)
		result := Result{
			PlayerID:    p.ID,
			Outcome:     outcome,
			Bet:         p.Bet,
			Payout:      payout,
			Net:         payout - p.Bet,
			PlayerValue: p.Hand.Value(),
			DealerValue: dealer.Hand.Value(),
		}

		p.Balance += payout
		p.Bet = 0
		p.Active = true
		p.State = PlayerStateSettled
		results = append(results, result)

		c.logger.WithFields(logrus.Fields{
			"player":  p.ID,
			"outcome": outcome,
			"net":     result.Net,
			"balance": p.Balance,
		}).Info("bet settled")
	}

	dealer.State = DealerStateWaiting
	return results, nil
}

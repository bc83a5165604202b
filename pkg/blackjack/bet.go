package blackjack

// PlaceBet moves amount from the player's balance into their bet for the round.
// The engine does not enforce a balance floor; that is left to the caller.
func PlaceBet(p *Player, amount int) error {
	if amount <= 0 {
		return ErrInvalidBet
	}

	if !p.Active {
		return ErrPlayerNotActive
	}

	if p.State != PlayerStateBetting && p.State != PlayerStateSettled {
		return ErrBettingClosed
	}

	if p.Bet > 0 {
		return ErrBetAlreadyPlaced
	}

	p.Balance -= amount
	p.Bet = amount
	p.State = PlayerStateBetting
	return nil
}

package session

import "errors"

// PlayerSummary is a player's standing at the end of a session
type PlayerSummary struct {
	ID      int64  `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Balance int    `json:"balance" yaml:"balance"`
	Net     int    `json:"net" yaml:"net"`
}

// Summary describes a session so far
type Summary struct {
	Session string          `json:"session" yaml:"session"`
	Rounds  int             `json:"rounds" yaml:"rounds"`
	Shoes   int             `json:"shoes" yaml:"shoes"`
	Players []PlayerSummary `json:"players" yaml:"players"`
}

// Summary returns the balances of every player along with how many rounds and shoes were used
func (s *Session) Summary() Summary {
	players := make([]PlayerSummary, len(s.players))
	for i, p := range s.players {
		// a bet still on the table belongs to the player until the round settles
		balance := p.Balance + p.Bet
		players[i] = PlayerSummary{
			ID:      p.ID,
			Name:    p.Name,
			Balance: balance,
			Net:     balance - s.cfg.StartingBalance,
		}
	}

	return Summary{
		Session: s.ID,
		Rounds:  s.rounds,
		Shoes:   s.shoes,
		Players: players,
	}
}

// Simulate plays up to rounds rounds with the strategy.
// It stops early without an error once nobody can afford to bet.
func (s *Session) Simulate(strategy Strategy, rounds int) (Summary, error) {
	for i := 0; i < rounds; i++ {
		if _, err := s.PlayRound(strategy); err != nil {
			if errors.Is(err, ErrTableEmpty) {
				s.logger.WithField("round", s.rounds).Info("table is empty")
				break
			}

			return s.Summary(), err
		}
	}

	return s.Summary(), nil
}

package session

import (
	"errors"
	"fmt"
)

// ErrTableEmpty is returned when nobody bets in a round
var ErrTableEmpty = errors.New("no players left at the table")

// ErrNoPlayers is returned when a session is created without any seats
var ErrNoPlayers = errors.New("session needs at least one player")

// BetError is returned when a strategy bets less than the table minimum
type BetError struct {
	PlayerID int64
	Bet      int
	MinBet   int
}

func (b BetError) Error() string {
	return fmt.Sprintf("player %d bet %d, the minimum is %d", b.PlayerID, b.Bet, b.MinBet)
}

package blackjack

// PlayerState is where a player is within the current round
type PlayerState string

// PlayerState constants
const (
	// PlayerStateBetting is before the cards are dealt
	PlayerStateBetting PlayerState = "betting"

	// PlayerStateDealt means the player has their first two cards
	PlayerStateDealt PlayerState = "dealt"

	// PlayerStateHitting means the player has taken at least one card and is under 22
	PlayerStateHitting PlayerState = "hitting"

	// PlayerStateStanding means the player is done drawing
	PlayerStateStanding PlayerState = "standing"

	// PlayerStateBusted means the player went over 21
	PlayerStateBusted PlayerState = "busted"

	// PlayerStateSettled means the bet was paid out and the player has not bet again yet
	PlayerStateSettled PlayerState = "settled"
)

// inRound returns true if the player was dealt into the current round
func (s PlayerState) inRound() bool {
	switch s {
	case PlayerStateDealt, PlayerStateHitting, PlayerStateStanding, PlayerStateBusted:
		return true
	}

	return false
}

// canHit returns true if the player may still draw
func (s PlayerState) canHit() bool {
	return s == PlayerStateDealt || s == PlayerStateHitting
}

// DealerState is where the dealer is within the current round
type DealerState string

// DealerState constants
const (
	DealerStateWaiting  DealerState = "waiting"
	DealerStateDealt    DealerState = "dealt"
	DealerStatePlaying  DealerState = "playing"
	DealerStateFinished DealerState = "finished"
)

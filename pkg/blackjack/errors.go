package blackjack

import (
	"errors"

	"blackjack-engine/pkg/deck"
)

// ErrEndOfDeck is returned when the shoe runs out of cards mid-round.
// The caller decides whether to continue on a fresh shoe or abandon the round.
var ErrEndOfDeck = deck.ErrEndOfDeck

// ErrInvalidBet is returned when a bet is zero or negative
var ErrInvalidBet = errors.New("bet must be > 0")

// ErrBetAlreadyPlaced is returned when a player tries to bet twice in a round
var ErrBetAlreadyPlaced = errors.New("bet has already been placed")

// ErrBettingClosed is returned when a bet is placed after the cards are dealt
var ErrBettingClosed = errors.New("betting is closed for this round")

// ErrNoBet is returned when an active player has not placed a bet before the deal
var ErrNoBet = errors.New("active player has not placed a bet")

// ErrNoActivePlayers is returned when a deal is attempted without any active players
var ErrNoActivePlayers = errors.New("need at least one active player")

// ErrPlayerNotActive is returned when an inactive player tries to act
var ErrPlayerNotActive = errors.New("player is not active in this round")

// ErrDealerNotReady is returned when the dealer is asked to play before the deal
// or after it has already finished, and when bets are settled against a dealer
// that has not finished drawing
var ErrDealerNotReady = errors.New("dealer cannot play from this state")

// ErrRoundNotDealt is returned when a round is settled before it was dealt
var ErrRoundNotDealt = errors.New("round has not been dealt")

// ErrRoundInProgress is returned when a deal is attempted before the last round
// was settled, or a round is settled while a player is still drawing
var ErrRoundInProgress = errors.New("round is already in progress")

package deck

const (
	// Blackjack is the best possible hand total
	Blackjack = 21

	aceHigh = 11
	aceLow  = 1
)

// Hand represents the cards held by a single player or the dealer
type Hand []Card

// Clear empties the hand but keeps the backing storage for the next round
func (h *Hand) Clear() {
	*h = (*h)[:0]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// CardValue returns the high value of a card: face value for 2-10,
// ten for Jack, Queen and King, and eleven for an Ace
func CardValue(c Card) int {
	switch {
	case c.Rank == Ace:
		return aceHigh
	case c.Rank >= 10:
		return 10
	}

	return c.Rank
}

// total returns the hand value along with the number of aces still counted high
func (h Hand) total() (int, int) {
	value := 0
	aces := 0
	for _, c := range h {
		value += CardValue(c)
		if c.Rank == Ace {
			aces++
		}
	}

	for value > Blackjack && aces > 0 {
		value -= aceHigh - aceLow
		aces--
	}

	return value, aces
}

// Value returns the best total for the hand.
// Aces count as eleven and are demoted to one at a time while the total is over 21.
// The result may still be over 21, which is a bust.
func (h Hand) Value() int {
	value, _ := h.total()
	return value
}

// IsSoft returns true if the hand value is still counting an ace as eleven
func (h Hand) IsSoft() bool {
	_, aces := h.total()
	return aces > 0
}

// IsBust returns true if the hand is over 21
func (h Hand) IsBust() bool {
	return h.Value() > Blackjack
}

// IsBlackjack returns true only for a two-card 21
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == Blackjack
}

// LastCard returns the last card in the hand and false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

package deck

import (
	"blackjack-engine/internal/rng"
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// CardsPerDeck is the number of cards in a single standard deck
const CardsPerDeck = 52

// DeckCountError is returned when a shoe is built with fewer than one deck
type DeckCountError int

func (d DeckCountError) Error() string {
	return fmt.Sprintf("number of decks must be >= 1, got %d", int(d))
}

// Deck represents a shoe of one or more standard decks
// Cards before the draw cursor have been dealt and are no longer available
type Deck struct {
	Cards    []Card `json:"cards"`
	top      int
	numDecks int
	seed     int64
}

// New returns a new shoe made of numDecks standard decks.
// Important! this shoe is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(numDecks int) (*Deck, error) {
	if numDecks <= 0 {
		return nil, DeckCountError(numDecks)
	}

	d := &Deck{
		numDecks: numDecks,
	}

	d.buildDeck()
	return d, nil
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, CardsPerDeck*d.numDecks)
	for i := 0; i < d.numDecks; i++ {
		for _, suit := range Suits {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	d.Cards = cards
	d.top = 0
}

// Shuffle will deterministically shuffle every card in the shoe using seed.
// The same seed always produces the same order for a freshly built shoe.
// The draw cursor is left untouched.
func (d *Deck) Shuffle(seed int64) {
	d.seed = seed
	d.ShuffleWith(rand.New(rand.NewSource(seed))) // nolint:gosec
}

// ShuffleWith will shuffle every card in the shoe using the provided generator
func (d *Deck) ShuffleWith(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Seed returns the seed last passed to Shuffle()
func (d *Deck) Seed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the full card order, dealt cards included
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (Card, error) {
	if d.top >= len(d.Cards) {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[d.top]
	d.top++

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the shoe
func (d *Deck) CanDraw(want int) bool {
	return d.Remaining() >= want
}

// Remaining returns the number of cards left in the shoe
func (d *Deck) Remaining() int {
	return len(d.Cards) - d.top
}

// Size returns the total number of cards in the shoe, dealt or not
func (d *Deck) Size() int {
	return len(d.Cards)
}

// NumDecks returns how many standard decks make up the shoe
func (d *Deck) NumDecks() int {
	return d.numDecks
}

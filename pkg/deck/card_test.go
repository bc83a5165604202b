package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 1, Ace)
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2♡", Card{Rank: 2, Suit: Hearts}.String())
	a.Equal("J♣", Card{Rank: Jack, Suit: Clubs}.String())
	a.Equal("Q♢", Card{Rank: Queen, Suit: Diamonds}.String())
	a.Equal("K♠", Card{Rank: King, Suit: Spades}.String())
	a.Equal("A♠", Card{Rank: Ace, Suit: Spades}.String())
	a.Equal("??", Card{}.String())
}

func TestCard_Name(t *testing.T) {
	a := assert.New(t)

	a.Equal("Ace of Spades", CardFromString("1s").Name())
	a.Equal("10 of Hearts", CardFromString("10h").Name())
	a.Equal("Queen of Clubs", CardFromString("12c").Name())
	a.Equal("King of Diamonds", CardFromString("13d").Name())
	a.Equal("Jack of Hearts", CardFromString("11h").Name())
	a.Equal("Unknown Card", Card{Rank: 14, Suit: Spades}.Name())
}

func TestCard_Valid(t *testing.T) {
	a := assert.New(t)

	a.True(Card{Rank: Ace, Suit: Clubs}.Valid())
	a.True(Card{Rank: King, Suit: Spades}.Valid())
	a.False(Card{Rank: 0, Suit: Clubs}.Valid())
	a.False(Card{Rank: 14, Suit: Clubs}.Valid())
	a.False(Card{Rank: 5, Suit: "stars"}.Valid())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: Ace, Suit: Spades}, CardFromString("1s"))
	a.Equal(Card{Rank: 13, Suit: Hearts}, CardFromString("13H"))
	a.Equal(Card{Rank: 10, Suit: Diamonds}, CardFromString("10d"))

	a.PanicsWithValue("could not parse card: 14s", func() {
		CardFromString("14s")
	})
	a.Panics(func() {
		CardFromString("")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("1s,13h, 7c")
	a.Equal(3, len(cards))
	a.Equal("1s,13h,7c", CardsToString(cards))
	a.Equal([]Card{}, CardsFromString(""))
}

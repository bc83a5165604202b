package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	for i := 0; i < 5; i++ {
		a.True(found[i])
	}
	a.False(found[5])
}

type constGenerator int

func (c constGenerator) Intn(n int) int {
	return int(c) % n
}

func TestNewSeed(t *testing.T) {
	a := assert.New(t)

	a.Equal(int64(7), NewSeed(constGenerator(7)))

	for i := 0; i < 100; i++ {
		seed := NewSeed(Crypto{})
		a.GreaterOrEqual(seed, int64(0))
		a.Less(seed, int64(math.MaxInt32))
	}
}

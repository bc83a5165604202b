package util

import (
	"fmt"

	"blackjack-engine/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Lucky", "Cautious", "Bold", "Gracious", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Prime",
	"Doubling", "Splitting", "Standing", "Counting", "Bluffing", "Sharp", "Steady",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion", "Tiger",
	"Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Eagle", "Wolf", "Fox", "Armadillo", "Rhino", "Panda", "Owl", "Crow",
}

// GetRandomName returns a random seat name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	adjectivesIndex := gen.Intn(len(adjectives))
	animalsIndex := gen.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}

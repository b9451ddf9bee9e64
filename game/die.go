package game

import (
	"golang.org/x/exp/rand"
)

// Sides on a standard Pig die.
const Sides = 6

// Roller produces die rolls for a game. Die is the production
// implementation; tests substitute scripted rollers.
type Roller interface {
	Roll() int
}

// Die produces uniform values in [1, Sides] from an explicitly seeded
// source. Two dice built with the same seed replay the same sequence, so a
// game is reproducible from its seed alone.
type Die struct {
	rng *rand.Rand
}

// NewDie returns a die over a fresh source seeded with seed.
func NewDie(seed uint64) *Die {
	return &Die{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns the next face value.
func (d *Die) Roll() int {
	return d.rng.Intn(Sides) + 1
}

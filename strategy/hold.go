// Package strategy provides the decision policies a game can be played
// with: an interactive prompt for humans, the standard computer rule,
// bank-at-k variants for benchmarks and Lua-scripted policies.
package strategy

import (
	"pig/game"
)

// DefaultHoldPoint is the turn total at which the standard computer
// strategy banks.
const DefaultHoldPoint = 25

// Hold banks once the turn total reaches a hold point. The point shrinks
// near the end of the game so the strategy never rolls for points it does
// not need: it banks as soon as the turn total would win, and otherwise at
// min(k, WinningScore - banked).
type Hold struct {
	k int
}

// NewHold returns the standard computer rule, banking at 25.
func NewHold() Hold {
	return NewHoldAt(DefaultHoldPoint)
}

// NewHoldAt returns a rule banking at k.
func NewHoldAt(k int) Hold {
	return Hold{k: k}
}

func (h Hold) Decide(banked, turnTotal int) game.Decision {
	if banked+turnTotal >= game.WinningScore {
		return game.Bank
	}
	point := h.k
	if gap := game.WinningScore - banked; gap < point {
		point = gap
	}
	if turnTotal >= point {
		return game.Bank
	}
	return game.Continue
}

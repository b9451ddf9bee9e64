package game

import "fmt"

// WinningScore is the banked score a player needs to win an untimed game.
const WinningScore = 100

// Player holds a name and the points banked so far. The score only ever
// grows: busted turns forfeit the turn total, never banked points.
type Player struct {
	Name  string
	Score int
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// AddToScore banks points won during a turn.
func (p *Player) AddToScore(points int) {
	p.Score += points
}

func (p *Player) String() string {
	return fmt.Sprintf("%s: %d points", p.Name, p.Score)
}

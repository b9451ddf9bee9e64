package metrics

import (
	"sort"

	"github.com/jlouis/glicko2"
)

// Glicko-2 starting values for an unrated strategy and the system constant
// used for every update.
const (
	initialRating     = 1500.0
	initialDeviation  = 350.0
	initialVolatility = 0.06
	ratingTau         = 0.6
)

// Rating tracks a strategy's Glicko-2 standing over a series.
type Rating struct {
	Name       string
	Rating     float64
	Deviation  float64
	Volatility float64
	Wins       int
	Losses     int
}

// opponent adapts a Rating snapshot plus a game outcome to the rating
// engine's interface.
type opponent struct {
	r       float64
	rd      float64
	sigma   float64
	outcome float64
}

func (o opponent) R() float64 {
	return o.r
}

func (o opponent) RD() float64 {
	return o.rd
}

func (o opponent) Sigma() float64 {
	return o.sigma
}

func (o opponent) SJ() float64 {
	return o.outcome
}

// Ratings holds the standings of every strategy in a series, keyed by
// strategy name.
type Ratings map[string]*Rating

// NewRatings starts every named strategy at the unrated defaults.
func NewRatings(names []string) Ratings {
	ratings := make(Ratings, len(names))
	for _, name := range names {
		ratings[name] = &Rating{
			Name:       name,
			Rating:     initialRating,
			Deviation:  initialDeviation,
			Volatility: initialVolatility,
		}
	}
	return ratings
}

// Update applies one game's outcome to both standings. Both updates rank
// against the opponent's standing before the game.
func (rs Ratings) Update(winner, loser string) {
	w, l := rs[winner], rs[loser]
	if w == nil || l == nil {
		return
	}

	wr, wrd, wsigma := glicko2.Rank(w.Rating, w.Deviation, w.Volatility,
		[]glicko2.Opponent{opponent{l.Rating, l.Deviation, l.Volatility, 1}}, ratingTau)
	lr, lrd, lsigma := glicko2.Rank(l.Rating, l.Deviation, l.Volatility,
		[]glicko2.Opponent{opponent{w.Rating, w.Deviation, w.Volatility, 0}}, ratingTau)

	w.Rating, w.Deviation, w.Volatility = wr, wrd, wsigma
	l.Rating, l.Deviation, l.Volatility = lr, lrd, lsigma
	w.Wins++
	l.Losses++
}

// Standings returns the ratings sorted best first, names breaking ties.
func (rs Ratings) Standings() []Rating {
	standings := make([]Rating, 0, len(rs))
	for _, rating := range rs {
		standings = append(standings, *rating)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Rating != standings[j].Rating {
			return standings[i].Rating > standings[j].Rating
		}
		return standings[i].Name < standings[j].Name
	})
	return standings
}

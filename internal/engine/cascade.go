package engine

// Scoring holds the points awarded per cleared tile and the bonus added for
// every cascade level beyond the first.
type Scoring struct {
	MatchScore int
	ComboBonus int
}

// Gain returns the points for clearing removed tiles at the given combo level
// (1 for the first clear of a chain).
func (s Scoring) Gain(removed, combo int) int {
	gain := removed * s.MatchScore
	if combo > 1 {
		gain += (combo - 1) * s.ComboBonus
	}
	return gain
}

// Step records one detect-clear-fall-refill iteration of a chain.
type Step struct {
	Removed []Pos // cleared positions, row-major
	Combo   int   // 1-based cascade level
	Gain    int   // points awarded for this step
}

// Report summarises a resolved chain.
type Report struct {
	Steps             []Step
	TotalRemoved      int
	ScoreGain         int
	Settled           bool // empty cells were collapsed before matching began
	Reshuffled        bool
	ReshuffleAttempts int
}

// CascadeDepth is the number of clears in the chain.
func (r Report) CascadeDepth() int {
	return len(r.Steps)
}

// MaxCombo is the highest combo level reached, 0 for a quiet chain.
func (r Report) MaxCombo() int {
	if len(r.Steps) == 0 {
		return 0
	}
	return r.Steps[len(r.Steps)-1].Combo
}

// Resolver runs cascades until the board is stable and playable.
type Resolver struct {
	src       Source
	typeCount int
	scoring   Scoring
}

// NewResolver creates a resolver drawing refill tiles from src.
func NewResolver(src Source, typeCount int, scoring Scoring) *Resolver {
	return &Resolver{src: src, typeCount: typeCount, scoring: scoring}
}

// TypeCount returns the number of tile types the resolver refills with.
func (r *Resolver) TypeCount() int { return r.typeCount }

// Source returns the resolver's random source.
func (r *Resolver) Source() Source { return r.src }

// Resolve clears matches, applies gravity and refills until no match
// remains, then reshuffles if the board has no legal move. Empty cells left by
// an earlier clear are collapsed first. Resolving a stable, playable board is
// a no-op.
func (r *Resolver) Resolve(g *Grid) Report {
	var rep Report

	if g.CountEmpty() > 0 {
		ApplyGravity(g)
		Refill(g, r.src, r.typeCount)
		rep.Settled = true
	}

	combo := 0
	for {
		matches := FindMatches(g)
		if len(matches) == 0 {
			break
		}
		combo++
		gain := r.scoring.Gain(len(matches), combo)
		rep.Steps = append(rep.Steps, Step{Removed: matches, Combo: combo, Gain: gain})
		rep.TotalRemoved += len(matches)
		rep.ScoreGain += gain

		Clear(g, matches)
		ApplyGravity(g)
		Refill(g, r.src, r.typeCount)
	}

	if !HasAnyMove(g) {
		rep.ReshuffleAttempts = Reshuffle(g, r.src, r.typeCount)
		rep.Reshuffled = true
	}
	return rep
}

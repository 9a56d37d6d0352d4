// Package sim plays many sessions automatically to gather statistics about
// a board configuration: how often cascades chain, how deep they go and how
// often the board runs out of moves.
package sim

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-match3/internal/session"
)

// ErrInvalidOptions is returned when Options cannot describe a run.
var ErrInvalidOptions = errors.New("sim: invalid options")

// Options configures a simulation run.
type Options struct {
	Games   int
	Moves   int // moves attempted per game
	Workers int // 0 uses GOMAXPROCS
	Seed    int64
	Config  session.Config
	Logger  *log.Logger
}

// Stats aggregates the outcome of every simulated game.
type Stats struct {
	Games           int
	Moves           int
	TotalScore      int
	MaxScore        int
	MaxCascadeDepth int
	Reshuffles      int
	Stuck           int         // games that ended with no move found
	DepthHistogram  map[int]int // cascade depth -> committed moves
}

// AvgScore returns the mean final score per game.
func (s Stats) AvgScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Games)
}

// Depths returns the histogram keys in ascending order.
func (s Stats) Depths() []int {
	keys := lo.Keys(s.DepthHistogram)
	sort.Ints(keys)
	return keys
}

func (s *Stats) merge(o Stats) {
	s.Games += o.Games
	s.Moves += o.Moves
	s.TotalScore += o.TotalScore
	s.MaxScore = max(s.MaxScore, o.MaxScore)
	s.MaxCascadeDepth = max(s.MaxCascadeDepth, o.MaxCascadeDepth)
	s.Reshuffles += o.Reshuffles
	s.Stuck += o.Stuck
	for depth, n := range o.DepthHistogram {
		s.DepthHistogram[depth] += n
	}
}

func newStats() Stats {
	return Stats{DepthHistogram: make(map[int]int)}
}

// Run plays opts.Games sessions of opts.Moves moves each. Game i uses seed
// opts.Seed+i, so a run with the same options always yields the same Stats.
// It stops early with ctx's error if ctx is cancelled.
func Run(ctx context.Context, opts Options) (Stats, error) {
	if opts.Games <= 0 || opts.Moves <= 0 {
		return Stats{}, fmt.Errorf("%w: games and moves must be positive, got %d and %d",
			ErrInvalidOptions, opts.Games, opts.Moves)
	}
	if opts.Seed == 0 {
		return Stats{}, fmt.Errorf("%w: seed must be non-zero for a reproducible run", ErrInvalidOptions)
	}
	if err := opts.Config.Validate(); err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	mgr := session.NewManager(opts.Logger)
	total := newStats()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range opts.Games {
		g.Go(func() error {
			cfg := opts.Config
			cfg.Seed = opts.Seed + int64(i)

			st, err := playGame(ctx, mgr, cfg, opts.Moves)
			if err != nil {
				return fmt.Errorf("sim: game %d: %w", i, err)
			}
			mu.Lock()
			total.merge(st)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	if opts.Logger != nil {
		opts.Logger.Debug("simulation finished",
			"games", total.Games,
			"moves", total.Moves,
			"avg", total.AvgScore(),
			"max_depth", total.MaxCascadeDepth,
		)
	}
	return total, nil
}

// playGame plays one session, always taking the first legal move found.
func playGame(ctx context.Context, mgr *session.Manager, cfg session.Config, moves int) (Stats, error) {
	id, s, err := mgr.Create(cfg)
	if err != nil {
		return Stats{}, err
	}
	defer mgr.Delete(id) //nolint:errcheck // id was just created

	if err := s.Start(); err != nil {
		return Stats{}, err
	}

	st := newStats()
	st.Games = 1
	for range moves {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}

		mv, ok := s.Hint()
		if !ok {
			st.Stuck++
			break
		}
		out, err := s.Swap(mv.A, mv.B)
		if err != nil {
			return Stats{}, err
		}
		if out.Kind != session.OutcomeCommitted {
			return Stats{}, fmt.Errorf("hinted move %v-%v was %s", mv.A, mv.B, out.Kind)
		}

		depth := out.Report.CascadeDepth()
		st.Moves++
		st.DepthHistogram[depth]++
		st.MaxCascadeDepth = max(st.MaxCascadeDepth, depth)
	}

	final := s.State()
	st.TotalScore = final.Score
	st.MaxScore = final.Score
	st.Reshuffles = final.Reshuffles
	return st, nil
}

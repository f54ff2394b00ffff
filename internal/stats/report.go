// Package stats summarizes finished games.
package stats

import (
	"context"

	"github.com/verte-zerg/hitzone/internal/model"
)

// ResultSource is the read side of the results log.
type ResultSource interface {
	ListResults(ctx context.Context, last int) ([]model.RoundResult, error)
	Totals(ctx context.Context) (model.ResultSummary, error)
}

// Report contains precomputed data for results rendering.
type Report struct {
	Recent  []model.RoundResult
	Summary model.ResultSummary
}

// BuildReport loads totals over all games and the most recent games.
func BuildReport(ctx context.Context, src ResultSource, last int) (Report, error) {
	sum, err := src.Totals(ctx)
	if err != nil {
		return Report{}, err
	}
	all, err := src.ListResults(ctx, 0)
	if err != nil {
		return Report{}, err
	}
	sum.BestStreak = BestStreak(all)

	recent := all
	if last > 0 && len(recent) > last {
		recent = recent[len(recent)-last:]
	}
	return Report{Recent: recent, Summary: sum}, nil
}

// BestStreak returns the longest run of consecutive wins.
func BestStreak(results []model.RoundResult) int {
	best, cur := 0, 0
	for _, r := range results {
		if r.Outcome != model.OutcomeWin {
			cur = 0
			continue
		}
		cur++
		if cur > best {
			best = cur
		}
	}
	return best
}

// WinRate returns wins over games, or 0 when nothing has been played.
func WinRate(sum model.ResultSummary) float64 {
	if sum.Games == 0 {
		return 0
	}
	return float64(sum.Wins) / float64(sum.Games)
}

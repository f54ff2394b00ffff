package stats

import (
	"context"
	"testing"
	"time"

	"github.com/verte-zerg/hitzone/internal/model"
	"github.com/verte-zerg/hitzone/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	outcomes := []model.Outcome{
		model.OutcomeWin, model.OutcomeWin, model.OutcomeLose,
		model.OutcomeWin, model.OutcomeWin, model.OutcomeWin,
	}
	for i, o := range outcomes {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		r := model.RoundResult{
			Outcome:    o,
			Difficulty: model.DifficultyHard,
			Hits:       i,
			TargetHits: 6,
			FinalRange: 60,
			StartedAt:  start,
			EndedAt:    start.Add(10 * time.Second),
		}
		if _, err := st.InsertResult(ctx, r); err != nil {
			t.Fatalf("insert result: %v", err)
		}
	}

	report, err := BuildReport(ctx, st, 4)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Recent) != 4 {
		t.Fatalf("expected 4 recent results, got %d", len(report.Recent))
	}
	if report.Recent[0].Hits != 2 || report.Recent[3].Hits != 5 {
		t.Fatalf("unexpected recent window: %+v", report.Recent)
	}
	if report.Summary.Games != 6 || report.Summary.Wins != 5 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
	if report.Summary.BestStreak != 3 {
		t.Fatalf("expected best streak 3, got %d", report.Summary.BestStreak)
	}
}

func TestBestStreak(t *testing.T) {
	w, l := model.RoundResult{Outcome: model.OutcomeWin}, model.RoundResult{Outcome: model.OutcomeLose}
	cases := []struct {
		results []model.RoundResult
		want    int
	}{
		{nil, 0},
		{[]model.RoundResult{l, l}, 0},
		{[]model.RoundResult{w, l, w, w}, 2},
		{[]model.RoundResult{w, w, w, l, w}, 3},
	}
	for _, tc := range cases {
		if got := BestStreak(tc.results); got != tc.want {
			t.Fatalf("BestStreak = %d, want %d", got, tc.want)
		}
	}
}

func TestWinRate(t *testing.T) {
	if WinRate(model.ResultSummary{}) != 0 {
		t.Fatalf("expected zero win rate with no games")
	}
	if got := WinRate(model.ResultSummary{Games: 4, Wins: 1}); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

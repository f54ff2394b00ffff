package store

import (
	"context"
	"testing"
	"time"

	"github.com/verte-zerg/hitzone/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func result(i int, outcome model.Outcome) model.RoundResult {
	start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
	return model.RoundResult{
		Outcome:    outcome,
		Difficulty: model.DifficultyNormal,
		Hits:       i,
		TargetHits: 6,
		FinalRange: 120,
		StartedAt:  start,
		EndedAt:    start.Add(20 * time.Second),
	}
}

func TestInsertAndList(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := st.InsertResult(ctx, result(i, model.OutcomeLose))
		if err != nil {
			t.Fatalf("insert result: %v", err)
		}
		if id == "" {
			t.Fatalf("expected generated id")
		}
		ids = append(ids, id)
	}
	all, err := st.ListResults(ctx, 0)
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 results, got %d", len(all))
	}
	for i, r := range all {
		if r.ID != ids[i] {
			t.Fatalf("unexpected order: %v", all)
		}
	}
	if !all[1].EndedAt.Equal(result(1, model.OutcomeLose).EndedAt) {
		t.Fatalf("timestamp did not round-trip: %v", all[1].EndedAt)
	}

	last, err := st.ListResults(ctx, 2)
	if err != nil {
		t.Fatalf("list last results: %v", err)
	}
	if len(last) != 2 || last[0].ID != ids[1] || last[1].ID != ids[2] {
		t.Fatalf("unexpected last results: %+v", last)
	}
}

func TestInsertKeepsGivenID(t *testing.T) {
	st := openTestStore(t)
	r := result(1, model.OutcomeWin)
	r.ID = "fixed"
	id, err := st.InsertResult(context.Background(), r)
	if err != nil {
		t.Fatalf("insert result: %v", err)
	}
	if id != "fixed" {
		t.Fatalf("expected given id, got %s", id)
	}
	if _, err := st.InsertResult(context.Background(), r); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
}

func TestTotals(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	empty, err := st.Totals(ctx)
	if err != nil {
		t.Fatalf("totals on empty store: %v", err)
	}
	if empty.Games != 0 || !empty.LastEnded.IsZero() {
		t.Fatalf("unexpected empty totals: %+v", empty)
	}

	outcomes := []model.Outcome{model.OutcomeWin, model.OutcomeLose, model.OutcomeWin}
	for i, o := range outcomes {
		if _, err := st.InsertResult(ctx, result(i+2, o)); err != nil {
			t.Fatalf("insert result: %v", err)
		}
	}
	sum, err := st.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if sum.Games != 3 || sum.Wins != 2 || sum.Losses != 1 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
	if sum.TotalHits != 2+3+4 || sum.BestHits != 4 {
		t.Fatalf("unexpected hit totals: %+v", sum)
	}
	if !sum.LastEnded.Equal(result(4, model.OutcomeWin).EndedAt) {
		t.Fatalf("unexpected last ended: %v", sum.LastEnded)
	}
}

func TestSeparateMemoryStores(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	if _, err := a.InsertResult(context.Background(), result(1, model.OutcomeWin)); err != nil {
		t.Fatalf("insert result: %v", err)
	}
	got, err := b.ListResults(context.Background(), 0)
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected independent in-memory stores, got %d results", len(got))
	}
}

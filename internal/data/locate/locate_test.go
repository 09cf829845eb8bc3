package locate

import (
	"context"
	"errors"
	"testing"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/yearkey"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

type rec struct {
	yearKey interface{}
}

// probeStore simulates a table holding one record under one specific key.
type probeStore struct {
	storedKey interface{}
	latest    *rec
	probes    []interface{}
}

func (s *probeStore) exact(_ context.Context, cand yearkey.Candidate) (*rec, bool, error) {
	s.probes = append(s.probes, cand.Value())
	if s.storedKey != nil && cand.Value() == s.storedKey {
		return &rec{yearKey: s.storedKey}, true, nil
	}
	return nil, false, nil
}

func (s *probeStore) latestFn(_ context.Context) (*rec, bool, error) {
	if s.latest != nil {
		return s.latest, true, nil
	}
	return nil, false, nil
}

func TestLocate_CanonicalHitStopsProbing(t *testing.T) {
	ay, _ := yearkey.Parse("2024-2025")
	store := &probeStore{storedKey: 2025}
	got, path, err := Locate(context.Background(), logger.NewNop(), "faculty_output",
		yearkey.Candidates(ay, yearkey.EndingYearInt), store.exact, store.latestFn)
	if err != nil || got == nil {
		t.Fatalf("expected hit, got rec=%v err=%v", got, err)
	}
	if path.Step != "canonical" || !path.Found {
		t.Fatalf("unexpected path: %+v", path)
	}
	if len(store.probes) != 1 {
		t.Fatalf("canonical hit must stop probing, issued %d probes", len(store.probes))
	}
}

func TestLocate_RolloverFallbackFindsEndingYearRecord(t *testing.T) {
	ay, _ := yearkey.Parse("2024-2025")
	// Data written under the previous ending year by the rollover bug.
	store := &probeStore{storedKey: 2024}
	got, path, err := Locate(context.Background(), logger.NewNop(), "faculty_output",
		yearkey.Candidates(ay, yearkey.EndingYearInt), store.exact, store.latestFn)
	if err != nil || got == nil {
		t.Fatalf("expected fallback hit, got rec=%v err=%v", got, err)
	}
	if path.Step != "rollover_prev" {
		t.Fatalf("expected rollover_prev path, got %q", path.Step)
	}
}

func TestLocate_LatestFallbackWhenNoYearMatches(t *testing.T) {
	ay, _ := yearkey.Parse("2024-2025")
	stale := &rec{yearKey: 2019}
	store := &probeStore{latest: stale}
	got, path, err := Locate(context.Background(), logger.NewNop(), "faculty_output",
		yearkey.Candidates(ay, yearkey.EndingYearInt), store.exact, store.latestFn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != stale {
		t.Fatalf("expected the stale latest record, got %v", got)
	}
	if path.Step != "latest_fallback" {
		t.Fatalf("expected latest_fallback path, got %q", path.Step)
	}
}

func TestLocate_NoDataIsNotAnError(t *testing.T) {
	ay, _ := yearkey.Parse("2024-2025")
	store := &probeStore{}
	got, path, err := Locate(context.Background(), logger.NewNop(), "nep_initiatives",
		yearkey.Candidates(ay, yearkey.StartingYearInt), store.exact, store.latestFn)
	if err != nil {
		t.Fatalf("absence must not be an error, got %v", err)
	}
	if got != nil || path.Found {
		t.Fatalf("expected a miss, got rec=%v path=%+v", got, path)
	}
	if path.Step != "none" {
		t.Fatalf("expected none path, got %q", path.Step)
	}
}

func TestLocate_ProbeErrorDegradesToNextCandidate(t *testing.T) {
	ay, _ := yearkey.Parse("2024-2025")
	boom := errors.New("connection reset")
	calls := 0
	exact := func(_ context.Context, cand yearkey.Candidate) (*rec, bool, error) {
		calls++
		if calls == 1 {
			return nil, false, boom
		}
		if cand.Value() == 2024 {
			return &rec{yearKey: 2024}, true, nil
		}
		return nil, false, nil
	}
	latest := func(_ context.Context) (*rec, bool, error) { return nil, false, nil }
	got, path, err := Locate(context.Background(), logger.NewNop(), "faculty_output",
		yearkey.Candidates(ay, yearkey.EndingYearInt), exact, latest)
	if err != nil || got == nil {
		t.Fatalf("a single failed probe must not abort the lookup: rec=%v err=%v", got, err)
	}
	if path.Step != "rollover_prev" {
		t.Fatalf("expected hit on the next candidate, got %q", path.Step)
	}
}

func TestLocate_AllProbesFailedSurfacesError(t *testing.T) {
	ay, _ := yearkey.Parse("2024-2025")
	boom := errors.New("db down")
	exact := func(_ context.Context, _ yearkey.Candidate) (*rec, bool, error) { return nil, false, boom }
	latest := func(_ context.Context) (*rec, bool, error) { return nil, false, boom }
	_, path, err := Locate(context.Background(), logger.NewNop(), "faculty_output",
		yearkey.Candidates(ay, yearkey.EndingYearInt), exact, latest)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the probe error when nothing hit, got %v", err)
	}
	if path.Found {
		t.Fatalf("path must report a miss: %+v", path)
	}
}

package solver

import (
	"errors"
	"testing"

	"github.com/legomannetje/fll-scheduler/common/models/input"
)

func TestCeilDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{42, 7, 6},
		{43, 7, 7},
		{0, 7, 0},
		{7, 7, 1},
		{1, 7, 1},
		{5, 0, 5}, // degenerate divisor: returns the numerator untouched
	}
	for _, c := range cases {
		if got := ceilDiv(c.a, c.b); got != c.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestNewTimeModel(t *testing.T) {
	cfg := input.Config{
		NumTeams:             24,
		NumTables:            4,
		NumJuryRooms:         6,
		NumTimeslots:         40,
		MatchesPerTeam:       3,
		JurySessionsPerTeam:  1,
		MatchDurationMinutes: 7,
		JuryDurationMinutes:  42,
		MinimumBufferMinutes: 8,
		MaxSolveTimeSeconds:  60,
	}

	tm, err := NewTimeModel(cfg)
	if err != nil {
		t.Fatalf("NewTimeModel returned error: %v", err)
	}

	if tm.SlotMinutes != 7 {
		t.Errorf("SlotMinutes = %d, want 7", tm.SlotMinutes)
	}
	if tm.JurySpan != 6 { // ceil(42/7) = 6
		t.Errorf("JurySpan = %d, want 6", tm.JurySpan)
	}
	if tm.BufferSpan != 2 { // ceil(8/7) = 2
		t.Errorf("BufferSpan = %d, want 2", tm.BufferSpan)
	}
	if tm.MatchGap != 3 { // 1 + BufferSpan
		t.Errorf("MatchGap = %d, want 3", tm.MatchGap)
	}
	if tm.JuryGap != 0 { // JurySessionsPerTeam == 1, gap unused
		t.Errorf("JuryGap = %d, want 0", tm.JuryGap)
	}
}

func TestNewTimeModel_JuryGapWhenMultipleSessions(t *testing.T) {
	cfg := input.Config{
		NumTeams:             24,
		NumTables:            4,
		NumJuryRooms:         6,
		NumTimeslots:         200,
		MatchesPerTeam:       3,
		JurySessionsPerTeam:  2,
		MatchDurationMinutes: 7,
		JuryDurationMinutes:  42,
		MinimumBufferMinutes: 8,
		MaxSolveTimeSeconds:  60,
	}

	tm, err := NewTimeModel(cfg)
	if err != nil {
		t.Fatalf("NewTimeModel returned error: %v", err)
	}
	if tm.JuryGap != 1 { // ceil(8/42) = 1
		t.Errorf("JuryGap = %d, want 1", tm.JuryGap)
	}
}

func TestNewTimeModel_CapacityErrorWhenJurySpanExceedsTimeslots(t *testing.T) {
	cfg := input.Config{
		NumTeams:             4,
		NumTables:            2,
		NumJuryRooms:         2,
		NumTimeslots:         3,
		MatchesPerTeam:       1,
		JurySessionsPerTeam:  1,
		MatchDurationMinutes: 7,
		JuryDurationMinutes:  42, // 6 slots, exceeds NumTimeslots of 3
		MinimumBufferMinutes: 0,
		MaxSolveTimeSeconds:  10,
	}

	_, err := NewTimeModel(cfg)
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
}

func TestNewTimeModel_CapacityErrorWhenMatchGapExceedsTimeslots(t *testing.T) {
	cfg := input.Config{
		NumTeams:             4,
		NumTables:            2,
		NumJuryRooms:         2,
		NumTimeslots:         2,
		MatchesPerTeam:       1,
		JurySessionsPerTeam:  1,
		MatchDurationMinutes: 7,
		JuryDurationMinutes:  7,
		MinimumBufferMinutes: 100, // pushes MatchGap well past 2 timeslots
		MaxSolveTimeSeconds:  10,
	}

	_, err := NewTimeModel(cfg)
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
}

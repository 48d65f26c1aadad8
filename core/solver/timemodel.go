package solver

import (
	"fmt"

	"github.com/legomannetje/fll-scheduler/common/models/input"
)

// TimeModel collapses the two natural time grids (match minutes, jury
// minutes) onto a single integer slot axis, per spec.md section 4.1.
// A slot's duration is always the match duration, the shorter of the
// two activities.
type TimeModel struct {
	SlotMinutes int
	JurySpan    int // slots a single interview occupies once started
	BufferSpan  int // idle slots that must follow any activity
	MatchGap    int // minimum slot-index difference between match starts
	JuryGap     int // minimum slot-index difference between jury starts; 0 if unused
}

// ceilDiv computes ceil(a/b) for positive integers, the rounding rule
// spec.md section 4.1 requires for every derived span: buffer is a
// lower bound on idle time, so rounding down would legalize a
// shorter-than-intended gap.
func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// NewTimeModel derives the slot grid from a validated configuration.
// It returns an error wrapping ErrCapacity if any derived span exceeds the
// configured slot count, per the section 4.1 edge-case policy: that
// check must happen before any variable is allocated.
func NewTimeModel(cfg input.Config) (TimeModel, error) {
	tm := TimeModel{
		SlotMinutes: cfg.MatchDurationMinutes,
	}
	tm.JurySpan = ceilDiv(cfg.JuryDurationMinutes, tm.SlotMinutes)
	tm.BufferSpan = ceilDiv(cfg.MinimumBufferMinutes, tm.SlotMinutes)
	tm.MatchGap = 1 + tm.BufferSpan

	if cfg.JurySessionsPerTeam > 1 {
		tm.JuryGap = ceilDiv(cfg.MinimumBufferMinutes, cfg.JuryDurationMinutes)
	}

	if tm.JurySpan > cfg.NumTimeslots {
		return TimeModel{}, fmt.Errorf("%w: jury span %d slots exceeds %d configured timeslots", ErrCapacity, tm.JurySpan, cfg.NumTimeslots)
	}
	if tm.MatchGap > cfg.NumTimeslots {
		return TimeModel{}, fmt.Errorf("%w: match gap %d slots exceeds %d configured timeslots", ErrCapacity, tm.MatchGap, cfg.NumTimeslots)
	}

	return tm, nil
}

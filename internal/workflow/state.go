package workflow

import "carbonwise/internal/model"

// ProgressCeiling is the highest value the synthetic ticker may report.
// Kept strictly below 100 so the bar never claims completion before the
// response actually arrives.
const ProgressCeiling = 90

// State is the single owned record of one analysis workflow.
// Invariant after a completed cycle: at most one of Err and Result is set.
// While Analyzing is true both are withheld.
type State struct {
	Analyzing       bool
	Progress        int // 0..100
	Err             string
	Result          *model.AnalysisResult
	Recommendations []model.Recommendation

	// Cycle numbers each invocation. Scheduled work (ticks, responses)
	// is tagged with the cycle it belongs to; anything tagged with an
	// older cycle is stale and must be dropped by the caller.
	Cycle int
}

// Reset clears every outcome field without starting a new cycle.
func (s *State) Reset() {
	s.Analyzing = false
	s.Progress = 0
	s.Err = ""
	s.Result = nil
	s.Recommendations = nil
}

// Begin starts a new cycle: prior outcome cleared, busy flag raised,
// progress back to zero. Returns the new cycle number for tagging
// scheduled work. Callers must not Begin while Analyzing is true.
func (s *State) Begin() int {
	s.Reset()
	s.Analyzing = true
	s.Cycle++
	return s.Cycle
}

// Reject records a validation failure without starting a cycle: no busy
// flag, no progress, just the fixed error message.
func (s *State) Reject(msg string) {
	s.Reset()
	s.Err = msg
}

// Advance moves the synthetic progress bar. It is inert outside a cycle,
// ignores non-positive deltas, and caps at ProgressCeiling.
func (s *State) Advance(delta int) {
	if !s.Analyzing || delta <= 0 {
		return
	}
	s.Progress += delta
	if s.Progress > ProgressCeiling {
		s.Progress = ProgressCeiling
	}
}

// Succeed concludes the cycle with a result. Progress snaps to 100 and the
// busy flag drops; the recommendation list is never left nil.
func (s *State) Succeed(result *model.AnalysisResult, recs []model.Recommendation) {
	if recs == nil {
		recs = []model.Recommendation{}
	}
	s.Analyzing = false
	s.Progress = 100
	s.Err = ""
	s.Result = result
	s.Recommendations = recs
}

// Fail concludes the cycle with an error. Same terminal shape as Succeed:
// busy flag down, progress 100, but no result and no recommendations.
func (s *State) Fail(msg string) {
	s.Analyzing = false
	s.Progress = 100
	s.Err = msg
	s.Result = nil
	s.Recommendations = nil
}

package eligibility

import (
	"fmt"

	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

// Result is the outcome of checking marks against a RequirementSet.
// Eligible is true exactly when Missing is empty.
type Result struct {
	Eligible bool     `json:"eligible"`
	APS      int      `json:"aps"`
	Missing  []string `json:"missing"`
}

// Evaluate checks marks against req. The APS check comes first, then subject
// minimums in declared subject order. Additional requirements are descriptive only.
func Evaluate(marks scoring.MarkSet, req RequirementSet) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	aps, err := scoring.TopSevenAPS(marks)
	if err != nil {
		return Result{}, err
	}

	missing := []string{}
	if req.MinimumAPS != nil && aps < *req.MinimumAPS {
		missing = append(missing, fmt.Sprintf("Minimum APS of %d required (current APS %d)", *req.MinimumAPS, aps))
	}

	for _, m := range req.SubjectMinimums() {
		mark, ok := marks[m.Subject]
		if !ok {
			missing = append(missing, fmt.Sprintf("%s: %d%% required (no mark recorded)", m.Subject.Label(), m.Minimum))
			continue
		}
		if mark < m.Minimum {
			missing = append(missing, fmt.Sprintf("%s: %d%% required (current %d%%)", m.Subject.Label(), m.Minimum, mark))
		}
	}

	return Result{
		Eligible: len(missing) == 0,
		APS:      aps,
		Missing:  missing,
	}, nil
}

// Target is anything with a requirement set that a student can be matched to
type Target struct {
	ID           uint
	Name         string
	Requirements RequirementSet
}

// Match pairs a target with its evaluation
type Match struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Result Result `json:"result"`
}

// MatchAll evaluates every target, keeping input order. The first invalid
// requirement set aborts the run.
func MatchAll(marks scoring.MarkSet, targets []Target) ([]Match, error) {
	if err := scoring.Validate(marks); err != nil {
		return nil, err
	}
	matches := make([]Match, 0, len(targets))
	for _, t := range targets {
		res, err := Evaluate(marks, t.Requirements)
		if err != nil {
			return nil, fmt.Errorf("requirements of %q: %w", t.Name, err)
		}
		matches = append(matches, Match{ID: t.ID, Name: t.Name, Result: res})
	}
	return matches, nil
}

// Eligible filters matches down to the ones the student qualifies for
func Eligible(matches []Match) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Result.Eligible {
			out = append(out, m)
		}
	}
	return out
}

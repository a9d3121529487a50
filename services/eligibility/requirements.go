package eligibility

import (
	"fmt"

	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

// RequirementSet is the structured entry requirement of a course, bursary or career.
// A nil field means no constraint.
type RequirementSet struct {
	MinimumAPS             *int     `json:"minimum_aps,omitempty"`
	Mathematics            *int     `json:"mathematics,omitempty"`
	English                *int     `json:"english,omitempty"`
	PhysicalSciences       *int     `json:"physical_sciences,omitempty"`
	LifeSciences           *int     `json:"life_sciences,omitempty"`
	Accounting             *int     `json:"accounting,omitempty"`
	Economics              *int     `json:"economics,omitempty"`
	Geography              *int     `json:"geography,omitempty"`
	History                *int     `json:"history,omitempty"`
	AdditionalRequirements []string `json:"additional_requirements,omitempty"`
}

// SubjectMinimum is one per-subject constraint
type SubjectMinimum struct {
	Subject scoring.Subject `json:"subject"`
	Minimum int             `json:"minimum"`
}

// subjectField returns the pointer that holds the minimum for s
func (r *RequirementSet) subjectField(s scoring.Subject) **int {
	switch s {
	case scoring.Mathematics:
		return &r.Mathematics
	case scoring.English:
		return &r.English
	case scoring.PhysicalSciences:
		return &r.PhysicalSciences
	case scoring.LifeSciences:
		return &r.LifeSciences
	case scoring.Accounting:
		return &r.Accounting
	case scoring.Economics:
		return &r.Economics
	case scoring.Geography:
		return &r.Geography
	case scoring.History:
		return &r.History
	}
	return nil
}

// SubjectMinimums lists the constrained subjects in declared subject order
func (r RequirementSet) SubjectMinimums() []SubjectMinimum {
	var out []SubjectMinimum
	for _, s := range scoring.Subjects {
		if p := *r.subjectField(s); p != nil {
			out = append(out, SubjectMinimum{Subject: s, Minimum: *p})
		}
	}
	return out
}

// SetSubjectMinimum sets (or clears, with nil) the minimum for a subject
func (r *RequirementSet) SetSubjectMinimum(s scoring.Subject, minimum *int) error {
	field := r.subjectField(s)
	if field == nil {
		return &scoring.ValidationError{Field: string(s), Value: minimum, Message: "unknown subject"}
	}
	*field = minimum
	return nil
}

// IsEmpty reports whether the set places no checkable constraint
func (r RequirementSet) IsEmpty() bool {
	return r.MinimumAPS == nil && len(r.SubjectMinimums()) == 0
}

// Validate checks that every present numeric field is in range
func (r RequirementSet) Validate() error {
	if r.MinimumAPS != nil && (*r.MinimumAPS < 0 || *r.MinimumAPS > scoring.MaxAPS) {
		return &scoring.ValidationError{
			Field:   "minimum_aps",
			Value:   *r.MinimumAPS,
			Message: fmt.Sprintf("must be between 0 and %d", scoring.MaxAPS),
		}
	}
	for _, m := range r.SubjectMinimums() {
		if m.Minimum < scoring.MinMark || m.Minimum > scoring.MaxMark {
			return &scoring.ValidationError{
				Field:   string(m.Subject),
				Value:   m.Minimum,
				Message: fmt.Sprintf("must be between %d and %d", scoring.MinMark, scoring.MaxMark),
			}
		}
	}
	return nil
}

// Int is a helper for building requirement literals
func Int(v int) *int {
	return &v
}

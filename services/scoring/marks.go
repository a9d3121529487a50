package scoring

import (
	"fmt"
	"slices"
	"strings"
)

// Subject identifies a school subject that can carry a mark
type Subject string

const (
	Mathematics      Subject = "mathematics"
	English          Subject = "english"
	PhysicalSciences Subject = "physical_sciences"
	LifeSciences     Subject = "life_sciences"
	Accounting       Subject = "accounting"
	Economics        Subject = "economics"
	Geography        Subject = "geography"
	History          Subject = "history"
)

// Subjects is the declared subject order. Evaluation and tie-breaking follow it.
var Subjects = []Subject{
	Mathematics,
	English,
	PhysicalSciences,
	LifeSciences,
	Accounting,
	Economics,
	Geography,
	History,
}

var subjectLabels = map[Subject]string{
	Mathematics:      "Mathematics",
	English:          "English",
	PhysicalSciences: "Physical Sciences",
	LifeSciences:     "Life Sciences",
	Accounting:       "Accounting",
	Economics:        "Economics",
	Geography:        "Geography",
	History:          "History",
}

// Valid reports whether s is one of the known subjects
func (s Subject) Valid() bool {
	_, ok := subjectLabels[s]
	return ok
}

// Label returns the display name of the subject
func (s Subject) Label() string {
	if label, ok := subjectLabels[s]; ok {
		return label
	}
	return strings.ReplaceAll(string(s), "_", " ")
}

// MarkSet maps a subject to a percentage mark in [0,100]
type MarkSet map[Subject]int

// MinMark and MaxMark bound every percentage
const (
	MinMark = 0
	MaxMark = 100
)

// ValidationError reports malformed scoring input
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s",
		e.Field, e.Value, e.Message)
}

// Validate rejects unknown subjects and out-of-range marks. Nothing is clamped.
func Validate(marks MarkSet) error {
	for _, subject := range sortedKeys(marks) {
		mark := marks[subject]
		if !subject.Valid() {
			return &ValidationError{
				Field:   string(subject),
				Value:   mark,
				Message: "unknown subject",
			}
		}
		if mark < MinMark || mark > MaxMark {
			return &ValidationError{
				Field:   string(subject),
				Value:   mark,
				Message: fmt.Sprintf("must be between %d and %d", MinMark, MaxMark),
			}
		}
	}
	return nil
}

// Ordered returns the recorded subjects in declared order, unknown subjects last
func (m MarkSet) Ordered() []Subject {
	return sortedKeys(m)
}

// sortedKeys keeps error reporting deterministic regardless of map iteration order
func sortedKeys(marks MarkSet) []Subject {
	keys := make([]Subject, 0, len(marks))
	for _, s := range Subjects {
		if _, ok := marks[s]; ok {
			keys = append(keys, s)
		}
	}
	var unknown []Subject
	for s := range marks {
		if !s.Valid() {
			unknown = append(unknown, s)
		}
	}
	slices.Sort(unknown)
	return append(keys, unknown...)
}

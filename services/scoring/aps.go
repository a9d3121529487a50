package scoring

import "sort"

const (
	// CountedSubjects is how many marks the canonical APS adds up
	CountedSubjects = 7
	// MaxPointsPerSubject is the top band value of both formulas
	MaxPointsPerSubject = 7
	// MaxAPS is the ceiling of TopSevenAPS
	MaxAPS = CountedSubjects * MaxPointsPerSubject
)

// Variant names an APS formula
type Variant string

const (
	VariantTopSeven    Variant = "top_seven"
	VariantAllSubjects Variant = "all_subjects"
)

// Valid reports whether v is a known variant
func (v Variant) Valid() bool {
	return v == VariantTopSeven || v == VariantAllSubjects
}

// band maps a lower bound (inclusive) to the points it earns
type band struct {
	min    int
	points int
}

var topSevenBands = []band{
	{80, 7},
	{70, 6},
	{60, 5},
	{50, 4},
	{40, 3},
	{30, 2},
}

var allSubjectsBands = []band{
	{90, 7},
	{80, 6},
	{70, 5},
	{60, 4},
	{50, 3},
	{40, 2},
	{30, 1},
}

func lookup(bands []band, mark, floor int) int {
	for _, b := range bands {
		if mark >= b.min {
			return b.points
		}
	}
	return floor
}

// Points returns the canonical points for a mark. Every mark earns at least 1.
func Points(mark int) int {
	return lookup(topSevenBands, mark, 1)
}

// AllSubjectsPoints returns the points of the all-subjects formula, 0 below 30%
func AllSubjectsPoints(mark int) int {
	return lookup(allSubjectsBands, mark, 0)
}

// TopSevenAPS is the canonical aggregate: the seven best marks, banded and summed.
// A set with fewer than seven subjects only scores the subjects present.
func TopSevenAPS(marks MarkSet) (int, error) {
	if err := Validate(marks); err != nil {
		return 0, err
	}

	values := make([]int, 0, len(marks))
	for _, subject := range marks.Ordered() {
		values = append(values, marks[subject])
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i] > values[j]
	})
	if len(values) > CountedSubjects {
		values = values[:CountedSubjects]
	}

	total := 0
	for _, v := range values {
		total += Points(v)
	}
	return total, nil
}

// AllSubjectsAPS sums the all-subjects bands over every recorded mark.
// It is not bounded by MaxAPS and never gates eligibility or offers.
func AllSubjectsAPS(marks MarkSet) (int, error) {
	if err := Validate(marks); err != nil {
		return 0, err
	}

	total := 0
	for _, mark := range marks {
		total += AllSubjectsPoints(mark)
	}
	return total, nil
}

// Calculate dispatches to the named formula
func Calculate(marks MarkSet, variant Variant) (int, error) {
	switch variant {
	case VariantAllSubjects:
		return AllSubjectsAPS(marks)
	case VariantTopSeven, "":
		return TopSevenAPS(marks)
	default:
		return 0, &ValidationError{
			Field:   "variant",
			Value:   variant,
			Message: "unknown APS variant",
		}
	}
}

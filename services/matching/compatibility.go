package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/ecodeclub/ekit/slice"

	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

// Scale bounds of the ordinal quiz answers
const (
	FivePointMin  = 1
	FivePointMax  = 5
	ThreePointMin = 1
	ThreePointMax = 3
)

// QuizAnswers is a student's lifestyle profile
type QuizAnswers struct {
	StudentID         uint     `json:"student_id"`
	SocialLevel       int      `json:"social_level"`       // 1 (quiet) .. 5 (very social)
	SleepSchedule     int      `json:"sleep_schedule"`     // 1 early bird, 2 flexible, 3 night owl
	MusicTolerance    int      `json:"music_tolerance"`    // 1 .. 5
	PartyFrequency    int      `json:"party_frequency"`    // 1 never .. 5 every weekend
	SmokingPreference int      `json:"smoking_preference"` // 1 non-smoker, 2 outdoors only, 3 smoker
	Hobbies           []string `json:"hobbies"`
	Interests         []string `json:"interests"`
}

type scalarField struct {
	weight float64
	rng    float64
	value  func(QuizAnswers) int
}

var scalarFields = []scalarField{
	{2, FivePointMax - FivePointMin, func(q QuizAnswers) int { return q.SocialLevel }},
	{3, ThreePointMax - ThreePointMin, func(q QuizAnswers) int { return q.SleepSchedule }},
	{2, FivePointMax - FivePointMin, func(q QuizAnswers) int { return q.MusicTolerance }},
	{2, FivePointMax - FivePointMin, func(q QuizAnswers) int { return q.PartyFrequency }},
	{3, ThreePointMax - ThreePointMin, func(q QuizAnswers) int { return q.SmokingPreference }},
}

const (
	hobbiesWeight   = 1
	interestsWeight = 1
)

// TotalWeight is the divisor of the weighted sum
var TotalWeight = func() float64 {
	total := float64(hobbiesWeight + interestsWeight)
	for _, f := range scalarFields {
		total += f.weight
	}
	return total
}()

// Compatibility scores two profiles in [0,1]. It is symmetric.
func Compatibility(a, b QuizAnswers) float64 {
	sum := 0.0
	for _, f := range scalarFields {
		sum += f.weight * scalarScore(f.value(a), f.value(b), f.rng)
	}
	sum += hobbiesWeight * Jaccard(a.Hobbies, b.Hobbies)
	sum += interestsWeight * Jaccard(a.Interests, b.Interests)
	return sum / TotalWeight
}

func scalarScore(a, b int, rng float64) float64 {
	diff := math.Abs(float64(a - b))
	return math.Max(0, rng-diff) / rng
}

// Jaccard is |a∩b| / |a∪b| over normalized tags, 0 when both are empty
func Jaccard(a, b []string) float64 {
	na, nb := normalizeTags(a), normalizeTags(b)
	union := slice.UnionSet(na, nb)
	if len(union) == 0 {
		return 0
	}
	return float64(len(slice.IntersectSet(na, nb))) / float64(len(union))
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if _, dup := seen[t]; dup || t == "" {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Validate reports the first answer outside its scale
func (q QuizAnswers) Validate() error {
	checks := []struct {
		field    string
		value    int
		min, max int
	}{
		{"social_level", q.SocialLevel, FivePointMin, FivePointMax},
		{"sleep_schedule", q.SleepSchedule, ThreePointMin, ThreePointMax},
		{"music_tolerance", q.MusicTolerance, FivePointMin, FivePointMax},
		{"party_frequency", q.PartyFrequency, FivePointMin, FivePointMax},
		{"smoking_preference", q.SmokingPreference, ThreePointMin, ThreePointMax},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return &scoring.ValidationError{
				Field:   c.field,
				Value:   c.value,
				Message: fmt.Sprintf("must be between %d and %d", c.min, c.max),
			}
		}
	}
	return nil
}

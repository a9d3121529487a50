package matching

import "sort"

// DefaultRoommateLimit applies when the caller passes a non-positive limit
const DefaultRoommateLimit = 10

// Match is a candidate roommate and their score against the querying student
type Match struct {
	StudentID uint    `json:"student_id"`
	Score     float64 `json:"score"`
}

// FindPotentialRoommates ranks everyone in all against studentID, best first.
// Equal scores are ordered by student id. Returns nil if studentID has no answers.
func FindPotentialRoommates(studentID uint, all []QuizAnswers, limit int) []Match {
	if limit <= 0 {
		limit = DefaultRoommateLimit
	}

	var self *QuizAnswers
	for i := range all {
		if all[i].StudentID == studentID {
			self = &all[i]
			break
		}
	}
	if self == nil {
		return nil
	}

	matches := make([]Match, 0, len(all))
	for _, other := range all {
		if other.StudentID == studentID {
			continue
		}
		matches = append(matches, Match{
			StudentID: other.StudentID,
			Score:     Compatibility(*self, other),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].StudentID < matches[j].StudentID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

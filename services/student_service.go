package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services/eligibility"
	"github.com/sahilchouksey/unimatch-api/services/matching"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
	"github.com/sahilchouksey/unimatch-api/utils/cache"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

const (
	RoommateCacheTTL = 10 * time.Minute
	// roommateGenKey is bumped on every quiz submission so cached rankings go stale together
	roommateGenKey = "roommates:gen"
)

// Score is an APS together with the formula that produced it
type Score struct {
	Variant  scoring.Variant `json:"variant"`
	APS      int             `json:"aps"`
	Subjects int             `json:"subjects"`
}

// StudentService owns marks, quiz answers and everything matched from them
type StudentService struct {
	students repository.StudentRepository
	catalog  repository.CatalogRepository
	quizzes  repository.QuizRepository
	cache    Cache
	timeout  time.Duration
	log      zerolog.Logger
}

func NewStudentService(
	students repository.StudentRepository,
	catalog repository.CatalogRepository,
	quizzes repository.QuizRepository,
	kv Cache,
	timeout time.Duration,
) *StudentService {
	return &StudentService{
		students: students,
		catalog:  catalog,
		quizzes:  quizzes,
		cache:    kv,
		timeout:  timeout,
		log:      logger.With("student-service"),
	}
}

func (s *StudentService) GetStudent(ctx context.Context, id uint) (*model.Student, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.students.GetByID(ctx, id)
}

// EnsureStudent creates an empty profile for a first-time token holder
func (s *StudentService) EnsureStudent(ctx context.Context, id uint, email string) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.students.GetByID(ctx, id)
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if email == "" {
		email = fmt.Sprintf("student-%d@unimatch.invalid", id)
	}
	err = s.students.Create(ctx, &model.Student{ID: id, Email: email})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil
	}
	if err == nil {
		s.log.Info().Uint("student_id", id).Msg("Student profile created")
	}
	return err
}

// SubmitMarks replaces the student's whole mark set and returns the new APS
func (s *StudentService) SubmitMarks(ctx context.Context, id uint, marks scoring.MarkSet) (int, error) {
	aps, err := scoring.TopSevenAPS(marks)
	if err != nil {
		return 0, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.students.UpdateMarks(ctx, id, marks); err != nil {
		return 0, err
	}

	s.log.Info().Uint("student_id", id).Int("subjects", len(marks)).Int("aps", aps).Msg("Marks updated")
	return aps, nil
}

func (s *StudentService) GetMarks(ctx context.Context, id uint) (scoring.MarkSet, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	return student.MarkSet(), nil
}

// GetScore computes the APS with the requested formula; an empty variant means top seven
func (s *StudentService) GetScore(ctx context.Context, id uint, variant scoring.Variant) (Score, error) {
	if variant == "" {
		variant = scoring.VariantTopSeven
	}
	marks, err := s.GetMarks(ctx, id)
	if err != nil {
		return Score{}, err
	}
	aps, err := scoring.Calculate(marks, variant)
	if err != nil {
		return Score{}, err
	}
	return Score{Variant: variant, APS: aps, Subjects: len(marks)}, nil
}

// marksForMatching loads marks and refuses to match an empty set
func (s *StudentService) marksForMatching(ctx context.Context, id uint) (scoring.MarkSet, error) {
	marks, err := s.GetMarks(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return nil, ErrNoMarks
	}
	return marks, nil
}

func matchTargets(marks scoring.MarkSet, targets []eligibility.Target, eligibleOnly bool) ([]eligibility.Match, error) {
	matches, err := eligibility.MatchAll(marks, targets)
	if err != nil {
		return nil, err
	}
	if eligibleOnly {
		return eligibility.Eligible(matches), nil
	}
	return matches, nil
}

func (s *StudentService) CourseMatches(ctx context.Context, id uint, eligibleOnly bool) ([]eligibility.Match, error) {
	marks, err := s.marksForMatching(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	courses, err := s.catalog.AllCourses(ctx)
	if err != nil {
		return nil, err
	}
	return matchTargets(marks, slice.Map(courses, func(_ int, c model.Course) eligibility.Target {
		return c.Target()
	}), eligibleOnly)
}

func (s *StudentService) BursaryMatches(ctx context.Context, id uint, eligibleOnly bool) ([]eligibility.Match, error) {
	marks, err := s.marksForMatching(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	bursaries, err := s.catalog.ListBursaries(ctx)
	if err != nil {
		return nil, err
	}
	return matchTargets(marks, slice.Map(bursaries, func(_ int, b model.Bursary) eligibility.Target {
		return b.Target()
	}), eligibleOnly)
}

func (s *StudentService) CareerMatches(ctx context.Context, id uint, eligibleOnly bool) ([]eligibility.Match, error) {
	marks, err := s.marksForMatching(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	careers, err := s.catalog.ListCareers(ctx)
	if err != nil {
		return nil, err
	}
	return matchTargets(marks, slice.Map(careers, func(_ int, c model.Career) eligibility.Target {
		return c.Target()
	}), eligibleOnly)
}

// CourseEligibility evaluates one course. A student without marks gets every
// requirement reported as missing rather than an error.
func (s *StudentService) CourseEligibility(ctx context.Context, studentID, courseID uint) (eligibility.Result, error) {
	marks, err := s.GetMarks(ctx, studentID)
	if err != nil {
		return eligibility.Result{}, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	course, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		return eligibility.Result{}, err
	}
	return eligibility.Evaluate(marks, course.Requirements.Data())
}

// SubmitQuiz stores the student's answers, replacing earlier ones, and
// invalidates every cached roommate ranking.
func (s *StudentService) SubmitQuiz(ctx context.Context, id uint, answers matching.QuizAnswers) (*model.QuizResponse, error) {
	answers.StudentID = id
	if err := answers.Validate(); err != nil {
		return nil, err
	}

	row := model.NewQuizResponse(answers)
	storeCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.quizzes.Upsert(storeCtx, &row); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if _, err := s.cache.Increment(ctx, roommateGenKey); err != nil {
			s.log.Warn().Err(err).Uint("student_id", id).Msg("Failed to invalidate roommate cache")
		}
	}
	return &row, nil
}

// Roommates ranks every other quiz taker against the student. Results are
// cached; any cache failure falls back to computing.
func (s *StudentService) Roommates(ctx context.Context, id uint, limit int) ([]matching.Match, error) {
	if limit <= 0 {
		limit = matching.DefaultRoommateLimit
	}

	key, cacheable := s.roommateKey(ctx, id, limit)
	if cacheable {
		var cached []matching.Match
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	storeCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	rows, err := s.quizzes.All(storeCtx)
	if err != nil {
		return nil, err
	}

	all := slice.Map(rows, func(_ int, q model.QuizResponse) matching.QuizAnswers {
		return q.Answers()
	})
	matches := matching.FindPotentialRoommates(id, all, limit)
	if matches == nil {
		matches = []matching.Match{}
	}

	if cacheable {
		if err := s.cache.SetJSON(ctx, key, matches, RoommateCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("Failed to cache roommate matches")
		}
	}
	return matches, nil
}

func (s *StudentService) roommateKey(ctx context.Context, id uint, limit int) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	gen, err := s.cache.Get(ctx, roommateGenKey)
	switch {
	case errors.Is(err, cache.ErrNotFound):
		gen = "0"
	case err != nil:
		s.log.Warn().Err(err).Msg("Roommate cache unavailable")
		return "", false
	}
	return fmt.Sprintf("roommates:%s:%d:%d", gen, id, limit), true
}

package offers

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

//go:generate mockgen -source=./generator.go -package=offermocks -destination=mocks/store.mock.go

// Store persists generated offers. CreateOffer must return an error matching
// repository.ErrDuplicate when the (student, course, university) triple exists.
type Store interface {
	CreateOffer(ctx context.Context, offer *model.Offer) error
}

// Result lists what a run created and how many applications already had an offer
type Result struct {
	Created    []model.Offer
	Duplicates int
}

type Generator struct {
	store      Store
	thresholds Thresholds
	now        func() time.Time
	log        zerolog.Logger
}

type Option func(*Generator)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(store Store, thresholds Thresholds, opts ...Option) *Generator {
	g := &Generator{
		store:      store,
		thresholds: thresholds,
		now:        time.Now,
		log:        logger.With("offer-generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate computes the APS once and creates an offer for every pending
// application that clears its university threshold. Pending applications must
// have University loaded; the rest are skipped unread. Duplicates are skipped. Any other store failure stops
// the run; offers created before it are returned alongside the error.
func (g *Generator) Generate(ctx context.Context, marks scoring.MarkSet, apps []model.Application) (Result, error) {
	aps, err := scoring.TopSevenAPS(marks)
	if err != nil {
		return Result{}, err
	}

	res := Result{Created: []model.Offer{}}
	now := g.now()
	for _, app := range apps {
		if app.Status != model.ApplicationStatusPending {
			continue
		}
		if app.University.ID == 0 {
			return res, errors.Wrapf(repository.ErrNotFound, "university %d of application %d", app.UniversityID, app.ID)
		}
		if !ShouldOffer(aps, app, g.thresholds) {
			continue
		}

		offer := NewOffer(app, aps, now)
		err := g.store.CreateOffer(ctx, &offer)
		switch {
		case err == nil:
			res.Created = append(res.Created, offer)
		case errors.Is(err, repository.ErrDuplicate):
			res.Duplicates++
			g.log.Debug().
				Uint("student_id", app.StudentID).
				Uint("application_id", app.ID).
				Msg("Offer already exists, skipping")
		default:
			return res, errors.Wrapf(err, "creating offer for application %d", app.ID)
		}
	}

	g.log.Info().
		Int("aps", aps).
		Int("created", len(res.Created)).
		Int("duplicates", res.Duplicates).
		Msg("Offer generation completed")
	return res, nil
}

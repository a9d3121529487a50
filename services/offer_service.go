package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services/offers"
	"github.com/sahilchouksey/unimatch-api/services/storage"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/pdfvalidation"
)

// GenerationLockTTL outlives any sane generation run; the lock is released early on return
const GenerationLockTTL = 30 * time.Second

// timeoutStore bounds every CreateOffer issued by the generator
type timeoutStore struct {
	offers  repository.OfferRepository
	timeout time.Duration
}

func (t timeoutStore) CreateOffer(ctx context.Context, offer *model.Offer) error {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()
	return t.offers.CreateOffer(ctx, offer)
}

type OfferService struct {
	students     repository.StudentRepository
	applications repository.ApplicationRepository
	offers       repository.OfferRepository
	generator    *offers.Generator
	cache        Cache
	documents    DocumentStore
	timeout      time.Duration
	now          func() time.Time
	log          zerolog.Logger
}

type OfferServiceOption func(*OfferService)

// WithDocumentStore enables condition document uploads
func WithDocumentStore(store DocumentStore) OfferServiceOption {
	return func(s *OfferService) {
		s.documents = store
	}
}

// WithOfferClock replaces time.Now for offer dates and expiry checks
func WithOfferClock(now func() time.Time) OfferServiceOption {
	return func(s *OfferService) {
		s.now = now
	}
}

func NewOfferService(
	students repository.StudentRepository,
	applications repository.ApplicationRepository,
	offerRepo repository.OfferRepository,
	thresholds offers.Thresholds,
	kv Cache,
	timeout time.Duration,
	opts ...OfferServiceOption,
) *OfferService {
	s := &OfferService{
		students:     students,
		applications: applications,
		offers:       offerRepo,
		cache:        kv,
		timeout:      timeout,
		now:          time.Now,
		log:          logger.With("offer-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.generator = offers.NewGenerator(timeoutStore{offers: offerRepo, timeout: timeout}, thresholds,
		offers.WithClock(func() time.Time { return s.now() }))
	return s
}

// GenerateForStudent turns the student's pending applications into offers.
// A per-student lock keeps concurrent requests from doing the same work twice;
// the unique index on offers still decides which insert wins.
func (s *OfferService) GenerateForStudent(ctx context.Context, studentID uint) (offers.Result, error) {
	if s.cache != nil {
		key := fmt.Sprintf("offers:generate:%d", studentID)
		token := uuid.NewString()
		acquired, err := s.cache.AcquireLock(ctx, key, token, GenerationLockTTL)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Uint("student_id", studentID).Msg("Generation lock unavailable, continuing without it")
		case !acquired:
			return offers.Result{}, ErrGenerationInProgress
		default:
			defer func() {
				if err := s.cache.ReleaseLock(context.WithoutCancel(ctx), key, token); err != nil {
					s.log.Warn().Err(err).Str("key", key).Msg("Failed to release generation lock")
				}
			}()
		}
	}

	storeCtx, cancel := withTimeout(ctx, s.timeout)
	student, err := s.students.GetByID(storeCtx, studentID)
	cancel()
	if err != nil {
		return offers.Result{}, err
	}
	marks := student.MarkSet()
	if len(marks) == 0 {
		return offers.Result{}, ErrNoMarks
	}

	storeCtx, cancel = withTimeout(ctx, s.timeout)
	apps, err := s.applications.ListByStudent(storeCtx, studentID)
	cancel()
	if err != nil {
		return offers.Result{}, err
	}

	return s.generator.Generate(ctx, marks, apps)
}

// ListOffers returns the student's offers with expiry applied on read
func (s *OfferService) ListOffers(ctx context.Context, studentID uint) ([]model.Offer, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	list, err := s.offers.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range list {
		list[i].Status = offers.EffectiveStatus(list[i], now)
	}
	return list, nil
}

func (s *OfferService) GetOffer(ctx context.Context, studentID, offerID uint) (*model.Offer, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	offer, err := s.offers.GetForStudent(ctx, offerID, studentID)
	if err != nil {
		return nil, err
	}
	offer.Status = offers.EffectiveStatus(*offer, s.now())
	return offer, nil
}

// Respond accepts or declines an active offer. Accepting after the acceptance
// deadline fails with ErrAcceptanceClosed. The update is conditional on the
// offer still being active and unexpired, so a concurrent response or the
// expiry sweep makes it fail with ErrOfferNotActive.
func (s *OfferService) Respond(ctx context.Context, studentID, offerID uint, accept bool) (*model.Offer, error) {
	target := model.OfferStatusDeclined
	if accept {
		target = model.OfferStatusAccepted
	}

	offer, err := s.GetOffer(ctx, studentID, offerID)
	if err != nil {
		return nil, err
	}
	if err := offers.Transition(offer.Status, target); err != nil {
		return nil, errors.Wrap(ErrOfferNotActive, err.Error())
	}

	now := s.now()
	if accept && !offers.CanAccept(*offer, now) {
		return nil, ErrAcceptanceClosed
	}
	storeCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	updated, err := s.offers.Respond(storeCtx, offerID, studentID, target, offers.Today(now))
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrOfferNotActive
	}

	offer.Status = target
	offer.RespondedAt = &now
	s.log.Info().
		Uint("student_id", studentID).
		Uint("offer_id", offerID).
		Str("status", string(target)).
		Msg("Offer responded")
	return offer, nil
}

// ExpireOverdue persists the expiry of every active offer past its date
func (s *OfferService) ExpireOverdue(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.offers.ExpireOverdue(ctx, offers.Today(s.now()))
}

// UploadConditionDocument attaches a PDF to one of a conditional offer's conditions
func (s *OfferService) UploadConditionDocument(ctx context.Context, studentID, offerID uint, condition string, file *multipart.FileHeader) (*model.OfferDocument, error) {
	if s.documents == nil {
		return nil, ErrStorageDisabled
	}

	offer, err := s.GetOffer(ctx, studentID, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status != model.OfferStatusActive {
		return nil, ErrOfferNotActive
	}
	if !hasCondition(offer.Conditions, condition) {
		return nil, errors.Wrapf(ErrUnknownCondition, "%q", condition)
	}

	res, content, err := pdfvalidation.ReadUpload(file, pdfvalidation.OfferDocumentLimits)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, &DocumentError{Problem: res.Problem}
	}

	key := storage.OfferDocumentKey(studentID, offerID, file.Filename, s.now())
	url, err := s.documents.Upload(ctx, key, content, "application/pdf")
	if err != nil {
		return nil, errors.Wrap(err, "storing offer document")
	}

	doc := &model.OfferDocument{
		OfferID:   offerID,
		StudentID: studentID,
		Condition: condition,
		Filename:  file.Filename,
		SpacesKey: key,
		SpacesURL: url,
		FileSize:  res.FileSize,
		PageCount: res.PageCount,
	}
	storeCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.offers.AddDocument(storeCtx, doc); err != nil {
		if delErr := s.documents.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.log.Warn().Err(delErr).Str("key", key).Msg("Failed to remove orphaned offer document")
		}
		return nil, err
	}
	s.log.Info().Uint("offer_id", offerID).Str("key", key).Int("pages", res.PageCount).Msg("Offer document uploaded")
	return doc, nil
}

func hasCondition(conditions []string, condition string) bool {
	for _, c := range conditions {
		if c == condition {
			return true
		}
	}
	return false
}

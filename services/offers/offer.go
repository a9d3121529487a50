package offers

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/datatypes"

	"github.com/sahilchouksey/unimatch-api/model"
)

// APS bands for the offer type
const (
	UnconditionalMinAPS = 45
	ConditionalMinAPS   = 35
)

// Offer windows in days from the creation date
const (
	ExpiryDays             = 30
	AcceptanceDeadlineDays = 14
)

// ConditionalConditions are attached to every conditional offer
var ConditionalConditions = []string{
	"Maintain current APS in final examinations",
	"Complete final-year schooling (NSC)",
	"Submit certified copies of supporting documents",
	"Pay the registration fee",
}

var ErrInvalidTransition = errors.New("invalid offer status transition")

// DecideType maps an APS onto an offer type and its conditions
func DecideType(aps int) (model.OfferType, []string) {
	switch {
	case aps >= UnconditionalMinAPS:
		return model.OfferTypeUnconditional, []string{}
	case aps >= ConditionalMinAPS:
		conditions := make([]string, len(ConditionalConditions))
		copy(conditions, ConditionalConditions)
		return model.OfferTypeConditional, conditions
	default:
		return model.OfferTypeWaitlist, []string{}
	}
}

// ShouldOffer gates offer creation: only pending applications at or above
// the university's threshold qualify.
func ShouldOffer(aps int, app model.Application, thresholds Thresholds) bool {
	if app.Status != model.ApplicationStatusPending {
		return false
	}
	return aps >= thresholds.For(app.University.Code)
}

// Today truncates a timestamp to its UTC calendar date
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewOffer builds an active offer for an application created at now
func NewOffer(app model.Application, aps int, now time.Time) model.Offer {
	offerType, conditions := DecideType(aps)
	today := Today(now)
	return model.Offer{
		StudentID:          app.StudentID,
		CourseID:           app.CourseID,
		UniversityID:       app.UniversityID,
		ApplicationID:      app.ID,
		Type:               offerType,
		Conditions:         datatypes.NewJSONSlice(conditions),
		APS:                aps,
		ExpiryDate:         datatypes.Date(today.AddDate(0, 0, ExpiryDays)),
		AcceptanceDeadline: datatypes.Date(today.AddDate(0, 0, AcceptanceDeadlineDays)),
		Status:             model.OfferStatusActive,
	}
}

// Transition validates a status change. Active can move to any terminal
// status; nothing leaves a terminal status.
func Transition(from, to model.OfferStatus) error {
	if from != model.OfferStatusActive || !to.IsTerminal() {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", from, to)
	}
	return nil
}

// IsOverdue reports whether today is past the offer's expiry date
func IsOverdue(offer model.Offer, today time.Time) bool {
	return Today(today).After(Today(time.Time(offer.ExpiryDate)))
}

// EffectiveStatus is the status a reader should see: an active offer past
// its expiry date reads as expired even before the sweep updates the row.
func EffectiveStatus(offer model.Offer, today time.Time) model.OfferStatus {
	if offer.Status == model.OfferStatusActive && IsOverdue(offer, today) {
		return model.OfferStatusExpired
	}
	return offer.Status
}

// CanRespond reports whether the student may still accept or decline
func CanRespond(offer model.Offer, today time.Time) bool {
	return EffectiveStatus(offer, today) == model.OfferStatusActive
}

// CanAccept is CanRespond limited to the acceptance deadline. Declining
// stays open until the expiry date.
func CanAccept(offer model.Offer, today time.Time) bool {
	return CanRespond(offer, today) &&
		!Today(today).After(Today(time.Time(offer.AcceptanceDeadline)))
}

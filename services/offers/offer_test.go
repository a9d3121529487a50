package offers

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/sahilchouksey/unimatch-api/model"
)

func TestDecideType(t *testing.T) {
	testCases := []struct {
		name           string
		aps            int
		wantType       model.OfferType
		wantConditions int
	}{
		{name: "maximum", aps: 49, wantType: model.OfferTypeUnconditional},
		{name: "unconditional boundary", aps: 45, wantType: model.OfferTypeUnconditional},
		{name: "just below unconditional", aps: 44, wantType: model.OfferTypeConditional, wantConditions: 4},
		{name: "conditional boundary", aps: 35, wantType: model.OfferTypeConditional, wantConditions: 4},
		{name: "just below conditional", aps: 34, wantType: model.OfferTypeWaitlist},
		{name: "zero", aps: 0, wantType: model.OfferTypeWaitlist},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotType, conditions := DecideType(tc.aps)
			assert.Equal(t, tc.wantType, gotType)
			assert.NotNil(t, conditions)
			assert.Len(t, conditions, tc.wantConditions)
		})
	}
}

func TestDecideType_ConditionsAreCopied(t *testing.T) {
	_, conditions := DecideType(40)
	conditions[0] = "changed"
	assert.NotEqual(t, "changed", ConditionalConditions[0])
}

func TestShouldOffer(t *testing.T) {
	th := Thresholds{ByUniversity: map[string]int{"UCT": 42}, Default: 30}
	uct := model.University{ID: 1, Code: "UCT"}
	other := model.University{ID: 2, Code: "NMU"}

	testCases := []struct {
		name string
		aps  int
		app  model.Application
		want bool
	}{
		{
			name: "pending at threshold",
			aps:  42,
			app:  model.Application{Status: model.ApplicationStatusPending, University: uct},
			want: true,
		},
		{
			name: "pending below threshold",
			aps:  41,
			app:  model.Application{Status: model.ApplicationStatusPending, University: uct},
		},
		{
			name: "unlisted university uses default",
			aps:  30,
			app:  model.Application{Status: model.ApplicationStatusPending, University: other},
			want: true,
		},
		{
			name: "under review is never offered",
			aps:  49,
			app:  model.Application{Status: model.ApplicationStatusUnderReview, University: uct},
		},
		{
			name: "accepted is never offered",
			aps:  49,
			app:  model.Application{Status: model.ApplicationStatusAccepted, University: uct},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldOffer(tc.aps, tc.app, th))
		})
	}
}

func TestNewOffer(t *testing.T) {
	now := time.Date(2025, 1, 31, 23, 59, 0, 0, time.FixedZone("SAST", 2*60*60))
	app := model.Application{ID: 11, StudentID: 1, CourseID: 2, UniversityID: 3}

	offer := NewOffer(app, 40, now)

	assert.Equal(t, model.OfferStatusActive, offer.Status)
	assert.Equal(t, model.OfferTypeConditional, offer.Type)
	assert.Equal(t, uint(11), offer.ApplicationID)
	assert.Equal(t, 40, offer.APS)
	// 23:59 SAST is 21:59 UTC on the same day
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), time.Time(offer.ExpiryDate))
	assert.Equal(t, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), time.Time(offer.AcceptanceDeadline))
}

func TestTransition(t *testing.T) {
	statuses := []model.OfferStatus{
		model.OfferStatusActive,
		model.OfferStatusAccepted,
		model.OfferStatusDeclined,
		model.OfferStatusExpired,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			err := Transition(from, to)
			if from == model.OfferStatusActive && to != model.OfferStatusActive {
				assert.NoError(t, err, "%s -> %s", from, to)
				continue
			}
			assert.True(t, errors.Is(err, ErrInvalidTransition), "%s -> %s", from, to)
		}
	}
}

func TestEffectiveStatus(t *testing.T) {
	expiry := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	active := model.Offer{Status: model.OfferStatusActive, ExpiryDate: datatypes.Date(expiry)}
	declined := model.Offer{Status: model.OfferStatusDeclined, ExpiryDate: datatypes.Date(expiry)}

	assert.Equal(t, model.OfferStatusActive, EffectiveStatus(active, expiry.Add(23*time.Hour)))
	assert.True(t, CanRespond(active, expiry))
	assert.Equal(t, model.OfferStatusExpired, EffectiveStatus(active, expiry.AddDate(0, 0, 1)))
	assert.False(t, CanRespond(active, expiry.AddDate(0, 0, 1)))
	assert.Equal(t, model.OfferStatusDeclined, EffectiveStatus(declined, expiry.AddDate(1, 0, 0)))
	assert.False(t, CanRespond(declined, expiry.AddDate(0, 0, -5)))
}

func TestCanAccept(t *testing.T) {
	offer := NewOffer(model.Application{ID: 1, StudentID: 2, CourseID: 3, UniversityID: 4}, 40,
		time.Date(2025, 1, 31, 15, 0, 0, 0, time.UTC))

	assert.True(t, CanAccept(offer, time.Date(2025, 2, 14, 23, 0, 0, 0, time.UTC)))
	assert.False(t, CanAccept(offer, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, CanRespond(offer, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)))

	offer.Status = model.OfferStatusAccepted
	assert.False(t, CanAccept(offer, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
}

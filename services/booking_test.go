package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/metrics"
	"github.com/meinhoongagan/slot-booking/models"
)

const (
	clientID   = 1
	providerID = 2
	otherID    = 3
)

var bookingNow = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

type bookingFixture struct {
	users   *fakeUsers
	ledger  *fakeLedger
	sink    *fakeSink
	metrics *metrics.Collector
	svc     *BookingService
}

func newBookingFixture(t *testing.T, now time.Time) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		users: newFakeUsers(
			models.User{ID: clientID, Name: "Carla", Email: "carla@example.com"},
			models.User{ID: providerID, Name: "Paulo", Email: "paulo@example.com", Provider: true},
			models.User{ID: otherID, Name: "Otto", Email: "otto@example.com"},
		),
		ledger:  &fakeLedger{},
		sink:    &fakeSink{},
		metrics: metrics.NewCollector("booking_test"),
	}
	f.svc = NewBookingService(f.users, f.ledger, f.sink, zap.NewNop(),
		WithClock(fixedClock(now)), WithMetrics(f.metrics))
	return f
}

func (f *bookingFixture) book(requester uint, provider int64, date string) (*models.Appointment, error) {
	return f.svc.RequestBooking(context.Background(), BookingRequest{
		RequesterID: requester,
		ProviderID:  provider,
		Date:        date,
	})
}

func TestBookingCreatesHourAlignedAppointment(t *testing.T) {
	f := newBookingFixture(t, bookingNow)

	appt, err := f.book(clientID, providerID, "2024-06-10T14:05:00Z")
	require.NoError(t, err)

	assert.NotZero(t, appt.ID)
	assert.Equal(t, uint(clientID), appt.ClientID)
	assert.Equal(t, uint(providerID), appt.ProviderID)
	assert.True(t, time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC).Equal(appt.SlotStart))

	require.Len(t, f.sink.sent, 1)
	assert.Equal(t, uint(providerID), f.sink.sent[0].target)
	assert.Equal(t, "New appointment from Carla on Monday, June 10 at 14:00", f.sink.sent[0].content)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsTotal.WithLabelValues("created")))
}

func TestBookingSameSlotTwiceIsUnavailable(t *testing.T) {
	f := newBookingFixture(t, bookingNow)

	_, err := f.book(clientID, providerID, "2024-06-10T14:05:00Z")
	require.NoError(t, err)

	_, err = f.book(clientID, providerID, "2024-06-10T14:05:00Z")
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Any minute of the same hour maps to the same slot.
	_, err = f.book(otherID, providerID, "2024-06-10T14:59:59Z")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.BookingsTotal.WithLabelValues("slot_unavailable")))
}

func TestBookingPastDate(t *testing.T) {
	f := newBookingFixture(t, time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC))

	_, err := f.book(clientID, providerID, "2024-06-10T14:00:00Z")
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, f.ledger.appts)
}

func TestBookingCurrentSlotIsPast(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 10, 0, 0, time.UTC)

	cases := map[string]string{
		"slot started earlier this hour": "2024-06-10T15:30:00Z",
		"slot equal to now":              "2024-06-10T15:00:00Z",
	}
	for name, date := range cases {
		t.Run(name, func(t *testing.T) {
			f := newBookingFixture(t, now)
			_, err := f.book(clientID, providerID, date)
			assert.ErrorIs(t, err, ErrPastDate)
		})
	}

	f := newBookingFixture(t, time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC))
	_, err := f.book(clientID, providerID, "2024-06-10T15:00:00Z")
	assert.ErrorIs(t, err, ErrPastDate, "a slot must start strictly after now")
}

func TestBookingSelf(t *testing.T) {
	f := newBookingFixture(t, bookingNow)

	_, err := f.book(providerID, providerID, "2024-06-10T14:00:00Z")
	assert.ErrorIs(t, err, ErrSelfBooking)
	assert.NotErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, f.ledger.appts)
}

func TestBookingNonProviderSkipsAvailability(t *testing.T) {
	f := newBookingFixture(t, bookingNow)

	_, err := f.book(clientID, otherID, "2024-06-10T14:00:00Z")
	assert.ErrorIs(t, err, ErrInvalidProvider)
	assert.Zero(t, f.ledger.slotLookups)

	_, err = f.book(clientID, 999, "2024-06-10T14:00:00Z")
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestBookingErrorPrecedence(t *testing.T) {
	taken := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	past := "2024-06-09T14:00:00Z"

	cases := []struct {
		name      string
		now       time.Time
		requester uint
		provider  int64
		date      string
		want      error
	}{
		{"non-provider and past", bookingNow, clientID, otherID, past, ErrInvalidProvider},
		{"past and taken", time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC), clientID, providerID, "2024-06-10T14:00:00Z", ErrPastDate},
		{"past and self", bookingNow, providerID, providerID, past, ErrPastDate},
		{"taken and self", bookingNow, providerID, providerID, "2024-06-10T14:20:00Z", ErrSlotUnavailable},
		{"non-provider self", bookingNow, otherID, otherID, "2024-06-10T14:00:00Z", ErrInvalidProvider},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t, tc.now)
			f.ledger.add(models.Appointment{ClientID: otherID, ProviderID: providerID, SlotStart: taken})

			_, err := f.book(tc.requester, tc.provider, tc.date)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBookingValidation(t *testing.T) {
	cases := []struct {
		name     string
		provider int64
		date     string
		field    string
	}{
		{"missing provider", 0, "2024-06-10T14:00:00Z", "provider_id"},
		{"negative provider", -4, "2024-06-10T14:00:00Z", "provider_id"},
		{"missing date", providerID, "", "date"},
		{"malformed date", providerID, "next tuesday", "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t, bookingNow)
			f.users.failErr = errors.New("directory must not be consulted")

			_, err := f.book(clientID, tc.provider, tc.date)
			require.ErrorIs(t, err, ErrValidation)

			var svcErr *Error
			require.ErrorAs(t, err, &svcErr)
			assert.Contains(t, svcErr.Fields, tc.field)
			assert.Zero(t, f.ledger.slotLookups)
		})
	}
}

func TestBookingNotificationFailureKeepsAppointment(t *testing.T) {
	f := newBookingFixture(t, bookingNow)
	f.sink.err = errors.New("mongo: no reachable servers")

	appt, err := f.book(clientID, providerID, "2024-06-10T14:00:00Z")
	require.NoError(t, err)
	assert.NotNil(t, appt)
	assert.Len(t, f.ledger.appts, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.NotificationsFailed))
}

func TestBookingConflictOnInsertMapsToUnavailable(t *testing.T) {
	f := newBookingFixture(t, bookingNow)
	f.ledger.insertErr = models.ErrSlotConflict

	_, err := f.book(clientID, providerID, "2024-06-10T14:00:00Z")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, f.sink.sent)
}

func TestBookingStorageFailureIsInternal(t *testing.T) {
	f := newBookingFixture(t, bookingNow)
	f.ledger.insertErr = errors.New("connection reset")

	_, err := f.book(clientID, providerID, "2024-06-10T14:00:00Z")
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestBookingUsesApplicationLocation(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	f := newBookingFixture(t, bookingNow)
	f.svc = NewBookingService(f.users, f.ledger, f.sink, zap.NewNop(),
		WithClock(fixedClock(bookingNow)), WithLocation(ist))

	// 14:45 local has no offset and is read in IST.
	appt, err := f.book(clientID, providerID, "2024-06-10T14:45:00")
	require.NoError(t, err)

	local := appt.SlotStart.In(ist)
	assert.Equal(t, 14, local.Hour())
	assert.Zero(t, local.Minute())
	assert.Contains(t, f.sink.sent[0].content, "at 14:00")
}

func TestBookingConcurrentRequestsYieldOneAppointment(t *testing.T) {
	f := newBookingFixture(t, bookingNow)
	for id := uint(10); id < 20; id++ {
		f.users.users[id] = &models.User{ID: id, Name: "client"}
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for id := uint(10); id < 20; id++ {
		wg.Add(1)
		go func(requester uint) {
			defer wg.Done()
			_, err := f.book(requester, providerID, "2024-06-10T14:00:00Z")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrSlotUnavailable):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 9, rejected)
	assert.Len(t, f.ledger.appts, 1)
}

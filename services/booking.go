package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/models"
	"github.com/meinhoongagan/slot-booking/utils"
)

// BookingRequest is an unvalidated request to book ProviderID at Date.
type BookingRequest struct {
	RequesterID uint
	ProviderID  int64
	Date        string
}

// BookingService validates and records new appointments.
type BookingService struct {
	directory UserDirectory
	ledger    AppointmentLedger
	sink      NotificationSink
	log       *zap.Logger
	settings
}

func NewBookingService(directory UserDirectory, ledger AppointmentLedger, sink NotificationSink, log *zap.Logger, opts ...Option) *BookingService {
	return &BookingService{
		directory: directory,
		ledger:    ledger,
		sink:      sink,
		log:       log,
		settings:  newSettings(opts),
	}
}

// RequestBooking books the hour slot containing req.Date. Checks run in a
// fixed order: shape, provider role, past date, availability, self booking.
// The provider notification is best effort and never fails the booking.
func (s *BookingService) RequestBooking(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	appt, err := s.book(ctx, req)
	s.metrics.BookingOutcome(outcome(err))
	return appt, err
}

func (s *BookingService) book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	fields := map[string]string{}
	if req.ProviderID <= 0 {
		fields["provider_id"] = "must be a positive integer"
	}
	date, err := utils.ParseISO(req.Date, s.loc)
	switch {
	case req.Date == "":
		fields["date"] = "is required"
	case err != nil:
		fields["date"] = "must be an ISO 8601 date"
	}
	if req.RequesterID == 0 {
		fields["user_id"] = "is required"
	}
	if len(fields) > 0 {
		return nil, validationError(fields)
	}
	providerID := uint(req.ProviderID)

	provider, err := s.directory.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, internalError("lookup provider", err)
	}
	if provider == nil {
		return nil, ErrInvalidProvider
	}

	slot := utils.StartOfHour(date, s.loc)
	if !slot.After(s.clock.Now()) {
		return nil, ErrPastDate
	}

	taken, err := s.ledger.FindActiveByProviderAndSlot(ctx, providerID, slot)
	if err != nil {
		return nil, internalError("check availability", err)
	}
	if taken != nil {
		return nil, ErrSlotUnavailable
	}

	if req.RequesterID == providerID {
		return nil, ErrSelfBooking
	}

	appt, err := s.ledger.InsertAtomic(ctx, req.RequesterID, providerID, slot)
	if errors.Is(err, models.ErrSlotConflict) {
		return nil, ErrSlotUnavailable
	}
	if err != nil {
		return nil, internalError("create appointment", err)
	}

	s.notifyProvider(ctx, appt)
	return appt, nil
}

func (s *BookingService) notifyProvider(ctx context.Context, appt *models.Appointment) {
	log := s.log.With(zap.Uint("appointment_id", appt.ID), zap.Uint("provider_id", appt.ProviderID))

	client, err := s.directory.FindByID(ctx, appt.ClientID)
	if err != nil || client == nil {
		log.Warn("notification skipped: client lookup failed", zap.Error(err))
		s.metrics.NotificationFailed()
		return
	}

	content := s.formatter.NewAppointment(client.Name, appt.SlotStart.In(s.loc))
	if err := s.sink.Submit(ctx, appt.ProviderID, content); err != nil {
		log.Warn("notification delivery failed", zap.Error(err))
		s.metrics.NotificationFailed()
	}
}

func outcome(err error) string {
	if err == nil {
		return "created"
	}
	return KindOf(err).String()
}

package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/models"
	"github.com/meinhoongagan/slot-booking/utils"
)

// ScheduleService answers a provider's view of one day.
type ScheduleService struct {
	directory UserDirectory
	ledger    AppointmentLedger
	log       *zap.Logger
	settings
}

func NewScheduleService(directory UserDirectory, ledger AppointmentLedger, log *zap.Logger, opts ...Option) *ScheduleService {
	return &ScheduleService{directory: directory, ledger: ledger, log: log, settings: newSettings(opts)}
}

// ListSchedule returns the caller's active appointments on the day of
// rawDay, ordered by slot. Only providers have a schedule.
func (s *ScheduleService) ListSchedule(ctx context.Context, callerID uint, rawDay string) ([]models.Appointment, error) {
	provider, err := s.directory.FindProviderByID(ctx, callerID)
	if err != nil {
		return nil, internalError("lookup provider", err)
	}
	if provider == nil {
		return nil, &Error{Kind: KindInvalidProvider, Message: "User is not a provider"}
	}

	if rawDay == "" {
		return nil, validationError(map[string]string{"date": "is required"})
	}
	day, err := utils.ParseISO(rawDay, s.loc)
	if err != nil {
		return nil, validationError(map[string]string{"date": "must be an ISO 8601 date"})
	}

	start, end := utils.StartOfDay(day, s.loc), utils.EndOfDay(day, s.loc)
	appts, err := s.ledger.FindActiveByProviderAndRange(ctx, callerID, start, end)
	if err != nil {
		return nil, internalError("list schedule", err)
	}
	sortBySlot(appts)

	s.log.Debug("schedule listed",
		zap.Uint("provider_id", callerID),
		zap.Time("day", start),
		zap.Int("count", len(appts)))
	return appts, nil
}

// sortBySlot orders by slot, then id, so equal slots are stable.
func sortBySlot(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if !appts[i].SlotStart.Equal(appts[j].SlotStart) {
			return appts[i].SlotStart.Before(appts[j].SlotStart)
		}
		return appts[i].ID < appts[j].ID
	})
}

package services

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/utils"
)

// Slot describes one bookable hour of a provider's day.
type Slot struct {
	Time      string    `json:"time"`
	Value     time.Time `json:"value"`
	Available bool      `json:"available"`
}

type AvailabilityService struct {
	directory UserDirectory
	ledger    AppointmentLedger
	hours     utils.WorkingHours
	log       *zap.Logger
	settings
}

func NewAvailabilityService(directory UserDirectory, ledger AppointmentLedger, hours utils.WorkingHours, log *zap.Logger, opts ...Option) *AvailabilityService {
	return &AvailabilityService{directory: directory, ledger: ledger, hours: hours, log: log, settings: newSettings(opts)}
}

// DayAvailability lists the provider's working-hour slots on rawDay. A slot
// is available when it starts after now and holds no active appointment.
func (s *AvailabilityService) DayAvailability(ctx context.Context, providerID uint, rawDay string) ([]Slot, error) {
	provider, err := s.directory.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, internalError("lookup provider", err)
	}
	if provider == nil {
		return nil, &Error{Kind: KindNotFound, Message: "Provider not found"}
	}

	if rawDay == "" {
		return nil, validationError(map[string]string{"date": "is required"})
	}
	day, err := utils.ParseISO(rawDay, s.loc)
	if err != nil {
		return nil, validationError(map[string]string{"date": "must be an ISO 8601 date"})
	}

	appts, err := s.ledger.FindActiveByProviderAndRange(ctx, providerID,
		utils.StartOfDay(day, s.loc), utils.EndOfDay(day, s.loc))
	if err != nil {
		return nil, internalError("list appointments", err)
	}
	booked := make(map[int64]bool, len(appts))
	for _, a := range appts {
		booked[a.SlotStart.Unix()] = true
	}

	now := s.clock.Now()
	slots := s.hours.Slots(day, s.loc)
	out := make([]Slot, 0, len(slots))
	for _, start := range slots {
		out = append(out, Slot{
			Time:      strconv.Itoa(start.Hour()) + ":00",
			Value:     start,
			Available: start.After(now) && !booked[start.Unix()],
		})
	}
	return out, nil
}

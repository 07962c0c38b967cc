package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/utils"
)

// ReminderService emails clients ahead of their next-hour appointment.
type ReminderService struct {
	source ReminderSource
	mailer Mailer
	log    *zap.Logger
	settings
}

func NewReminderService(source ReminderSource, mailer Mailer, log *zap.Logger, opts ...Option) *ReminderService {
	return &ReminderService{source: source, mailer: mailer, log: log, settings: newSettings(opts)}
}

// SendUpcoming emails every client holding the slot after the current one
// and returns how many emails went out. Failed sends are logged and skipped.
func (s *ReminderService) SendUpcoming(ctx context.Context) (int, error) {
	slot := utils.StartOfHour(s.clock.Now(), s.loc).Add(time.Hour)

	appts, err := s.source.FindActiveBySlot(ctx, slot)
	if err != nil {
		return 0, internalError("list upcoming appointments", err)
	}

	sent := 0
	for i := range appts {
		a := &appts[i]
		if a.Client.Email == "" {
			s.log.Warn("reminder skipped: client has no email", zap.Uint("appointment_id", a.ID))
			continue
		}
		subject := "Reminder: upcoming appointment"
		body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment with <strong>%s</strong> at %s.</p>
		<p>Best regards,</p>
		<p>Your Appointment Team</p>
	`, a.Client.Name, a.Provider.Name, a.SlotStart.In(s.loc).Format("Monday, January 2 at 15:04"))

		if err := s.mailer.Send(ctx, a.Client.Email, subject, body); err != nil {
			s.log.Error("reminder failed", zap.Uint("appointment_id", a.ID), zap.Error(err))
			s.metrics.ReminderSent(false)
			continue
		}
		s.metrics.ReminderSent(true)
		sent++
	}

	s.log.Info("reminders processed", zap.Time("slot", slot), zap.Int("found", len(appts)), zap.Int("sent", sent))
	return sent, nil
}

package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderJob is implemented by services.ReminderService.
type ReminderJob interface {
	SendUpcoming(ctx context.Context) (int, error)
}

// Start schedules reminders on spec, evaluated in loc. Stop the returned
// scheduler on shutdown.
func Start(spec string, job ReminderJob, loc *time.Location, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(zapCronLogger{log}), cron.SkipIfStillRunning(zapCronLogger{log})),
	)
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := job.SendUpcoming(ctx); err != nil {
			log.Error("appointment reminders failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add reminder job %q: %w", spec, err)
	}
	c.Start()
	log.Info("cron job scheduler started for appointment reminders", zap.String("schedule", spec))
	return c, nil
}

// zapCronLogger adapts zap to cron.Logger.
type zapCronLogger struct {
	log *zap.Logger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}

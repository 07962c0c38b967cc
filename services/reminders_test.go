package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/models"
)

func TestSendUpcomingRemindsNextSlot(t *testing.T) {
	ledger := &fakeLedger{}
	client := models.User{ID: clientID, Name: "Carla", Email: "carla@example.com"}
	late := models.User{ID: otherID, Name: "Otto", Email: "otto@example.com"}
	provider := models.User{ID: providerID, Name: "Paulo", Provider: true}

	ledger.add(models.Appointment{ClientID: clientID, Client: client, ProviderID: providerID, Provider: provider, SlotStart: at(15)})
	ledger.add(models.Appointment{ClientID: otherID, Client: late, ProviderID: providerID, Provider: provider, SlotStart: at(16)})

	mailer := &fakeMailer{}
	now := time.Date(2024, 6, 10, 14, 0, 30, 0, time.UTC)
	svc := NewReminderService(ledger, mailer, zap.NewNop(), WithClock(fixedClock(now)))

	sent, err := svc.SendUpcoming(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "carla@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "Paulo")
	assert.Contains(t, mailer.sent[0].body, "15:00")
}

func TestSendUpcomingContinuesAfterFailure(t *testing.T) {
	ledger := &fakeLedger{}
	for i, email := range []string{"a@example.com", "b@example.com", ""} {
		ledger.add(models.Appointment{
			ClientID:   uint(10 + i),
			Client:     models.User{ID: uint(10 + i), Name: "c", Email: email},
			ProviderID: uint(20 + i),
			SlotStart:  at(15),
		})
	}
	mailer := &fakeMailer{failTo: "a@example.com"}
	svc := NewReminderService(ledger, mailer, zap.NewNop(), WithClock(fixedClock(at(14))))

	sent, err := svc.SendUpcoming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, "b@example.com", mailer.sent[0].to)
}

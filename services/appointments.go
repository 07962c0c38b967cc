package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/models"
)

const PageSize = 20

// ProviderSummary is the public face of a provider.
type ProviderSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// AppointmentView is one of the caller's bookings with its provider embedded.
type AppointmentView struct {
	ID        uint            `json:"id"`
	SlotStart time.Time       `json:"date"`
	Provider  ProviderSummary `json:"provider"`
}

func summarize(u *models.User) ProviderSummary {
	return ProviderSummary{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}

// AppointmentListService lists a client's own bookings.
type AppointmentListService struct {
	directory UserDirectory
	ledger    AppointmentLedger
	log       *zap.Logger
	settings
}

func NewAppointmentListService(directory UserDirectory, ledger AppointmentLedger, log *zap.Logger, opts ...Option) *AppointmentListService {
	return &AppointmentListService{directory: directory, ledger: ledger, log: log, settings: newSettings(opts)}
}

// ListMine returns page (1-based, PageSize items) of the caller's active
// appointments ordered by slot. Pages below 1 are read as 1.
func (s *AppointmentListService) ListMine(ctx context.Context, callerID uint, page int) ([]AppointmentView, error) {
	if page < 1 {
		page = 1
	}
	appts, err := s.ledger.FindActiveByUser(ctx, callerID, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, internalError("list appointments", err)
	}
	sortBySlot(appts)

	views := make([]AppointmentView, 0, len(appts))
	for i := range appts {
		a := &appts[i]
		provider := a.Provider
		if provider.ID == 0 {
			u, err := s.directory.FindByID(ctx, a.ProviderID)
			if err != nil {
				return nil, internalError("lookup provider", err)
			}
			if u != nil {
				provider = *u
			} else {
				provider = models.User{ID: a.ProviderID}
			}
		}
		views = append(views, AppointmentView{
			ID:        a.ID,
			SlotStart: a.SlotStart.In(s.loc),
			Provider:  summarize(&provider),
		})
	}
	return views, nil
}

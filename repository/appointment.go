package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meinhoongagan/slot-booking/models"
)

// AppointmentRepository stores appointments in SQL. Reads only return
// active rows and all times are stored in UTC.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Appointment{}).Where("canceled_at IS NULL")
}

func (r *AppointmentRepository) FindActiveByProviderAndSlot(ctx context.Context, providerID uint, slot time.Time) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.active(ctx).
		Where("provider_id = ? AND slot_start = ?", providerID, slot.UTC()).
		First(&appt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment by slot: %w", err)
	}
	return &appt, nil
}

func (r *AppointmentRepository) FindActiveByProviderAndRange(ctx context.Context, providerID uint, start, end time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.active(ctx).
		Where("provider_id = ? AND slot_start BETWEEN ? AND ?", providerID, start.UTC(), end.UTC()).
		Preload("Client").
		Order("slot_start ASC, id ASC").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("find appointments by range: %w", err)
	}
	return appts, nil
}

func (r *AppointmentRepository) FindActiveByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.active(ctx).
		Where("client_id = ?", userID).
		Preload("Provider").
		Order("slot_start ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("find appointments by user: %w", err)
	}
	return appts, nil
}

// FindActiveBySlot lists every active appointment starting at slot.
func (r *AppointmentRepository) FindActiveBySlot(ctx context.Context, slot time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.active(ctx).
		Where("slot_start = ?", slot.UTC()).
		Preload("Client").
		Preload("Provider").
		Order("id ASC").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("find appointments by slot: %w", err)
	}
	return appts, nil
}

// InsertAtomic relies on the active slot unique index; a concurrent writer
// for the same slot gets models.ErrSlotConflict.
func (r *AppointmentRepository) InsertAtomic(ctx context.Context, clientID, providerID uint, slot time.Time) (*models.Appointment, error) {
	appt := models.Appointment{
		ClientID:   clientID,
		ProviderID: providerID,
		SlotStart:  slot.UTC(),
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&appt).Error
	if isUniqueViolation(err) {
		return nil, models.ErrSlotConflict
	}
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return &appt, nil
}

// Cancel frees the slot held by an appointment. Only used by maintenance
// tooling and tests; clients cannot cancel.
func (r *AppointmentRepository) Cancel(ctx context.Context, id uint, at time.Time) error {
	at = at.UTC()
	res := r.active(ctx).Where("id = ?", id).Update("canceled_at", &at)
	if res.Error != nil {
		return fmt.Errorf("cancel appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package models

import (
	"time"
)

// Appointment occupies one hour-aligned slot of a provider's calendar.
// Among rows with a nil CanceledAt, (ProviderID, SlotStart) is unique; the
// migration enforces this with a partial unique index.
type Appointment struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	ClientID   uint       `json:"user_id" gorm:"not null;index"`
	Client     User       `json:"-" gorm:"foreignKey:ClientID"`
	ProviderID uint       `json:"provider_id" gorm:"not null;index"`
	Provider   User       `json:"-" gorm:"foreignKey:ProviderID"`
	SlotStart  time.Time  `json:"date" gorm:"not null"`
	CanceledAt *time.Time `json:"canceled_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Active reports whether the appointment still holds its slot.
func (a *Appointment) Active() bool {
	return a.CanceledAt == nil
}

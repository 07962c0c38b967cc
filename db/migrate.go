package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/meinhoongagan/slot-booking/models"
)

// activeSlotIndex keeps one active appointment per provider and slot.
// Canceled rows fall outside the index, so a slot can be rebooked.
const activeSlotIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
	ON appointments (provider_id, slot_start) WHERE canceled_at IS NULL`

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.User{}, &models.Appointment{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := gdb.Exec(activeSlotIndex).Error; err != nil {
		return fmt.Errorf("create active slot index: %w", err)
	}
	return nil
}

package jobs

import (
	"log"
	"time"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
)

// RefreshEventStatuses moves events through upcoming/happening/completed
// based on their dates. Manual status edits between runs are overwritten by
// the derived value.
func RefreshEventStatuses() {
	var events []models.Event
	if err := database.DB.Find(&events).Error; err != nil {
		log.Printf("🔥 Failed to load events for status refresh: %v", err)
		return
	}

	now := time.Now()
	updated := 0
	for _, event := range events {
		derived := event.DeriveStatus(now)
		if derived == event.Status {
			continue
		}
		if err := database.DB.Model(&models.Event{}).
			Where("id = ?", event.ID).
			Update("status", derived).Error; err != nil {
			log.Printf("🔥 Failed to update status for event %d: %v", event.ID, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("✅ Event status refresh updated %d event(s)", updated)
	}
}

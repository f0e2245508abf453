package migrations

import (
	"strings"

	"gorm.io/gorm"
)

// migration004Up adds the foreign keys that keep the publish boundary sound:
// an accepted row always references a live source row, and deleting an event
// cascades to everything hanging off it.
func migration004Up(db *gorm.DB) error {
	constraints := []string{
		`ALTER TABLE photos
            ADD CONSTRAINT fk_photos_event
            FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE`,

		`ALTER TABLE reportings
            ADD CONSTRAINT fk_reportings_event
            FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE`,

		`ALTER TABLE accepted_photos
            ADD CONSTRAINT fk_accepted_photos_photo
            FOREIGN KEY (photo_id) REFERENCES photos(id) ON DELETE CASCADE`,

		`ALTER TABLE accepted_photos
            ADD CONSTRAINT fk_accepted_photos_event
            FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE`,

		`ALTER TABLE accepted_reportings
            ADD CONSTRAINT fk_accepted_reportings_reporting
            FOREIGN KEY (reporting_id) REFERENCES reportings(id) ON DELETE CASCADE`,

		`ALTER TABLE accepted_reportings
            ADD CONSTRAINT fk_accepted_reportings_event
            FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE`,
	}

	for _, constraintSQL := range constraints {
		if err := db.Exec(constraintSQL).Error; err != nil {
			// Re-running against an existing schema is fine
			if isDuplicateConstraintError(err) {
				continue
			}
			return err
		}
	}

	return nil
}

// migration004Down drops the foreign keys
func migration004Down(db *gorm.DB) error {
	drops := []string{
		"ALTER TABLE photos DROP CONSTRAINT IF EXISTS fk_photos_event",
		"ALTER TABLE reportings DROP CONSTRAINT IF EXISTS fk_reportings_event",
		"ALTER TABLE accepted_photos DROP CONSTRAINT IF EXISTS fk_accepted_photos_photo",
		"ALTER TABLE accepted_photos DROP CONSTRAINT IF EXISTS fk_accepted_photos_event",
		"ALTER TABLE accepted_reportings DROP CONSTRAINT IF EXISTS fk_accepted_reportings_reporting",
		"ALTER TABLE accepted_reportings DROP CONSTRAINT IF EXISTS fk_accepted_reportings_event",
	}

	for _, dropSQL := range drops {
		if err := db.Exec(dropSQL).Error; err != nil {
			return err
		}
	}

	return nil
}

func isDuplicateConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}

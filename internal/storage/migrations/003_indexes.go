package migrations

import "gorm.io/gorm"

// migration003Up creates performance indexes. The list views read "newest
// first, capped", so created_at DESC carries almost every query.
func migration003Up(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_events_is_active ON events(is_active)",

		"CREATE INDEX IF NOT EXISTS idx_photos_event ON photos(event_id)",
		"CREATE INDEX IF NOT EXISTS idx_photos_created_at ON photos(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_reportings_event ON reportings(event_id)",
		"CREATE INDEX IF NOT EXISTS idx_reportings_created_at ON reportings(created_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_accepted_photos_event ON accepted_photos(event_id)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_accepted_photos_photo ON accepted_photos(photo_id)",

		"CREATE INDEX IF NOT EXISTS idx_accepted_reportings_event ON accepted_reportings(event_id)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_accepted_reportings_reporting ON accepted_reportings(reporting_id)",

		"CREATE INDEX IF NOT EXISTS idx_admin_users_email ON admin_users(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_customer_users_email ON customer_users(LOWER(email))",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration003Down drops performance indexes
func migration003Down(db *gorm.DB) error {
	indexes := []string{
		"idx_events_created_at",
		"idx_events_is_active",
		"idx_photos_event",
		"idx_photos_created_at",
		"idx_reportings_event",
		"idx_reportings_created_at",
		"idx_accepted_photos_event",
		"idx_accepted_photos_photo",
		"idx_accepted_reportings_event",
		"idx_accepted_reportings_reporting",
		"idx_admin_users_email",
		"idx_customer_users_email",
	}

	for _, index := range indexes {
		if err := db.Exec("DROP INDEX IF EXISTS " + index).Error; err != nil {
			return err
		}
	}

	return nil
}

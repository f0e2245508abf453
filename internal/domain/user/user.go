package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser can log into the admin surface with email and password.
type AdminUser struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (AdminUser) TableName() string {
	return "admin_users"
}

// BeforeCreate sets a UUID before creating the record
func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// CustomerUser is an allow-list entry for the customer dashboard. It carries
// no credential; presence plus IsActive is the whole access decision, and the
// same list blocks customer emails from the admin login.
type CustomerUser struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (CustomerUser) TableName() string {
	return "customer_users"
}

// BeforeCreate sets a UUID before creating the record
func (u *CustomerUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

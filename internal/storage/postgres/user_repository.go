package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	userDomain "github.com/gravadigital/promoter-portal-api/internal/domain/user"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
)

// PostgresUserRepository implements UserRepository using GORM
type PostgresUserRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db:  db,
		log: logger.Repository("user"),
	}
}

func (r *PostgresUserRepository) CreateAdmin(admin *userDomain.AdminUser) error {
	if admin == nil {
		return fmt.Errorf("admin cannot be nil")
	}

	if admin.Email == "" {
		return fmt.Errorf("admin email cannot be empty")
	}

	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))

	if err := r.db.Create(admin).Error; err != nil {
		r.log.Error("failed to create admin user", "error", err, "email", admin.Email)
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	r.log.Info("admin user created", "admin_id", admin.ID, "email", admin.Email)
	return nil
}

func (r *PostgresUserRepository) GetAdminByEmail(email string) (*userDomain.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var admin userDomain.AdminUser
	if err := r.db.Where("LOWER(email) = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("admin not found")
		}
		r.log.Error("failed to retrieve admin user", "email", email, "error", err)
		return nil, fmt.Errorf("failed to retrieve admin user: %w", err)
	}

	return &admin, nil
}

// GetCustomerByEmail matches case-insensitively; the allow-list has been fed
// by hand and casing is not reliable.
func (r *PostgresUserRepository) GetCustomerByEmail(email string) (*userDomain.CustomerUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var customer userDomain.CustomerUser
	if err := r.db.Where("LOWER(email) = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("customer not found")
		}
		r.log.Error("failed to retrieve customer user", "email", email, "error", err)
		return nil, fmt.Errorf("failed to retrieve customer user: %w", err)
	}

	return &customer, nil
}

func (r *PostgresUserRepository) IsCustomerEmail(email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := r.db.Model(&userDomain.CustomerUser{}).
		Where("LOWER(email) = ?", email).
		Count(&count).Error; err != nil {
		r.log.Error("failed to check customer email", "email", email, "error", err)
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}

	return count > 0, nil
}

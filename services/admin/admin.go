// File: services/admin/admin.go
package admin

import (
	"context"
	"errors"
	"time"

	adminRepo "staygrid/database/repository/admin"
	"staygrid/models"
	"staygrid/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any authentication failure. It is
// deliberately indistinguishable between unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenDuration = 12 * time.Hour

// AdminService authenticates back-office users.
type AdminService interface {
	Authenticate(ctx context.Context, email, password string) (string, *models.Admin, error)
	Register(ctx context.Context, email, name, password string) (*models.Admin, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}

// Authenticate verifies the credentials and returns a signed JWT plus the
// admin record.
func (s *DefaultAdminService) Authenticate(ctx context.Context, email, password string) (string, *models.Admin, error) {
	admin, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(admin.ID, admin.Email, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Register creates a new active admin with a bcrypt-hashed password.
func (s *DefaultAdminService) Register(ctx context.Context, email, name, password string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

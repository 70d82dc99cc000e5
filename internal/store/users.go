package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/staymarket-dev/staymarket/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates a new user with a bcrypt-hashed password. The uniqueness
// check and the insert share one transaction; the unique indexes on username
// and email remain as a backstop. A collision on either field surfaces as
// the same ErrDuplicateCredential, without naming the field.
func (s *Store) Register(username, email, password, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if role != models.RoleRenter && role != models.RoleOwner {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", username, email).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check existing user: %w", err)
		}

		if count > 0 {
			return ErrDuplicateCredential
		}

		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate returns the user matching email and password. Unknown email
// and wrong password collapse into the same ErrInvalidCredentials so the
// response never reveals which one it was.
func (s *Store) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

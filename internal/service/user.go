package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the storage contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// UserService defines the business logic contract for user accounts.
type UserService interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
	clock  clockwork.Clock
}

func NewUserService(repo UserRepository, logger *logrus.Logger, clock clockwork.Clock) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
		clock:  clock,
	}
}

// CreateUser registers a new account. Email and username must be unique;
// duplicates surface as a conflict.
func (s *userService) CreateUser(ctx context.Context, user *models.User, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "CreateUser",
		"username": user.Username,
	})
	log.Info("Attempting to create a new user")

	if user.Email == "" {
		return apperr.Validation("email", "is required")
	}
	if user.Username == "" {
		return apperr.Validation("username", "is required")
	}
	if password == "" {
		return apperr.Validation("password", "is required")
	}
	if user.AlertThreshold < 0 || user.AlertThreshold > 1 {
		return apperr.Validation("alert_threshold", "must be within [0, 1]")
	}
	if user.AlertThreshold == 0 {
		user.AlertThreshold = models.DefaultAlertThreshold
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.IsActive = true
	user.IsSuperuser = false
	user.CreatedAt = s.clock.Now().UTC()

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to create user in repository")
		return fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User created successfully")
	return nil
}

// GetUser returns a user by ID.
func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "GetUser",
		"user_id": id,
	})

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// ListUsers returns users with offset pagination.
func (s *userService) ListUsers(ctx context.Context, skip, limit int) ([]*models.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "ListUsers",
	})

	users, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list users from repository")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial update. A new password is hashed before
// storage.
func (s *userService) UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "UpdateUser",
		"user_id": id,
	})
	log.Info("Attempting to update user")

	if update.AlertThreshold != nil && (*update.AlertThreshold < 0 || *update.AlertThreshold > 1) {
		return nil, apperr.Validation("alert_threshold", "must be within [0, 1]")
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent user")
		return nil, fmt.Errorf("service: user %d not found for update: %w", id, err)
	}

	update.Apply(user)

	if update.Password != nil && *update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Error("Failed to hash password")
			return nil, fmt.Errorf("service: could not hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		log.WithError(err).Error("Failed to update user in repository")
		return nil, fmt.Errorf("service: could not update user: %w", err)
	}

	log.Info("User updated successfully")
	return user, nil
}

// DeleteUser removes a user account. The schema cascades the user's alerts
// and saved regions.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "DeleteUser",
		"user_id": id,
	})
	log.Info("Attempting to delete user")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete user")
		return fmt.Errorf("service: could not delete user: %w", err)
	}

	log.Info("User deleted successfully")
	return nil
}

// Authenticate verifies the credentials and returns the account. The same
// unauthorized error is returned for unknown email and wrong password.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Authenticate",
	})

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.Warn("Authentication failed: unknown email")
		return nil, fmt.Errorf("service: invalid credentials: %w", apperr.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Authentication failed: invalid password")
		return nil, fmt.Errorf("service: invalid credentials: %w", apperr.ErrUnauthorized)
	}

	if !user.IsActive {
		log.Warn("Authentication failed: inactive user")
		return nil, fmt.Errorf("service: inactive user: %w", apperr.ErrForbidden)
	}

	log.WithField("user_id", user.ID).Info("User authenticated successfully")
	return user, nil
}

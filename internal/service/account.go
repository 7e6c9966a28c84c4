package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/mail"
	"github.com/plushealth/plushealth-server/internal/model"
)

// mailTimeout bounds the fire-and-forget delivery attempt.
const mailTimeout = 30 * time.Second

// Account implements the account directory: registration, login, profile and
// password management, and the email verification and deletion flows.
type Account struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	mailer       mail.Mailer
	logger       *logger.Logger
}

// NewAccount creates a new Account service.
func NewAccount(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	mailer mail.Mailer,
	logger *logger.Logger,
) *Account {
	return &Account{
		userStore:    userStore,
		tokenManager: tokenManager,
		mailer:       mailer,
		logger:       logger,
	}
}

// Register creates an unverified user and dispatches the verification email.
func (a *Account) Register(ctx context.Context, name, email, password string) (model.User, error) {
	a.logger.Debug("Account service: registering user",
		"email", email)

	if name == "" || email == "" || password == "" {
		return model.User{}, fmt.Errorf("%w: name, email and password are required", model.ErrValidation)
	}

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Account service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser.ID != uuid.Nil {
		a.logger.Info("Account service: email already taken",
			"email", email)
		return model.User{}, model.ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken := uuid.NewString()
	user := model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		Token:        &verificationToken,
		CreatedAt:    time.Now(),
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, err
		}
		a.logger.Error("Account service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.dispatchMail("verification message", savedUser.Email, func(ctx context.Context) error {
		return a.mailer.SendVerification(ctx, savedUser.Email, savedUser.Name, verificationToken)
	})

	a.logger.Info("Account service: user registered",
		"user_id", savedUser.ID,
		"email", savedUser.Email)

	return savedUser, nil
}

// Login checks credentials and returns the user with a session token. An
// unverified account cannot log in.
func (a *Account) Login(ctx context.Context, email, password string) (model.User, string, error) {
	a.logger.Debug("Account service: logging in user",
		"email", email)

	if email == "" || password == "" {
		return model.User{}, "", fmt.Errorf("%w: email and password are required", model.ErrValidation)
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, "", model.ErrInvalidCredentials
		}
		a.logger.Error("Account service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", model.ErrInvalidCredentials
	}

	if !user.Verified {
		a.logger.Info("Account service: login attempt on unverified account",
			"user_id", user.ID)
		return model.User{}, "", model.ErrUnverified
	}

	sessionToken, err := a.tokenManager.GenerateToken(user.ID)
	if err != nil {
		a.logger.Error("Account service: failed to generate session token",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	a.logger.Info("Account service: user logged in",
		"user_id", user.ID)

	return user, sessionToken, nil
}

// UpdateProfile applies a partial update; nil fields keep their stored value.
func (a *Account) UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.User, error) {
	a.logger.Debug("Account service: updating profile",
		"user_id", params.ID)

	user, err := a.userStore.GetByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Photo != nil {
		user.Photo = params.Photo
	}

	savedUser, err := a.userStore.Update(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, err
		}
		a.logger.Error("Account service: failed to update user",
			"user_id", params.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return savedUser, nil
}

// ChangePassword overwrites the password after checking the current one.
func (a *Account) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	a.logger.Debug("Account service: changing password",
		"user_id", id)

	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: current and new password are required", model.ErrValidation)
	}

	user, err := a.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return model.ErrInvalidCredentials
	}

	return a.overwritePassword(ctx, id, newPassword)
}

// ResetPassword overwrites the password without a current-password check
// (recovery flow).
func (a *Account) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	a.logger.Debug("Account service: resetting password",
		"user_id", id)

	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", model.ErrValidation)
	}

	return a.overwritePassword(ctx, id, newPassword)
}

func (a *Account) overwritePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.UpdatePassword(ctx, id, string(passwordHash)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		a.logger.Error("Account service: failed to update password",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Account service: password updated",
		"user_id", id)

	return nil
}

// GetProfile returns a user by id.
func (a *Account) GetProfile(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// LookupByEmail finds a user by email. Used by the forgot-password flow.
func (a *Account) LookupByEmail(ctx context.Context, email string) (model.User, error) {
	a.logger.Debug("Account service: looking up user by email",
		"email", email)

	if email == "" {
		return model.User{}, fmt.Errorf("%w: email is required", model.ErrValidation)
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// ConfirmVerification consumes a single-use verification token, marking the
// account verified. A replayed token no longer matches and fails.
func (a *Account) ConfirmVerification(ctx context.Context, verificationToken string) (model.User, error) {
	a.logger.Debug("Account service: confirming verification token")

	if verificationToken == "" {
		return model.User{}, model.ErrInvalidToken
	}

	user, err := a.userStore.ConsumeToken(ctx, verificationToken)
	if err != nil {
		if errors.Is(err, model.ErrInvalidToken) {
			return model.User{}, err
		}
		a.logger.Error("Account service: failed to consume verification token",
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to consume verification token: %w", err)
	}

	a.logger.Info("Account service: account verified",
		"user_id", user.ID)

	return user, nil
}

// RequestDeletion issues a fresh single-use token and dispatches the deletion
// confirmation email.
func (a *Account) RequestDeletion(ctx context.Context, id uuid.UUID, email string) error {
	a.logger.Debug("Account service: requesting account deletion",
		"user_id", id)

	if email == "" {
		return fmt.Errorf("%w: email is required", model.ErrValidation)
	}

	user, err := a.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.Email != email {
		return fmt.Errorf("%w: email does not match account", model.ErrValidation)
	}

	deletionToken := uuid.NewString()
	if err := a.userStore.SetToken(ctx, id, deletionToken); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		a.logger.Error("Account service: failed to set deletion token",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to set deletion token: %w", err)
	}

	a.dispatchMail("deletion confirmation message", user.Email, func(ctx context.Context) error {
		return a.mailer.SendDeletionConfirmation(ctx, user.Email, user.Name, deletionToken)
	})

	a.logger.Info("Account service: deletion requested",
		"user_id", id)

	return nil
}

// ConfirmDeletion consumes a deletion token and removes the user together
// with all owned records in one transaction.
func (a *Account) ConfirmDeletion(ctx context.Context, deletionToken string) (model.User, error) {
	a.logger.Debug("Account service: confirming account deletion")

	if deletionToken == "" {
		return model.User{}, model.ErrInvalidToken
	}

	user, err := a.userStore.GetByToken(ctx, deletionToken)
	if err != nil {
		if errors.Is(err, model.ErrInvalidToken) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by token: %w", err)
	}

	if err := a.userStore.DeleteCascade(ctx, user.ID); err != nil {
		a.logger.Error("Account service: failed to delete user",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Info("Account service: account deleted",
		"user_id", user.ID)

	return user, nil
}

// dispatchMail runs a delivery attempt in the background. The primary
// operation never waits for or fails on delivery.
func (a *Account) dispatchMail(what, email string, send func(context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		if err := send(ctx); err != nil {
			a.logger.Error("Account service: failed to send "+what,
				"email", email,
				"error", err.Error())
		}
	}()
}

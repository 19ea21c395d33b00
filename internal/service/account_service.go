// Package service coordinates the account flows: registration, simulated
// email verification, login, and logout. Each flow is read-modify-save and
// ends in a navigation.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/NoeTobes/FullStackWebApp/internal/domain"
	"github.com/NoeTobes/FullStackWebApp/internal/routing"
	"github.com/NoeTobes/FullStackWebApp/internal/session"
	"github.com/NoeTobes/FullStackWebApp/internal/store"
	apperrors "github.com/NoeTobes/FullStackWebApp/pkg/util"
)

const minPasswordLength = 6

// AccountService owns the account lifecycle flows.
type AccountService struct {
	records *store.Records
	session *session.Session
	router  *routing.Router
	logger  *zap.Logger
}

// NewAccountService builds the service.
func NewAccountService(records *store.Records, sess *session.Session, router *routing.Router, logger *zap.Logger) *AccountService {
	return &AccountService{records: records, session: sess, router: router, logger: logger}
}

// Register creates an unverified user account, remembers its email as
// pending verification, and navigates to the verify-email page.
func (s *AccountService) Register(ctx context.Context, firstName, lastName, email, password string) error {
	details := map[string]any{}
	if firstName == "" {
		details["firstName"] = "required"
	}
	if lastName == "" {
		details["lastName"] = "required"
	}
	if email == "" {
		details["email"] = "required"
	}
	if password == "" {
		details["password"] = "required"
	} else if len(password) < minPasswordLength {
		details["password"] = "must be at least 6 characters"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid registration details", details)
	}

	account, err := s.records.InsertAccount(firstName, lastName, email, password, domain.RoleUser, false)
	if err != nil {
		return err
	}
	if err := s.records.Save(ctx); err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.records.SetPendingEmail(ctx, email); err != nil {
		return apperrors.NewInternalError(err)
	}

	s.logger.Info("registration successful", zap.String("email", email), zap.Int("id", account.ID))
	s.router.Navigate(routing.PathVerifyEmail)
	return nil
}

// VerifyPending flips the pending account's verified flag, clears the
// pending marker, and navigates to login. The flag never reverts.
func (s *AccountService) VerifyPending(ctx context.Context) error {
	pending, ok, err := s.records.PendingEmail(ctx)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !ok || pending == "" {
		return apperrors.NewAuthFailure("no email is awaiting verification")
	}

	if !s.records.MarkVerified(pending) {
		// Marker left in place; the account may appear after a reload.
		return apperrors.NewAuthFailure("account not found")
	}
	if err := s.records.Save(ctx); err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.records.ClearPendingEmail(ctx); err != nil {
		return apperrors.NewInternalError(err)
	}

	s.logger.Info("email verified", zap.String("email", pending))
	s.router.Navigate(routing.PathLogin)
	return nil
}

// Login matches a verified account on email and password, sets the session,
// persists the lookup key, and navigates to the profile page.
func (s *AccountService) Login(ctx context.Context, email, password string) error {
	account, ok := s.records.FindAccountByEmail(email)
	if !ok || account.Password != password || !account.Verified {
		return apperrors.NewAuthFailure("invalid credentials or unverified account")
	}

	s.session.Set(account)
	if err := s.records.SetSessionLookupKey(ctx, email); err != nil {
		return apperrors.NewInternalError(err)
	}

	s.logger.Info("login successful", zap.String("email", email))
	s.router.Navigate(routing.PathProfile)
	return nil
}

// Logout clears the session and the persisted lookup key and navigates home.
func (s *AccountService) Logout(ctx context.Context) error {
	s.session.Clear()
	if err := s.records.ClearSessionLookupKey(ctx); err != nil {
		return apperrors.NewInternalError(err)
	}

	s.logger.Info("logout successful")
	s.router.Navigate(routing.PathHome)
	return nil
}

// RestoreSession rebuilds the session from the persisted lookup key at
// startup. A key that no longer matches a verified account is stale and
// gets discarded.
func (s *AccountService) RestoreSession(ctx context.Context) error {
	key, ok, err := s.records.SessionLookupKey(ctx)
	if err != nil {
		return err
	}
	if !ok || key == "" {
		return nil
	}

	if _, restored := s.session.Restore(key, s.records); !restored {
		s.logger.Info("discarding stale session key", zap.String("email", key))
		return s.records.ClearSessionLookupKey(ctx)
	}

	s.logger.Info("session restored", zap.String("email", key))
	return nil
}

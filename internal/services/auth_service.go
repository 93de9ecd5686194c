// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/seahome/seahome-backend/internal/config"
	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/state"
	"github.com/seahome/seahome-backend/internal/storage"
	"github.com/seahome/seahome-backend/internal/utils"
)

var (
	ErrInvalidAccessCode   = errors.New("invalid access code")
	ErrAdminUnlockRequired = errors.New("admin role requires the access code")
	ErrInvalidRole         = errors.New("unknown role")
)

// TelegramUser is the platform-provided identity of a Mini-App visitor. The
// payload is trusted as-is; signature verification is out of scope.
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
}

type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// AuthService bootstraps sessions and gates the admin role behind the access
// code. The confirmed-admin flag lives in an ephemeral store, so it is gone
// after a restart while the durable collections survive.
type AuthService struct {
	container      *state.Container
	sessions       storage.Store
	jwtCfg         config.JWTConfig
	accessCodeHash []byte
}

func NewAuthService(container *state.Container, cfg *config.Config) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.AccessCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin access code: %w", err)
	}
	return &AuthService{
		container:      container,
		sessions:       storage.NewMemoryStore(),
		jwtCfg:         cfg.JWT,
		accessCodeHash: hash,
	}, nil
}

// BootstrapSession resolves the acting user from the Telegram identity, or a
// fixed dev user when none is supplied, and issues a session token. A user
// already on record keeps their stored role and ban flag.
func (s *AuthService) BootstrapSession(tg *TelegramUser) (Session, error) {
	user := models.User{ID: "dev_user", Username: "traveler_dev", Role: models.RoleGuest}
	if tg != nil {
		username := tg.Username
		if username == "" {
			username = fmt.Sprintf("user_%d", tg.ID)
		}
		user = models.User{
			ID:         fmt.Sprintf("tg_%d", tg.ID),
			Username:   username,
			Role:       models.RoleGuest,
			TelegramID: tg.ID,
			FirstName:  tg.FirstName,
			LastName:   tg.LastName,
			PhotoURL:   tg.PhotoURL,
		}
	}

	if stored, err := s.container.UserByID(user.ID); err == nil {
		user.Role = stored.Role
		user.IsBanned = stored.IsBanned
	}

	if err := s.container.UpsertUser(user); err != nil {
		return Session{}, err
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Username, string(user.Role), s.jwtCfg.SessionTTL)
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return Session{User: user, Token: token}, nil
}

// SwitchRole changes the acting user's role. Switching to admin without a
// previously confirmed unlock is refused.
func (s *AuthService) SwitchRole(userID string, role models.UserRole) (Session, error) {
	if !role.Valid() {
		return Session{}, ErrInvalidRole
	}
	if role == models.RoleAdmin && !s.adminConfirmed(userID) {
		return Session{}, ErrAdminUnlockRequired
	}

	user, err := s.container.MutateUser(userID, func(u *models.User) error {
		u.Role = role
		return nil
	})
	if err != nil {
		return Session{}, err
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Username, string(user.Role), s.jwtCfg.SessionTTL)
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return Session{User: user, Token: token}, nil
}

// UnlockAdmin verifies the access code, records the confirmation for this
// process lifetime and switches the user to the admin role.
func (s *AuthService) UnlockAdmin(userID, accessCode string) (Session, error) {
	if err := bcrypt.CompareHashAndPassword(s.accessCodeHash, []byte(accessCode)); err != nil {
		return Session{}, ErrInvalidAccessCode
	}

	if err := s.sessions.Save(sessionKey(userID), true); err != nil {
		return Session{}, err
	}

	user, err := s.container.MutateUser(userID, func(u *models.User) error {
		u.Role = models.RoleAdmin
		return nil
	})
	if err != nil {
		return Session{}, err
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Username, string(user.Role), s.jwtCfg.SessionTTL)
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return Session{User: user, Token: token}, nil
}

func (s *AuthService) adminConfirmed(userID string) bool {
	var confirmed bool
	found, err := s.sessions.Load(sessionKey(userID), &confirmed)
	return err == nil && found && confirmed
}

func sessionKey(userID string) string {
	return "admin_auth_" + userID
}

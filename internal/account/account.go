// Package account registers travellers and keeps track of who is logged in.
package account

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/store"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// UserStore is the slice of the data service accounts need.
type UserStore interface {
	GetUser(username string) (store.User, bool)
	SaveUser(user store.User) error
}

// Manager owns the session of the single local user.
type Manager struct {
	users   UserStore
	cost    int
	logger  *output.Logger
	now     func() time.Time
	current *store.User
}

// NewManager creates a manager hashing with bcrypt.DefaultCost.
func NewManager(users UserStore, logger *output.Logger) *Manager {
	return &Manager{
		users:  users,
		cost:   bcrypt.DefaultCost,
		logger: logger.Component("account"),
		now:    time.Now,
	}
}

// WithCost overrides the bcrypt cost.
func (m *Manager) WithCost(cost int) *Manager {
	m.cost = cost
	return m
}

// ValidateUsername accepts 3 to 20 letters, digits or underscores.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return errors.ValidationError("username", username, "use 3-20 letters, digits or underscores")
	}
	return nil
}

// ValidatePassword enforces the minimum length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.ValidationError("password", "***", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	return nil
}

// Register creates a user and logs them in.
func (m *Manager) Register(username, password string) (store.User, error) {
	if err := ValidateUsername(username); err != nil {
		return store.User{}, err
	}
	if err := ValidatePassword(password); err != nil {
		return store.User{}, err
	}
	if _, exists := m.users.GetUser(username); exists {
		return store.User{}, errors.New(errors.UserExists, "That name is already known to the spirits").
			WithDetails(fmt.Sprintf("Username: %s", username)).
			WithSuggestion("Choose another name, or log in instead")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return store.User{}, errors.Wrap(err, errors.InternalError, "Failed to hash password")
	}

	now := m.now()
	user := store.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLogin:    now,
	}
	if err := m.users.SaveUser(user); err != nil {
		return store.User{}, err
	}

	m.current = &user
	m.logger.Info("user registered", map[string]any{"user": user.Username})
	return user, nil
}

// Login checks the password and starts a session. Unknown names and wrong
// passwords fail the same way.
func (m *Manager) Login(username, password string) (store.User, error) {
	user, ok := m.users.GetUser(username)
	if !ok {
		m.logger.Warn("login for unknown user", map[string]any{"user": username})
		return store.User{}, errors.AuthFailedError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		m.logger.Warn("login with wrong password", map[string]any{"user": user.Username})
		return store.User{}, errors.AuthFailedError()
	}

	user.LastLogin = m.now()
	if err := m.users.SaveUser(user); err != nil {
		m.logger.WithError(err).Warn("could not record last login", map[string]any{"user": user.Username})
	}

	m.current = &user
	m.logger.Info("user logged in", map[string]any{"user": user.Username})
	return user, nil
}

// Current returns the logged-in user.
func (m *Manager) Current() (store.User, bool) {
	if m.current == nil {
		return store.User{}, false
	}
	return *m.current, true
}

// Logout ends the session.
func (m *Manager) Logout() {
	if m.current != nil {
		m.logger.Info("user logged out", map[string]any{"user": m.current.Username})
	}
	m.current = nil
}

// ChangePassword replaces the current user's password after checking the old one.
func (m *Manager) ChangePassword(oldPassword, newPassword string) error {
	if m.current == nil {
		return errors.New(errors.AuthFailed, "No traveller is logged in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.current.PasswordHash), []byte(oldPassword)); err != nil {
		return errors.AuthFailedError().WithDetails("The current password is wrong")
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), m.cost)
	if err != nil {
		return errors.Wrap(err, errors.InternalError, "Failed to hash password")
	}

	updated := *m.current
	updated.PasswordHash = string(hash)
	if err := m.users.SaveUser(updated); err != nil {
		return err
	}

	m.current = &updated
	m.logger.Info("password changed", map[string]any{"user": updated.Username})
	return nil
}

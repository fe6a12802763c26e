package domain

import (
	"regexp"
	"strings"
)

// SessionState is the lifecycle state of an auth session.
type SessionState string

const (
	// SessionAnonymous indicates no signed-in user.
	SessionAnonymous SessionState = "anonymous"

	// SessionAuthenticating indicates a login attempt in flight.
	SessionAuthenticating SessionState = "authenticating"

	// SessionAuthenticated indicates a signed-in user with a token.
	SessionAuthenticated SessionState = "authenticated"
)

// User is the profile of a signed-in customer.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// AuthSession tracks one storefront session's login state machine:
// anonymous -> authenticating -> authenticated, back to anonymous on logout
// or token invalidation. A failed login restores whatever state the session
// was in before the attempt, so a signed-in user who fails a re-login stays
// signed in. Registration never transitions the session.
type AuthSession struct {
	state SessionState
	user  *User
	token string
}

// NewAuthSession returns an anonymous session.
func NewAuthSession() *AuthSession {
	return &AuthSession{state: SessionAnonymous}
}

// State returns the current lifecycle state.
func (s *AuthSession) State() SessionState {
	return s.state
}

// IsAuthenticated reports whether a user is signed in.
func (s *AuthSession) IsAuthenticated() bool {
	return s.state == SessionAuthenticated
}

// User returns the signed-in user, or nil.
func (s *AuthSession) User() *User {
	return s.user
}

// Token returns the backend auth token, empty when anonymous.
func (s *AuthSession) Token() string {
	return s.token
}

// BeginLogin marks a login attempt in flight. The prior user and token are
// retained so a failure can restore them.
func (s *AuthSession) BeginLogin() error {
	if s.state == SessionAuthenticating {
		return ErrLoginInProgress
	}
	s.state = SessionAuthenticating
	return nil
}

// CompleteLogin applies a successful login.
func (s *AuthSession) CompleteLogin(user User, token string) {
	s.user = &user
	s.token = token
	s.state = SessionAuthenticated
}

// FailLogin restores the pre-attempt state: authenticated if a token was
// retained, anonymous otherwise.
func (s *AuthSession) FailLogin() {
	if s.token != "" {
		s.state = SessionAuthenticated
		return
	}
	s.state = SessionAnonymous
}

// Logout drops the user and token and returns to anonymous. Also applied on
// token invalidation reported by the backend.
func (s *AuthSession) Logout() {
	s.user = nil
	s.token = ""
	s.state = SessionAnonymous
}

var nationalIDPattern = regexp.MustCompile(`^\d{11}$`)

// RegistrationForm carries the sign-up fields. Validation runs before any
// network call; a violation is displayed inline and nothing is submitted.
type RegistrationForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	NationalID      string
	BirthDate       string
}

// Validate checks the form the way the storefront does before submission.
func (f RegistrationForm) Validate() error {
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(f.Password) < 8 {
		return ErrPasswordTooShort
	}
	if !nationalIDPattern.MatchString(f.NationalID) {
		return ErrInvalidNationalID
	}
	if strings.TrimSpace(f.BirthDate) == "" {
		return ErrBirthDateRequired
	}
	return nil
}

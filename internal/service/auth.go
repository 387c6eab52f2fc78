package service

import (
	"context"

	"github.com/victorivanov/famhub/internal/auth"
	"github.com/victorivanov/famhub/internal/database"
	"github.com/victorivanov/famhub/internal/models"
)

// AuthResult holds the user projection and token returned after registration
// or login.
type AuthResult struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// RegisterInput carries the already-validated registration fields.
type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName *string
	LastName  *string
}

// ProfileUpdate carries a partial profile change. Nil pointers mean the field
// was not supplied. SetColor distinguishes "clear the color" (true with a nil
// or empty value) from "leave it alone" (false).
type ProfileUpdate struct {
	Username       *string
	FirstName      *string
	LastName       *string
	PreferredColor *string
	SetColor       bool
}

// AuthService handles registration, login, and profile updates.
type AuthService struct {
	users  database.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates an AuthService.
func NewAuthService(users database.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user and returns the public projection with a token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	if existing != nil {
		return nil, Conflict("EMAIL_TAKEN", "email already registered")
	}

	existing, err = s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	if existing != nil {
		return nil, Conflict("USERNAME_TAKEN", "username is already taken")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}

	user := &models.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		FirstName:    emptyToNil(in.FirstName),
		LastName:     emptyToNil(in.LastName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}

	return s.issueToken(user)
}

// Login authenticates a user by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	if user == nil || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, Unauthorized("INVALID_CREDENTIALS", "invalid email or password")
	}

	return s.issueToken(user)
}

// Me returns the authenticated user's public projection.
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	if user == nil {
		return nil, NotFound("NOT_FOUND", "user not found")
	}
	pub := user.Public()
	return &pub, nil
}

// UpdateProfile applies the supplied fields to the user's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, upd ProfileUpdate) (*models.PublicUser, error) {
	if upd.Username != nil {
		existing, err := s.users.GetByUsername(ctx, *upd.Username)
		if err != nil {
			return nil, Internal("INTERNAL", "internal server error")
		}
		if existing != nil && existing.ID != userID {
			return nil, Conflict("USERNAME_TAKEN", "username is already taken")
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	if user == nil {
		return nil, NotFound("NOT_FOUND", "user not found")
	}

	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.FirstName != nil {
		user.FirstName = emptyToNil(upd.FirstName)
	}
	if upd.LastName != nil {
		user.LastName = emptyToNil(upd.LastName)
	}
	if upd.SetColor {
		user.PreferredColor = emptyToNil(upd.PreferredColor)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}

	pub := user.Public()
	return &pub, nil
}

func (s *AuthService) issueToken(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}
	return &AuthResult{User: user.Public(), Token: token}, nil
}

// emptyToNil normalizes optional text fields: an empty string clears the
// stored value.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adamaho/matchpoint/internal/hash"
	"github.com/adamaho/matchpoint/internal/logging"
	"github.com/adamaho/matchpoint/internal/models"
	"github.com/adamaho/matchpoint/internal/repo"
	"github.com/adamaho/matchpoint/internal/tokens"
)

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Issuer
}

type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// Signup hashes the password, creates the user and its refresh-token row in
// one transaction and mints the first access token. Any persistence failure,
// including a unique violation on email or username, surfaces as-is and the
// HTTP layer reports DATABASE_ERROR.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("password hash failed", "error", err)
		return nil, err
	}

	refreshToken, err := s.Tokens.IssueRefresh()
	if err != nil {
		l.Error("refresh token issue failed", "error", err)
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: pwHash,
	}
	if err := s.Repo.CreateUserWithRefresh(ctx, &user, refreshToken); err != nil {
		l.Error("user create failed", "error", err)
		return nil, err
	}

	accessToken, err := s.Tokens.IssueAccess(tokens.UserClaims{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		l.Error("access token issue failed", "error", err)
		return nil, err
	}

	l.Info("user signed up", "user_id", user.UserID)
	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         &user,
	}, nil
}

// Login checks the email/password pair and replaces the user's refresh
// session with a fresh one.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login failed", "reason", "unknown user")
			return nil, ErrUnknownUser
		}
		l.Error("user lookup failed", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.Password, password) {
		l.Warn("login failed", "reason", "bad password", "user_id", user.UserID)
		return nil, ErrInvalidCredentials
	}

	refreshToken, err := s.Tokens.IssueRefresh()
	if err != nil {
		l.Error("refresh token issue failed", "error", err)
		return nil, err
	}
	if err := s.Repo.ReplaceRefreshToken(ctx, user.UserID, refreshToken); err != nil {
		l.Error("refresh token store failed", "error", err)
		return nil, err
	}

	accessToken, err := s.Tokens.IssueAccess(tokens.UserClaims{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		l.Error("access token issue failed", "error", err)
		return nil, err
	}

	l.Info("user logged in", "user_id", user.UserID)
	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh decodes the expired access token for identity only, checks that
// the (token, user) pair is the stored session and mints a new access token
// from the decoded claims. The refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	claims, err := s.Tokens.DecodeAccess(accessToken)
	if err != nil {
		l.Warn("refresh failed", "reason", "malformed access token")
		return "", ErrUnauthorized
	}

	if _, err := s.Repo.FindRefreshToken(ctx, refreshToken, claims.User.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("refresh failed", "reason", "no matching session", "user_id", claims.User.UserID)
			return "", ErrUnauthorized
		}
		l.Error("refresh token lookup failed", "error", err)
		return "", err
	}

	newAccess, err := s.Tokens.IssueAccess(claims.User)
	if err != nil {
		l.Error("access token issue failed", "error", err)
		return "", err
	}

	l.Info("access token refreshed", "user_id", claims.User.UserID)
	return newAccess, nil
}

// Logout deletes the caller's stored session, but only when the supplied
// refresh token matches it.
func (s *AuthService) Logout(ctx context.Context, userID uint, refreshToken string) error {
	l := logging.FromContext(ctx).With("svc", "auth.logout", "user_id", userID)

	row, err := s.Repo.FindRefreshTokenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("logout failed", "reason", "no session")
			return ErrForbidden
		}
		l.Error("refresh token lookup failed", "error", err)
		return err
	}

	if row.Token != refreshToken {
		l.Warn("logout failed", "reason", "token mismatch")
		return ErrForbidden
	}

	if err := s.Repo.DeleteRefreshTokenByUser(ctx, userID); err != nil {
		l.Error("refresh token delete failed", "error", err)
		return err
	}

	l.Info("user logged out")
	return nil
}

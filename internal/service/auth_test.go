package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adamaho/matchpoint/internal/models"
	"github.com/adamaho/matchpoint/internal/repo"
	"github.com/adamaho/matchpoint/internal/tokens"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{}, &models.RefreshToken{},
		&models.Match{}, &models.Team{}, &models.Player{}, &models.MatchAdmin{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := initTestDB(t)
	issuer := &tokens.Issuer{
		AccessSecret:  []byte("some_shared_secret"),
		RefreshSecret: []byte("some_refresh_shared_secret"),
		Audience:      "urn:audience:test",
		Issuer:        "urn:issuer:test",
	}
	return &AuthService{Repo: repo.New(db), Tokens: issuer}, db
}

func TestSignup(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, "adamaho", "adamaho@prisma.io", "brazil")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)
	require.Equal(t, "adamaho", res.User.Username)
	require.Equal(t, "adamaho@prisma.io", res.User.Email)

	claims, err := svc.Tokens.VerifyAccess(res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, res.User.UserID, claims.User.UserID)

	var row models.RefreshToken
	require.NoError(t, db.Where("user_id = ?", res.User.UserID).First(&row).Error)
	require.Equal(t, res.RefreshToken, row.Token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "adamaho", "adamaho@prisma.io", "brazil")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "someoneelse", "adamaho@prisma.io", "brazil")
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "adamaho@prisma.io").Count(&count).Error)
	require.EqualValues(t, 1, count, "duplicate signup must not create a second user")
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	signedUp, err := svc.Signup(ctx, "adamaho", "adamaho@prisma.io", "brazil")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "adamaho@prisma.io", "brazil")
	require.NoError(t, err)
	require.NotEqual(t, signedUp.RefreshToken, res.RefreshToken, "login must mint a fresh refresh token")

	_, err = svc.Login(ctx, "adamaho@prisma.io", "argentina")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@prisma.io", "brazil")
	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestLoginReplacesSession(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	signedUp, err := svc.Signup(ctx, "adamaho", "adamaho@prisma.io", "brazil")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "adamaho@prisma.io", "brazil")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("user_id = ?", signedUp.User.UserID).Count(&count).Error)
	require.EqualValues(t, 1, count, "a user holds exactly one session row")

	// old session is gone
	_, err = svc.Refresh(ctx, signedUp.AccessToken, signedUp.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthorized)

	// current one works
	_, err = svc.Refresh(ctx, res.AccessToken, res.RefreshToken)
	require.NoError(t, err)
}

func TestRefresh(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	signedUp, err := svc.Signup(ctx, "adamaho", "adamaho@prisma.io", "brazil")
	require.NoError(t, err)

	newAccess, err := svc.Refresh(ctx, signedUp.AccessToken, signedUp.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.Tokens.VerifyAccess(newAccess)
	require.NoError(t, err)
	require.Equal(t, signedUp.User.UserID, claims.User.UserID)
	require.Equal(t, "adamaho", claims.User.Username)
	require.Equal(t, "adamaho@prisma.io", claims.User.Email)

	_, err = svc.Refresh(ctx, signedUp.AccessToken, "some-other-refresh-token")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Refresh(ctx, "not.a.token", signedUp.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	signedUp, err := svc.Signup(ctx, "adamaho", "adamaho@prisma.io", "brazil")
	require.NoError(t, err)
	userID := signedUp.User.UserID

	err = svc.Logout(ctx, userID, "a-mismatched-token")
	require.ErrorIs(t, err, ErrForbidden)

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Where("user_id = ?", userID).Count(&count).Error)
	require.EqualValues(t, 1, count, "mismatched logout must leave the session intact")

	require.NoError(t, svc.Logout(ctx, userID, signedUp.RefreshToken))

	_, err = svc.Refresh(ctx, signedUp.AccessToken, signedUp.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthorized, "refresh after logout must fail")
}

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/catalog"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/config"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
)

type mockCredentialStore struct {
	user       *models.User
	lastLogins int
}

func (m *mockCredentialStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if m.user == nil || m.user.Username != username {
		return nil, sql.ErrNoRows
	}
	user := *m.user
	return &user, nil
}

func (m *mockCredentialStore) UpdateLastLogin(context.Context, string, time.Time) error {
	m.lastLogins++
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "test"}
}

func TestLoginWithStaticCredentials(t *testing.T) {
	svc := NewAuthService(catalog.NewStaticCredentials(), testJWTConfig(), nil, nil)

	res, err := svc.Login(context.Background(), models.LoginRequest{Username: "superadmin", Password: "super123"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, models.RoleSuperAdmin, res.User.Role)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "superadmin", claims.Username)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
}

func TestLoginEveryRoleAccount(t *testing.T) {
	svc := NewAuthService(catalog.NewStaticCredentials(), testJWTConfig(), nil, nil)

	cases := []struct {
		username string
		password string
		role     models.Role
	}{
		{"superadmin", "super123", models.RoleSuperAdmin},
		{"content", "content123", models.RoleContentManager},
		{"finance", "finance123", models.RoleFinanceManager},
		{"teacher", "teacher123", models.RoleTeacher},
	}
	for _, tc := range cases {
		res, err := svc.Login(context.Background(), models.LoginRequest{Username: tc.username, Password: tc.password})
		require.NoError(t, err, tc.username)
		assert.Equal(t, tc.role, res.User.Role)
	}
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc := NewAuthService(catalog.NewStaticCredentials(), testJWTConfig(), nil, nil)

	_, errWrongPass := svc.Login(context.Background(), models.LoginRequest{Username: "superadmin", Password: "nope"})
	_, errUnknown := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "nope"})

	require.Error(t, errWrongPass)
	require.Error(t, errUnknown)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
	assert.Equal(t, appErrors.ErrInvalidCredentials, errWrongPass)
}

func TestLoginInactiveAccount(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	require.NoError(t, err)
	store := &mockCredentialStore{user: &models.User{
		ID:           "u1",
		Username:     "dormant",
		PasswordHash: string(hash),
		Role:         models.RoleTeacher,
		Active:       false,
	}}
	svc := NewAuthService(store, testJWTConfig(), nil, nil)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "dormant", Password: "pass123"})

	assert.Equal(t, appErrors.ErrInactiveAccount, err)
	assert.Zero(t, store.lastLogins)
}

func TestLoginStampsLastLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	require.NoError(t, err)
	store := &mockCredentialStore{user: &models.User{
		ID:           "u1",
		Username:     "active",
		PasswordHash: string(hash),
		Role:         models.RoleTeacher,
		Active:       true,
	}}
	svc := NewAuthService(store, testJWTConfig(), nil, nil)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "active", Password: "pass123"})
	require.NoError(t, err)

	assert.Equal(t, 1, store.lastLogins)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := NewAuthService(catalog.NewStaticCredentials(), testJWTConfig(), nil, nil)

	res, err := svc.Login(context.Background(), models.LoginRequest{Username: "teacher", Password: "teacher123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.AccessToken + "x")
	assert.Error(t, err)

	other := NewAuthService(catalog.NewStaticCredentials(), config.JWTConfig{Secret: "other", Expiration: time.Hour}, nil, nil)
	_, err = other.ValidateToken(res.AccessToken)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", Expiration: -time.Minute, Issuer: "test"}
	svc := NewAuthService(catalog.NewStaticCredentials(), cfg, nil, nil)

	res, err := svc.Login(context.Background(), models.LoginRequest{Username: "teacher", Password: "teacher123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.AccessToken)
	assert.Error(t, err)
}

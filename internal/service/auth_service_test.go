package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
	utils "local-market/pkg"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := repo.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repo.RunMigrations(db))

	return NewAuthService(repo.NewUserRepository(db), "super-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Register(&entity.RegisterInput{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "hunter22",
		UserType: entity.UserTypeBuyer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeBuyer, claims.UserType)

	token, err = svc.Login("alex@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("alex@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&entity.RegisterInput{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "hunter22",
		UserType: entity.UserTypeBuyer,
	})
	require.NoError(t, err)

	_, err = svc.Register(&entity.RegisterInput{
		Username: "alex2",
		Email:    "alex@example.com",
		Password: "hunter22",
		UserType: entity.UserTypeSeller,
	})
	require.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterAdminRequiresSecret(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&entity.RegisterInput{
		Username: "root",
		Email:    "root@example.com",
		Password: "hunter22",
		UserType: entity.UserTypeAdmin,
	})
	require.ErrorIs(t, err, ErrInvalidAdminKey)

	_, err = svc.Register(&entity.RegisterInput{
		Username:       "root",
		Email:          "root@example.com",
		Password:       "hunter22",
		UserType:       entity.UserTypeAdmin,
		AdminSecretKey: "wrong",
	})
	require.ErrorIs(t, err, ErrInvalidAdminKey)

	token, err := svc.Register(&entity.RegisterInput{
		Username:       "root",
		Email:          "root@example.com",
		Password:       "hunter22",
		UserType:       entity.UserTypeAdmin,
		AdminSecretKey: "super-secret",
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeAdmin, claims.UserType)
}

func TestProfileRoundTrip(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Register(&entity.RegisterInput{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "hunter22",
		UserType: entity.UserTypeBuyer,
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)

	profile, err := svc.GetProfile(claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alex", profile.Username)

	require.NoError(t, svc.UpdateProfile(claims.UserID, entity.UpdateProfileInput{
		Username: "alexandra",
		Email:    "alexandra@example.com",
	}))

	profile, err = svc.GetProfile(claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alexandra", profile.Username)
	assert.Equal(t, "alexandra@example.com", profile.Email)
}

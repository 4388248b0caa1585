package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"civicdata_backend/internals/configs"
	"civicdata_backend/internals/constants"
	helper "civicdata_backend/internals/helpers"

	authDTO "civicdata_backend/internals/features/users/auth/dto"
	userDTO "civicdata_backend/internals/features/users/user/dto"
	userModel "civicdata_backend/internals/features/users/user/model"
	userService "civicdata_backend/internals/features/users/user/service"
)

func newAuthDB(t *testing.T) *gorm.DB {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, password string) *userModel.UserModel {
	t.Helper()
	m, err := userService.NewUserService(db).Create(&userDTO.UserCreateRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return m
}

func TestLoginIssuesTokenPair(t *testing.T) {
	db := newAuthDB(t)
	svc := NewAuthService(db)
	user := seedUser(t, db, "jane", "correct-horse-battery")

	tokens, err := svc.Login(&authDTO.LoginRequest{Username: "jane", Password: "correct-horse-battery"})
	require.NoError(t, err)

	assert.Equal(t, user.UserID.String(), tokens.UserID)
	assert.Equal(t, constants.RoleGeneral, tokens.Role)
	assert.Equal(t, constants.RoleRank(constants.RoleGeneral), tokens.RoleID)

	claims, err := helper.ParseToken(configs.JWTSecret, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "jane", claims["username"])

	refreshClaims, err := helper.ParseToken(configs.JWTRefreshSecret, tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims["type"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newAuthDB(t)
	svc := NewAuthService(db)
	seedUser(t, db, "jane", "correct-horse-battery")

	_, err := svc.Login(&authDTO.LoginRequest{Username: "jane", Password: "wrong"})
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)

	// absent user gets the same answer as a wrong password
	_, err = svc.Login(&authDTO.LoginRequest{Username: "nobody", Password: "whatever"})
	fe, ok = err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	db := newAuthDB(t)
	svc := NewAuthService(db)
	user := seedUser(t, db, "jane", "correct-horse-battery")
	require.NoError(t, db.Model(user).Update("user_is_active", false).Error)

	_, err := svc.Login(&authDTO.LoginRequest{Username: "jane", Password: "correct-horse-battery"})
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestRefreshRoundTrip(t *testing.T) {
	db := newAuthDB(t)
	svc := NewAuthService(db)
	seedUser(t, db, "jane", "correct-horse-battery")

	tokens, err := svc.Login(&authDTO.LoginRequest{Username: "jane", Password: "correct-horse-battery"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&authDTO.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, tokens.UserID, refreshed.UserID)

	// an access token is not accepted as a refresh token
	_, err = svc.Refresh(&authDTO.RefreshRequest{RefreshToken: tokens.AccessToken})
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}

func TestLoginStampsLastLogin(t *testing.T) {
	db := newAuthDB(t)
	svc := NewAuthService(db)
	user := seedUser(t, db, "jane", "correct-horse-battery")
	require.Nil(t, user.UserLastLoginAt)

	tokens, err := svc.Login(&authDTO.LoginRequest{Username: "jane", Password: "correct-horse-battery"})
	require.NoError(t, err)

	var afterLogin userModel.UserModel
	require.NoError(t, db.First(&afterLogin, "user_id = ?", user.UserID).Error)
	require.NotNil(t, afterLogin.UserLastLoginAt)

	// a refresh counts as activity too
	_, err = svc.Refresh(&authDTO.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)

	var afterRefresh userModel.UserModel
	require.NoError(t, db.First(&afterRefresh, "user_id = ?", user.UserID).Error)
	require.NotNil(t, afterRefresh.UserLastLoginAt)
	assert.False(t, afterRefresh.UserLastLoginAt.Before(*afterLogin.UserLastLoginAt))

	// the stamp never touches updated_at
	assert.Equal(t, user.UserUpdatedAt.Unix(), afterRefresh.UserUpdatedAt.Unix())
}

func TestRegisterAlwaysGeneral(t *testing.T) {
	db := newAuthDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(&authDTO.RegisterRequest{
		Username: "walkin",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleGeneral, user.UserRole)
}

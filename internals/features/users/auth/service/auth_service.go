package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"civicdata_backend/internals/configs"
	"civicdata_backend/internals/constants"
	helper "civicdata_backend/internals/helpers"

	authDTO "civicdata_backend/internals/features/users/auth/dto"
	userDTO "civicdata_backend/internals/features/users/user/dto"
	userModel "civicdata_backend/internals/features/users/user/model"
	userService "civicdata_backend/internals/features/users/user/service"
)

type AuthService struct {
	db    *gorm.DB
	users *userService.UserService
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db, users: userService.NewUserService(db)}
}

// Register creates a self-service account with the general role.
func (s *AuthService) Register(req *authDTO.RegisterRequest) (*userModel.UserModel, error) {
	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}
	return s.users.Create(&userDTO.UserCreateRequest{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     constants.RoleGeneral,
	})
}

func (s *AuthService) Login(req *authDTO.LoginRequest) (*authDTO.TokenResponse, error) {
	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		// absent and wrong-password look the same to the caller
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	return s.mintTokens(user)
}

func (s *AuthService) Refresh(req *authDTO.RefreshRequest) (*authDTO.TokenResponse, error) {
	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	claims, err := helper.ParseToken(configs.JWTRefreshSecret, req.RefreshToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if t, _ := claims["type"].(string); t != "refresh" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	userID, err := helper.UserIDFromClaims(claims)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	return s.mintTokens(user)
}

// GoogleLogin verifies the ID token against our client id, then finds
// or provisions the matching account.
func (s *AuthService) GoogleLogin(req *authDTO.GoogleLoginRequest) (*authDTO.TokenResponse, error) {
	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	var user userModel.UserModel
	err = s.db.First(&user, "user_google_id = ?", claimSet.Sub).Error
	if err == nil {
		if !user.UserIsActive {
			return nil, fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
		}
		return s.mintTokens(&user)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	created, err := s.provisionGoogleUser(claimSet.Email, claimSet.Name, claimSet.Sub)
	if err != nil {
		return nil, err
	}
	return s.mintTokens(created)
}

func (s *AuthService) provisionGoogleUser(email, name, googleID string) (*userModel.UserModel, error) {
	username := helper.GenerateSlug(strings.SplitN(email, "@", 2)[0])
	if username == "" {
		username = "google-user"
	}
	if len(username) > 40 {
		username = username[:40]
	}
	// reuse the slug machinery to dodge username collisions
	username, err := helper.AssignSlug(s.db, helper.SlugOptions{
		Table:      "users",
		SlugColumn: "user_username",
	}, username, "")
	if err != nil {
		return nil, err
	}

	user := &userModel.UserModel{
		UserUsername: username,
		UserFullName: strings.TrimSpace(name),
		UserPassword: randomPasswordHash(),
		UserRole:     constants.RoleGeneral,
		UserIsActive: true,
		UserGoogleID: &googleID,
	}
	if v := strings.TrimSpace(email); v != "" {
		user.UserEmail = &v
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) mintTokens(user *userModel.UserModel) (*authDTO.TokenResponse, error) {
	// UpdateColumn so a login does not bump user_updated_at
	now := time.Now()
	if err := s.db.Model(user).UpdateColumn("user_last_login_at", now).Error; err != nil {
		return nil, err
	}
	user.UserLastLoginAt = &now

	email := ""
	if user.UserEmail != nil {
		email = *user.UserEmail
	}
	identity := helper.TokenIdentity{
		UserID:   user.UserID,
		Username: user.UserUsername,
		Email:    email,
		Role:     user.UserRole,
	}

	access, err := helper.CreateAccessToken(identity)
	if err != nil {
		return nil, helper.NewInternalApplicationError("failed to sign access token")
	}
	refresh, err := helper.CreateRefreshToken(identity)
	if err != nil {
		return nil, helper.NewInternalApplicationError("failed to sign refresh token")
	}

	return &authDTO.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.UserID.String(),
		Username:     user.UserUsername,
		Role:         user.UserRole,
		RoleID:       constants.RoleRank(user.UserRole),
	}, nil
}

// Google accounts never log in with a password, but the column is not
// null, so they get an unguessable one.
func randomPasswordHash() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(hashed)
}

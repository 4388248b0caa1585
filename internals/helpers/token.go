package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"civicdata_backend/internals/configs"
	"civicdata_backend/internals/constants"
)

const (
	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenIdentity is the claim set both token kinds are minted from.
type TokenIdentity struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     string
}

// CreateAccessToken mints a short-lived token carrying the role claims
// the role middleware reads back.
func CreateAccessToken(id TokenIdentity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  id.UserID.String(),
		"username": id.Username,
		"email":    id.Email,
		"role":     id.Role,
		"role_id":  constants.RoleRank(id.Role),
		"type":     "access",
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func CreateRefreshToken(id TokenIdentity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": id.UserID.String(),
		"type":    "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseToken verifies signature + expiry and returns the claims.
func ParseToken(secret, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// UserIDFromClaims pulls the uuid out of the user_id claim.
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, _ := claims["user_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user id claim")
	}
	return id, nil
}

// GetRawAccessToken returns the access token from:
// 1) cookie "access_token"
// 2) Locals("raw_token") set by middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals("raw_token").(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// SetRawAccessToken stashes the verified raw token for reuse.
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals("raw_token", strings.TrimSpace(raw))
	}
}

/* ===============================
   Identity accessors (set by auth middleware)
=================================*/

func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}
	return id, nil
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}

package dto

import (
	"time"

	"civicdata_backend/internals/features/users/user/model"
)

type UserCreateRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,nepal_phone"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,role"`
}

// UserUpdateRequest covers both self-service profile edits and admin
// edits. Role changes are filtered out in the service for non-admins.
type UserUpdateRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,nepal_phone"`
	Role     *string `json:"role" validate:"omitempty,role"`
	IsActive *bool   `json:"is_active"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type UserResponse struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"is_active"`
	LastLoginAt *string `json:"last_login_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func FromModelUser(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	resp := &UserResponse{
		UserID:    m.UserID.String(),
		Username:  m.UserUsername,
		FullName:  m.UserFullName,
		Email:     m.UserEmail,
		Phone:     m.UserPhone,
		Role:      m.UserRole,
		IsActive:  m.UserIsActive,
		CreatedAt: m.UserCreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UserUpdatedAt.Format(time.RFC3339),
	}
	if m.UserLastLoginAt != nil {
		v := m.UserLastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &v
	}
	return resp
}

func FromModelUsers(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelUser(&ms[i]))
	}
	return out
}

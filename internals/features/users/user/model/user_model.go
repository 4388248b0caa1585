package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserUsername string    `gorm:"type:varchar(50);uniqueIndex;not null;column:user_username" json:"username"`
	UserFullName string    `gorm:"type:varchar(255);column:user_full_name" json:"full_name"`

	// email and phone are unique among live rows only; the check runs in
	// the service, not as a DB constraint, so deleted accounts free them
	UserEmail *string `gorm:"type:varchar(255);column:user_email" json:"email"`
	UserPhone *string `gorm:"type:varchar(20);column:user_phone" json:"phone"`

	UserPassword string `gorm:"type:varchar(250);not null;column:user_password" json:"-"`
	UserRole     string `gorm:"type:varchar(20);not null;default:'general';column:user_role" json:"role"`
	UserIsActive bool   `gorm:"not null;default:true;column:user_is_active" json:"is_active"`

	UserGoogleID *string `gorm:"type:varchar(255);column:user_google_id" json:"-"`

	UserLastLoginAt *time.Time `gorm:"column:user_last_login_at" json:"last_login_at"`

	UserResetPasswordToken  *string    `gorm:"type:varchar(100);column:user_reset_password_token" json:"-"`
	UserResetPasswordSentAt *time.Time `gorm:"column:user_reset_password_sent_at" json:"-"`

	UserCreatedAt time.Time      `gorm:"autoCreateTime;column:user_created_at" json:"created_at"`
	UserUpdatedAt time.Time      `gorm:"autoUpdateTime;column:user_updated_at" json:"updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"index;column:user_deleted_at" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

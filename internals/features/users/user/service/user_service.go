package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"civicdata_backend/internals/constants"
	helper "civicdata_backend/internals/helpers"

	"civicdata_backend/internals/features/users/user/dto"
	"civicdata_backend/internals/features/users/user/model"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uuid.UUID) (*model.UserModel, error) {
	var m model.UserModel
	if err := s.db.First(&m, "user_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *UserService) GetByUsername(username string) (*model.UserModel, error) {
	var m model.UserModel
	err := s.db.First(&m, "lower(user_username) = lower(?)", strings.TrimSpace(username)).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *UserService) List(search, role string, paging helper.Paging) ([]model.UserModel, int64, error) {
	q := s.db.Model(&model.UserModel{})
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(user_username) LIKE ? OR lower(user_full_name) LIKE ?", like, like)
	}
	if role = strings.TrimSpace(role); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.UserModel
	err := q.Order("user_username asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error
	return ms, total, err
}

func (s *UserService) Create(req *dto.UserCreateRequest) (*model.UserModel, error) {
	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	role := req.Role
	if role == "" {
		role = constants.RoleGeneral
	}

	if err := s.checkUsernameFree(username); err != nil {
		return nil, err
	}
	if err := s.checkContactFree(req.Email, req.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, helper.NewInternalApplicationError("failed to hash password")
	}

	m := &model.UserModel{
		UserUsername: username,
		UserFullName: strings.TrimSpace(req.FullName),
		UserPassword: string(hashed),
		UserRole:     role,
		UserIsActive: true,
	}
	if v := strings.TrimSpace(req.Email); v != "" {
		m.UserEmail = &v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		m.UserPhone = &v
	}

	if err := s.db.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Update is the admin path: role and is_active may change here.
func (s *UserService) Update(id uuid.UUID, req *dto.UserUpdateRequest) (*model.UserModel, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	if err := s.applyContact(m, req); err != nil {
		return nil, err
	}
	if req.Role != nil {
		m.UserRole = *req.Role
	}
	if req.IsActive != nil {
		m.UserIsActive = *req.IsActive
	}

	if err := s.db.Save(m).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// UpdateProfile is the self-service path: role and is_active are ignored.
func (s *UserService) UpdateProfile(id uuid.UUID, req *dto.UserUpdateRequest) (*model.UserModel, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	if err := s.applyContact(m, req); err != nil {
		return nil, err
	}

	if err := s.db.Save(m).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *UserService) ChangePassword(id uuid.UUID, req *dto.ChangePasswordRequest) error {
	m, err := s.GetByID(id)
	if err != nil {
		return err
	}

	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(req.OldPassword)) != nil {
		return helper.NewApplicationError("Old password does not match")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.NewInternalApplicationError("failed to hash password")
	}
	return s.db.Model(m).Update("user_password", string(hashed)).Error
}

// Delete soft-deletes and stamps the username so it frees up for reuse
// while the row keeps its audit trail.
func (s *UserService) Delete(id uuid.UUID) error {
	m, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		freed := fmt.Sprintf("%s-deleted-%d", m.UserUsername, time.Now().Unix())
		if len(freed) > 50 {
			freed = freed[len(freed)-50:]
		}
		if err := tx.Model(m).Update("user_username", freed).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
}

func (s *UserService) applyContact(m *model.UserModel, req *dto.UserUpdateRequest) error {
	var email, phone *string
	if req.Email != nil {
		if v := strings.TrimSpace(*req.Email); v != "" {
			email = &v
		}
	}
	if req.Phone != nil {
		if v := strings.TrimSpace(*req.Phone); v != "" {
			phone = &v
		}
	}

	checkEmail := ""
	if email != nil {
		checkEmail = *email
	}
	checkPhone := ""
	if phone != nil {
		checkPhone = *phone
	}
	if err := s.checkContactFree(checkEmail, checkPhone, m.UserID); err != nil {
		return err
	}

	if req.FullName != nil {
		m.UserFullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		m.UserEmail = email
	}
	if req.Phone != nil {
		m.UserPhone = phone
	}
	return nil
}

// username stays reserved across every row because the unique index is
// global; deletion renames the row first, which is what frees the name.
func (s *UserService) checkUsernameFree(username string) error {
	var cnt int64
	err := s.db.Unscoped().Model(&model.UserModel{}).
		Where("lower(user_username) = lower(?)", username).
		Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt > 0 {
		return helper.NewValidationError(map[string][]string{
			"username": {"A user with that username already exists."},
		})
	}
	return nil
}

// email/phone uniqueness only looks at live rows.
func (s *UserService) checkContactFree(email, phone string, selfID uuid.UUID) error {
	fields := map[string][]string{}

	if email = strings.TrimSpace(email); email != "" {
		q := s.db.Model(&model.UserModel{}).Where("lower(user_email) = lower(?)", email)
		if selfID != uuid.Nil {
			q = q.Where("user_id <> ?", selfID)
		}
		var cnt int64
		if err := q.Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			fields["email"] = append(fields["email"], "A user with that email already exists.")
		}
	}

	if phone = strings.TrimSpace(phone); phone != "" {
		q := s.db.Model(&model.UserModel{}).Where("user_phone = ?", phone)
		if selfID != uuid.Nil {
			q = q.Where("user_id <> ?", selfID)
		}
		var cnt int64
		if err := q.Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			fields["phone"] = append(fields["phone"], "A user with that phone number already exists.")
		}
	}

	if len(fields) > 0 {
		return helper.NewValidationError(fields)
	}
	return nil
}

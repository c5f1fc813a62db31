package service

import (
	"context"
	"errors"
	"net/mail"

	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/artmarket/internal/util/crypt"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailExists       = apperr.New(apperr.ConflictCode, "email already registered")
	ErrInvalidEmail      = apperr.New(apperr.InvalidArgumentCode, "email is malformed")
	ErrPasswordMismatch  = apperr.New(apperr.InvalidArgumentCode, "password confirmation does not match")
	ErrInvalidRole       = apperr.New(apperr.InvalidArgumentCode, "role must be buyer, artist or admin")
	ErrUserNotFound      = apperr.New(apperr.NotFoundCode, "user not found")
	ErrIncorrectPassword = apperr.New(apperr.UnauthenticatedCode, "incorrect password")
	ErrNotVerified       = apperr.New(apperr.UnauthenticatedCode, "email is not verified")
	ErrInvalidVerifyCode = apperr.New(apperr.NotFoundCode, "invalid verification code")
)

type RegisterParams struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            model.UserRole
}

type UpdateUserParams struct {
	FirstName *string
	LastName  *string
	Password  *string
}

type IUserService interface {
	// Register 創建未驗證用戶並產生驗證碼, 驗證碼由呼叫端決定投遞方式
	Register(ctx context.Context, arg RegisterParams) (*model.User, error)
	VerifyUser(ctx context.Context, code string) error
	Login(ctx context.Context, email string, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, arg UpdateUserParams) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserService struct {
	userRepo *db.UserRepo
}

func NewUserService(userRepo *db.UserRepo) IUserService {
	return &UserService{userRepo: userRepo}
}

// Register 註冊用戶
// 錯誤:
//   - apperr.InvalidArgumentCode 460: 欄位缺漏 / email 格式錯誤 / 密碼確認不符 / 密碼強度不足
//   - apperr.ConflictCode 409: email 已註冊
//   - apperr.InternalErrorCode 500: 持久層錯誤
func (s *UserService) Register(ctx context.Context, arg RegisterParams) (*model.User, error) {
	if arg.FirstName == "" || arg.LastName == "" || arg.Email == "" || arg.Password == "" {
		return nil, apperr.New(apperr.InvalidArgumentCode, "first name, last name, email and password are required")
	}
	if _, err := mail.ParseAddress(arg.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if arg.Password != arg.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if err := crypt.ValidateStringPassword(arg.Password); err != nil {
		return nil, apperr.New(apperr.InvalidArgumentCode, err.Error())
	}

	role := arg.Role
	if role == "" {
		role = model.RoleBuyer
	}
	if !model.IsValidUserRole(string(role)) {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, arg.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to check existing email", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	verificationCode := uuid.NewString()
	user := &model.User{
		FirstName:        arg.FirstName,
		LastName:         arg.LastName,
		Email:            arg.Email,
		Role:             role,
		IsVerified:       false,
		VerificationCode: &verificationCode,
	}
	if err := user.SetPassword(arg.Password); err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to hash password", err)
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create user", err)
	}
	return created, nil
}

// VerifyUser 以驗證碼啟用帳號, 啟用後驗證碼即作廢
func (s *UserService) VerifyUser(ctx context.Context, code string) error {
	if code == "" {
		return ErrInvalidVerifyCode
	}

	user, err := s.userRepo.GetUserByVerificationCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidVerifyCode
		}
		return apperr.Wrap(apperr.InternalErrorCode, "failed to look up verification code", err)
	}

	user.IsVerified = true
	user.VerificationCode = nil
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "failed to verify user", err)
	}
	return nil
}

// Login 依序檢查: 帳號存在 -> 密碼正確 -> 已完成信箱驗證
// 三種失敗各自回傳獨立錯誤供呼叫端區分
func (s *UserService) Login(ctx context.Context, email string, password string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to look up user", err)
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, ErrIncorrectPassword
	}

	if !user.IsVerified {
		return nil, ErrNotVerified
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get user", err)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get user", err)
	}
	return user, nil
}

// UpdateUser 更新用戶資料, 帶密碼時重新雜湊
func (s *UserService) UpdateUser(ctx context.Context, id uint, arg UpdateUserParams) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get user", err)
	}

	if arg.FirstName != nil {
		user.FirstName = *arg.FirstName
	}
	if arg.LastName != nil {
		user.LastName = *arg.LastName
	}
	if arg.Password != nil {
		if err := crypt.ValidateStringPassword(*arg.Password); err != nil {
			return nil, apperr.New(apperr.InvalidArgumentCode, err.Error())
		}
		if err := user.SetPassword(*arg.Password); err != nil {
			return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to hash password", err)
		}
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to update user", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return apperr.Wrap(apperr.InternalErrorCode, "failed to get user", err)
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "failed to delete user", err)
	}
	return nil
}

package db

import (
	"context"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
)

type UserRepo struct {
	dbDao *DbDao
}

func NewUserRepo(dbDao *DbDao) *UserRepo {
	return &UserRepo{dbDao: dbDao}
}

// CreateUser - 創建用戶
func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.dbDao.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID - 根據 ID 查詢用戶
func (r *UserRepo) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.dbDao.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail - 根據 email 查詢用戶
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.dbDao.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByVerificationCode - 根據驗證碼查詢用戶
func (r *UserRepo) GetUserByVerificationCode(ctx context.Context, code string) (*model.User, error) {
	var user model.User
	err := r.dbDao.WithContext(ctx).Where("verification_code = ?", code).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers - 查詢所有用戶
func (r *UserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.dbDao.WithContext(ctx).Find(&users).Error
	return users, err
}

// UpdateUser - 更新用戶
func (r *UserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	return r.dbDao.WithContext(ctx).Save(user).Error
}

// DeleteUser - 軟刪除用戶
func (r *UserRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.dbDao.WithContext(ctx).Delete(&model.User{}, id).Error
}

// HardDeleteUser - 硬刪除用戶
func (r *UserRepo) HardDeleteUser(ctx context.Context, id uint) error {
	return r.dbDao.WithContext(ctx).Unscoped().Delete(&model.User{}, id).Error
}

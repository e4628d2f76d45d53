package models

import (
	"errors"
	"fmt"

	"blogcms/global"
	"blogcms/models/ctypes"
	"blogcms/utils"

	"gorm.io/gorm"
)

// UserModel 注册用户，认证和资料管理由外部系统负责，
// 这里只保存评论展示和角色判断需要的最小字段
type UserModel struct {
	MODEL    `json:","`
	Nickname string          `json:"nick_name" gorm:"column:nick_name;size:50" validate:"required,min=2,max=50"`
	Account  string          `json:"account" gorm:"uniqueIndex:idx_account,length:191" validate:"required,min=5,max=191"`
	Password string          `json:"-" validate:"required,min=6"`
	Avatar   string          `json:"avatar" gorm:"size:255"`
	Role     ctypes.UserRole `json:"role" validate:"required"`
}

var (
	ErrUserNotFound = errors.New("用户不存在")
	ErrUserExist    = errors.New("用户名或账号已存在")
)

// Create 创建用户，仅供命令行工具初始化版主和管理员账号
func (u *UserModel) Create() error {
	if err := utils.Validate(u); err != nil {
		return fmt.Errorf("输入验证失败: %w", err)
	}
	if !u.Role.Valid() {
		return errors.New("非法的用户角色")
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := u.checkExist(tx); err != nil {
			return err
		}

		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("密码处理失败: %w", err)
		}
		u.Password = hashedPassword

		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}

		return nil
	})
}

// checkExist 检查用户是否已存在
func (u *UserModel) checkExist(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&UserModel{}).
		Where("nick_name = ? OR account = ?", u.Nickname, u.Account).
		Count(&count).
		Error
	if err != nil {
		return fmt.Errorf("检查用户存在性失败: %w", err)
	}
	if count > 0 {
		return ErrUserExist
	}
	return nil
}

// FindByAccount 根据账号查找用户
func (u *UserModel) FindByAccount(account string) error {
	err := global.DB.Where("account = ?", account).Take(u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

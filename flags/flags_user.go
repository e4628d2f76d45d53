package flags

import (
	"fmt"

	"blogcms/global"
	"blogcms/models"
	"blogcms/models/ctypes"
)

// CreateUser 创建用户，主要用于初始化版主和管理员账号
func CreateUser(account, password, role string) error {
	r := ctypes.UserRole(role)
	if !r.Valid() {
		return fmt.Errorf("非法角色: %s", role)
	}

	user := models.UserModel{
		Nickname: account,
		Account:  account,
		Password: password,
		Role:     r,
	}
	if err := user.Create(); err != nil {
		return err
	}

	global.Log.Infof("创建用户成功, 账号 %s, 角色 %s", account, role)
	return nil
}

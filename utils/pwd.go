package utils

import (
	"blogcms/global"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hash密码
func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		global.Log.Error("bcrypt.GenerateFromPassword() failed", zap.String("error", err.Error()))
		return "", err
	}
	return string(hash), nil
}

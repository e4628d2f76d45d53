package utils

import (
	"errors"
	"time"

	"blogcms/global"
	"blogcms/models/ctypes"

	"github.com/dgrijalva/jwt-go"
)

// PayLoad 令牌负载，身份和角色由外部认证服务签发，这里只消费
type PayLoad struct {
	Account string          `json:"account"`
	Role    ctypes.UserRole `json:"role"`
	UserID  int64           `json:"user_id"`
}

type CustomClaims struct {
	PayLoad
	jwt.StandardClaims
}

// IsModerator 是否具备审核权限
func (c *CustomClaims) IsModerator() bool {
	return c != nil && c.Role.IsModerator()
}

// GenerateAccessToken 生成 Access Token，仅供命令行工具签发调试令牌
func GenerateAccessToken(payload PayLoad) (string, error) {
	expires := global.Config.Jwt.Expires
	if expires <= 0 {
		expires = 24
	}
	claims := CustomClaims{
		PayLoad: payload,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expires) * time.Hour).Unix(),
			Issuer:    global.Config.Jwt.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.Config.Jwt.Secret))
}

// ParseToken 解析 Token
func ParseToken(tokenString string) (*CustomClaims, error) {
	var claims CustomClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(global.Config.Jwt.Secret), nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, errors.New("token已过期")
			} else if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, errors.New("token格式错误")
			} else if ve.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
				return nil, errors.New("token签名无效")
			}
		}
		return nil, errors.New("token无效")
	}

	if !token.Valid {
		return nil, errors.New("token验证失败")
	}

	return &claims, nil
}

package middleware

import (
	"strings"

	"blogcms/models/res"
	"blogcms/service/redis_ser"
	"blogcms/utils"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "claims"
	tokenKey  = "token"
)

func extractToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return "", false
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// JwtAuth 强制登录，令牌缺失、无效或已拉黑时直接拦截
func JwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			res.HttpError(c, 401, res.TokenMissing, "")
			c.Abort()
			return
		}
		if redis_ser.IsTokenBlacklisted(token) {
			res.HttpError(c, 401, res.TokenInvalid, "")
			c.Abort()
			return
		}
		claims, err := utils.ParseToken(token)
		if err != nil {
			res.HttpError(c, 401, res.TokenInvalid, "")
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// JwtOptional 可选登录，不带令牌按匿名继续，带了却无效仍视为错误
func JwtOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.Next()
			return
		}
		if redis_ser.IsTokenBlacklisted(token) {
			res.HttpError(c, 401, res.TokenInvalid, "")
			c.Abort()
			return
		}
		claims, err := utils.ParseToken(token)
		if err != nil {
			res.HttpError(c, 401, res.TokenInvalid, "")
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// GetToken 从上下文取出原始令牌，注销时拉黑用
func GetToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// GetClaims 从上下文取出登录信息，匿名请求返回nil
func GetClaims(c *gin.Context) *utils.CustomClaims {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*utils.CustomClaims)
	if !ok {
		return nil
	}
	return claims
}

package system

import (
	"time"

	"blogcms/global"
	"blogcms/middleware"
	"blogcms/models/res"
	"blogcms/service/redis_ser"

	"github.com/gin-gonic/gin"
)

// LogoutView 注销当前令牌，拉黑到其自然过期为止
func (System) LogoutView(c *gin.Context) {
	claims := middleware.GetClaims(c)
	token := middleware.GetToken(c)
	if claims == nil || token == "" {
		res.HttpError(c, 401, res.TokenMissing, "")
		return
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if err := redis_ser.BlacklistToken(token, ttl); err != nil {
		global.Log.Errorf("拉黑令牌失败: %s", err)
		res.Error(c, res.CacheError, "")
		return
	}

	global.Log.Infof("用户 %d 注销", claims.UserID)
	res.SuccessWithMsg(c, nil, "注销成功")
}

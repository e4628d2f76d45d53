package comment

import (
	"blogcms/api/system"
	"blogcms/middleware"
	"blogcms/service/moderation_ser"

	"github.com/gin-gonic/gin"
)

type Comment struct{}

// viewerFromCtx 从登录态取出请求方身份，未登录按匿名处理
func viewerFromCtx(c *gin.Context) moderation_ser.Viewer {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return moderation_ser.Viewer{Anonymous: true}
	}
	return moderation_ser.Viewer{
		UserID: claims.UserID,
		Role:   claims.Role,
	}
}

func verifyCaptcha(id, code string) bool {
	return system.VerifyCaptcha(id, code)
}

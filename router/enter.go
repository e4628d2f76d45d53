package router

import (
	"blogcms/core"
	"blogcms/global"
	"blogcms/utils"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery(), utils.Cors())

	apiGroup := router.Group("api")
	routerGroup := RouterGroup{apiGroup}
	routerGroup.CommentRouter()
	routerGroup.SystemRouter()

	return router
}

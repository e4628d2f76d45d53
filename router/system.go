package router

import (
	"blogcms/api"
	"blogcms/middleware"
)

func (r RouterGroup) SystemRouter() {
	app := api.AppGroup.SystemApi

	r.GET("system/captcha", app.CaptchaCreateView)
	r.POST("system/logout", middleware.JwtAuth(), app.LogoutView)
}

package router

import (
	"blogcms/api"
	"blogcms/middleware"
)

func (r RouterGroup) CommentRouter() {
	app := api.AppGroup.CommentApi

	r.GET("comments", middleware.JwtOptional(), app.CommentListView)
	r.GET("comments/count", app.CommentCountView)
	r.POST("comments", middleware.JwtOptional(), app.CommentCreateView)
	r.GET("comments/:id", middleware.JwtOptional(), app.CommentDetailView)
	r.PUT("comments/:id", middleware.JwtAuth(), app.CommentUpdateView)
	r.DELETE("comments/:id", middleware.JwtAuth(), app.CommentDeleteView)
	r.POST("comments/:id/reactions", middleware.JwtAuth(), app.CommentReactView)
}

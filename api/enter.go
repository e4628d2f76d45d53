package api

import (
	"blogcms/api/comment"
	"blogcms/api/system"
)

type Api struct {
	CommentApi comment.Comment
	SystemApi  system.System
}

var AppGroup = new(Api)

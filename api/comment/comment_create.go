package comment

import (
	"errors"

	"blogcms/global"
	"blogcms/middleware"
	"blogcms/models"
	"blogcms/models/res"
	"blogcms/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CreateRequest struct {
	PostID        string `json:"post_id" binding:"required"`
	ParentID      *int64 `json:"parent_id"`
	Content       string `json:"content" binding:"required,min=1,max=2000"`
	AuthorName    string `json:"author_name" binding:"omitempty,max=100"`
	AuthorEmail   string `json:"author_email" binding:"omitempty,email"`
	AuthorWebsite string `json:"author_website" binding:"omitempty,url"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaCode   string `json:"captcha_code"`
}

// CommentCreateView 创建评论，登录用户用令牌身份，游客必须带昵称和邮箱。
// 新评论一律进入待审核
func (Comment) CommentCreateView(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			res.HttpError(c, 400, res.InvalidParameter, utils.FormatValidationError(errs))
			return
		}
		res.HttpError(c, 400, res.InvalidJSON, "")
		return
	}

	comment := models.CommentModel{
		PostID:    req.PostID,
		ParentID:  req.ParentID,
		Content:   req.Content,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	claims := middleware.GetClaims(c)
	if claims != nil {
		if req.AuthorName != "" || req.AuthorEmail != "" || req.AuthorWebsite != "" {
			res.HttpError(c, 400, res.InvalidParameter, "登录用户不能携带游客信息")
			return
		}
		comment.UserID = &claims.UserID
	} else {
		if req.AuthorName == "" || req.AuthorEmail == "" {
			res.HttpError(c, 400, res.MissingParameter, "游客评论需要昵称和邮箱")
			return
		}
		if global.Config.Captcha.Enable && !verifyCaptcha(req.CaptchaID, req.CaptchaCode) {
			res.HttpError(c, 400, res.CaptchaError, "")
			return
		}
		comment.AuthorName = req.AuthorName
		comment.AuthorEmail = req.AuthorEmail
		comment.AuthorWebsite = req.AuthorWebsite
	}

	if err := models.CommentCreate(&comment); err != nil {
		switch {
		case errors.Is(err, models.ErrPostNotFound):
			res.HttpError(c, 404, res.PostNotFound, "")
		case errors.Is(err, models.ErrPostUnpublished):
			res.HttpError(c, 404, res.PostUnpublished, "")
		case errors.Is(err, models.ErrParentNotFound):
			res.HttpError(c, 404, res.ParentNotFound, "")
		case errors.Is(err, models.ErrParentMismatch):
			res.HttpError(c, 400, res.ParentMismatch, "")
		default:
			global.Log.Errorf("创建评论失败: %s", err)
			res.Error(c, res.DBError, "")
		}
		return
	}

	global.Log.Infof("创建评论成功, id %d, 文章 %s", comment.ID, comment.PostID)
	res.Created(c, comment, "评论已提交，等待审核")
}

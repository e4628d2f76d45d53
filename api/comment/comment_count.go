package comment

import (
	"blogcms/global"
	"blogcms/models"
	"blogcms/models/ctypes"
	"blogcms/models/res"
	"blogcms/service/redis_ser"

	"github.com/gin-gonic/gin"
)

type CountRequest struct {
	PostID string `form:"post_id" binding:"required"`
}

type CountResponse struct {
	PostID string `json:"post_id"`
	Count  int64  `json:"count"`
}

// CommentCountView 文章的可见评论数，前端文章列表展示用。
// 优先走redis计数，未命中时回源数据库并回填缓存
func (Comment) CommentCountView(c *gin.Context) {
	var req CountRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		res.HttpError(c, 400, res.InvalidParameter, "post_id不能为空")
		return
	}

	count, ok := redis_ser.GetPostCommentCount(req.PostID)
	if !ok {
		err := global.DB.Model(&models.CommentModel{}).
			Where("post_id = ? AND status = ?", req.PostID, ctypes.StatusApproved).
			Count(&count).Error
		if err != nil {
			global.Log.Errorf("统计文章评论数失败: %s", err)
			res.Error(c, res.DBError, "")
			return
		}
		if err := redis_ser.SetPostCommentCount(req.PostID, count); err != nil {
			global.Log.Warnf("回填文章评论计数失败: %s", err)
		}
	}

	res.Success(c, CountResponse{PostID: req.PostID, Count: count})
}

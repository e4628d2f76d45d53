package comment

import (
	"errors"

	"blogcms/global"
	"blogcms/middleware"
	"blogcms/models"
	"blogcms/models/res"

	"github.com/gin-gonic/gin"
)

type DeleteResponse struct {
	ID      int64 `json:"id"`
	Removed int64 `json:"removed"`
}

// CommentDeleteView 删除评论，整棵回复子树和相关反应一起物理删除。
// 作者可以删自己的评论，版主可以删任何评论
func (Comment) CommentDeleteView(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.HttpError(c, 400, res.InvalidParameter, "")
		return
	}

	comment, err := models.CommentGet(req.ID)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			res.HttpError(c, 404, res.CommentNotFound, "")
			return
		}
		global.Log.Errorf("获取评论失败: %s", err)
		res.Error(c, res.DBError, "")
		return
	}

	claims := middleware.GetClaims(c)
	if !claims.IsModerator() && !comment.IsAuthor(claims.UserID) {
		res.HttpError(c, 403, res.PermissionDenied, "")
		return
	}

	removed, err := models.CommentDelete(comment)
	if err != nil {
		global.Log.Errorf("删除评论失败: %s", err)
		res.Error(c, res.DBError, "")
		return
	}

	// 计数缓存不逐条回退，交给定时任务对齐
	global.Log.Infof("删除评论 %d 及回复共 %d 条, 操作人 %d", comment.ID, removed, claims.UserID)
	res.SuccessWithMsg(c, DeleteResponse{ID: comment.ID, Removed: removed}, "删除评论成功")
}

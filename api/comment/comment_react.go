package comment

import (
	"errors"

	"blogcms/global"
	"blogcms/middleware"
	"blogcms/models"
	"blogcms/models/ctypes"
	"blogcms/models/res"

	"github.com/gin-gonic/gin"
)

type ReactRequest struct {
	ReactionType string `json:"reaction_type" binding:"required"`
}

type ReactResponse struct {
	Applied        bool                          `json:"applied"`
	ReactionCounts map[ctypes.ReactionType]int64 `json:"reaction_counts"`
}

// CommentReactView 对评论做出反应。同类型再点一次取消，不同类型直接切换，
// 每人每条评论至多保留一种反应
func (Comment) CommentReactView(c *gin.Context) {
	var uri models.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		res.HttpError(c, 400, res.InvalidParameter, "")
		return
	}

	var req ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.HttpError(c, 400, res.MissingParameter, "reaction_type不能为空")
		return
	}
	rt := ctypes.ReactionType(req.ReactionType)
	if !rt.Valid() {
		res.HttpError(c, 400, res.InvalidParameter, "不支持的反应类型")
		return
	}

	comment, err := models.CommentGet(uri.ID)
	if err != nil {
		if errors.Is(err, models.ErrCommentNotFound) {
			res.HttpError(c, 404, res.CommentNotFound, "")
			return
		}
		global.Log.Errorf("获取评论失败: %s", err)
		res.Error(c, res.DBError, "")
		return
	}

	viewer := viewerFromCtx(c)
	if !viewer.CanSee(comment) {
		res.HttpError(c, 404, res.CommentNotFound, "")
		return
	}

	claims := middleware.GetClaims(c)
	applied, err := models.ReactionToggle(comment.ID, claims.UserID, rt)
	if err != nil {
		if errors.Is(err, models.ErrReactionConflict) {
			res.Error(c, res.ReactionConflict, "")
			return
		}
		global.Log.Errorf("切换评论反应失败: %s", err)
		res.Error(c, res.DBError, "")
		return
	}

	counts, err := models.ReactionCounts(comment.ID)
	if err != nil {
		global.Log.Errorf("统计评论反应失败: %s", err)
		res.Error(c, res.DBError, "")
		return
	}

	res.Success(c, ReactResponse{
		Applied:        applied,
		ReactionCounts: counts,
	})
}

package comment

import (
	"errors"

	"blogcms/global"
	"blogcms/models"
	"blogcms/models/res"
	"blogcms/service/moderation_ser"
	"blogcms/utils"

	"github.com/gin-gonic/gin"
)

// CommentDetailView 获取单条评论和反应计数。
// 请求方无权查看时按不存在处理，不暴露评论是否真的存在
func (Comment) CommentDetailView(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.HttpError(c, 400, res.InvalidParameter, "")
		return
	}

	comment, err := models.CommentDetail(req.ID)
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

	if viewer.IsModerator() {
		comment.IPRegion = utils.GetAddrByIp(comment.IPAddress)
		comment.Excerpt = utils.ContentExcerpt(comment.Content, excerptRunes)
	}
	moderation_ser.StripModerationContext([]*models.CommentModel{comment}, viewer)

	res.Success(c, comment)
}

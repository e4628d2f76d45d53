package comment

import (
	"blogcms/global"
	"blogcms/models"
	"blogcms/models/ctypes"
	"blogcms/models/res"
	"blogcms/service/moderation_ser"
	"blogcms/utils"

	"github.com/gin-gonic/gin"
)

type ListRequest struct {
	models.PageInfo
	PostID string `form:"post_id" binding:"required"`
	Status string `form:"status"`
}

const excerptRunes = 80

// CommentListView 按文章列出评论树，创建时间升序。
// 普通访客只能看到已通过的评论和自己的待审核评论，
// status筛选参数只对版主生效
func (Comment) CommentListView(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		res.HttpError(c, 400, res.InvalidParameter, "post_id不能为空")
		return
	}
	req.Normalize()

	flat, err := models.CommentFlatListByPost(req.PostID)
	if err != nil {
		global.Log.Errorf("获取评论列表失败: %s", err)
		res.Error(c, res.DBError, "")
		return
	}

	viewer := viewerFromCtx(c)
	visible := moderation_ser.FilterVisible(flat, viewer)

	if req.Status != "" && viewer.IsModerator() {
		status := ctypes.CommentStatus(req.Status)
		if !status.Valid() {
			res.HttpError(c, 400, res.StatusInvalid, "")
			return
		}
		filtered := visible[:0]
		for _, item := range visible {
			if item.Status == status {
				filtered = append(filtered, item)
			}
		}
		visible = filtered
	}

	total := int64(len(visible))
	offset := (req.Page - 1) * req.PageSize
	if offset > len(visible) {
		offset = len(visible)
	}
	end := offset + req.PageSize
	if end > len(visible) {
		end = len(visible)
	}
	page := visible[offset:end]

	ids := make([]int64, 0, len(page))
	for _, item := range page {
		ids = append(ids, item.ID)
	}
	counts, err := models.ReactionCountsForComments(ids)
	if err != nil {
		global.Log.Errorf("统计评论反应失败: %s", err)
		res.Error(c, res.DBError, "")
		return
	}
	for _, item := range page {
		item.ReactionCounts = counts[item.ID]
	}

	if viewer.IsModerator() {
		for _, item := range page {
			item.IPRegion = utils.GetAddrByIp(item.IPAddress)
			item.Excerpt = utils.ContentExcerpt(item.Content, excerptRunes)
		}
	}
	moderation_ser.StripModerationContext(page, viewer)

	forest := models.BuildCommentForest(page)
	res.SuccessWithPage(c, forest, total, req.Page, req.PageSize)
}

package moderation_ser

import (
	"blogcms/models"
	"blogcms/models/ctypes"
)

// Viewer 请求方身份，Anonymous为真时UserID和Role无意义
type Viewer struct {
	Anonymous bool
	UserID    int64
	Role      ctypes.UserRole
}

// IsModerator 版主或管理员
func (v Viewer) IsModerator() bool {
	return !v.Anonymous && v.Role.IsModerator()
}

// CanSee 单条评论对请求方是否可见：
// 已通过的对所有人可见，版主看全部，
// 登录用户无论什么状态都能看到自己的评论
func (v Viewer) CanSee(c *models.CommentModel) bool {
	if c.Status == ctypes.StatusApproved {
		return true
	}
	if v.IsModerator() {
		return true
	}
	if !v.Anonymous && c.IsAuthor(v.UserID) {
		return true
	}
	return false
}

// FilterVisible 过滤出请求方可见的评论，保持输入顺序
func FilterVisible(comments []*models.CommentModel, v Viewer) []*models.CommentModel {
	visible := make([]*models.CommentModel, 0, len(comments))
	for _, c := range comments {
		if v.CanSee(c) {
			visible = append(visible, c)
		}
	}
	return visible
}

// StripModerationContext 审核辅助字段只给版主看，
// 其他人响应前抹掉，omitempty让字段直接消失
func StripModerationContext(comments []*models.CommentModel, v Viewer) {
	if v.IsModerator() {
		return
	}
	for _, c := range comments {
		c.IPAddress = ""
		c.UserAgent = ""
		c.IPRegion = ""
		c.Excerpt = ""
		if c.User != nil {
			c.User.Account = ""
		}
		c.AuthorEmail = ""
	}
}

package comment

import (
	"errors"

	"blogcms/global"
	"blogcms/middleware"
	"blogcms/models"
	"blogcms/models/ctypes"
	"blogcms/models/res"
	"blogcms/service/moderation_ser"
	"blogcms/service/redis_ser"
	"blogcms/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type UpdateRequest struct {
	Content string `json:"content" binding:"omitempty,min=1,max=2000"`
	Status  string `json:"status"`
}

// CommentUpdateView 更新评论。作者可以改自己评论的内容，已通过的改完回到待审核；
// 版主改内容不回退，并且可以直接流转状态。游客评论没有作者身份，只有版主能动。
// 内容和状态在一条语句里落库，不存在改了一半的中间态
func (Comment) CommentUpdateView(c *gin.Context) {
	var uri models.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		res.HttpError(c, 400, res.InvalidParameter, "")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			res.HttpError(c, 400, res.InvalidParameter, utils.FormatValidationError(errs))
			return
		}
		res.HttpError(c, 400, res.InvalidJSON, "")
		return
	}
	if req.Content == "" && req.Status == "" {
		res.HttpError(c, 400, res.MissingParameter, "content和status至少提供一个")
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

	claims := middleware.GetClaims(c)
	prev := comment.Status
	final := prev

	// 先把两类变更全部校验完，再一次性落库
	if req.Status != "" {
		status := ctypes.CommentStatus(req.Status)
		if !status.Valid() {
			res.HttpError(c, 400, res.StatusInvalid, "")
			return
		}
		if !moderation_ser.CanTransition(claims.Role, status) {
			res.HttpError(c, 403, res.PermissionDenied, "只有版主能修改评论状态")
			return
		}
		final = status
	}

	var newContent *string
	if req.Content != "" {
		if !claims.IsModerator() && !comment.IsAuthor(claims.UserID) {
			res.HttpError(c, 403, res.PermissionDenied, "")
			return
		}
		newContent = &req.Content
		// 显式状态流转优先，否则套用编辑回审规则
		if req.Status == "" {
			final = moderation_ser.NextStatusOnEdit(claims.Role, prev)
		}
	}

	var newStatus *ctypes.CommentStatus
	if final != prev {
		newStatus = &final
	}

	if err := models.CommentApplyUpdate(comment, newContent, newStatus); err != nil {
		global.Log.Errorf("更新评论失败: %s", err)
		res.Error(c, res.DBError, "")
		return
	}

	// 可见评论计数跨过approved边界时同步缓存
	if prev != ctypes.StatusApproved && final == ctypes.StatusApproved {
		redis_ser.IncrPostCommentCount(comment.PostID, 1)
	} else if prev == ctypes.StatusApproved && final != ctypes.StatusApproved {
		redis_ser.IncrPostCommentCount(comment.PostID, -1)
	}
	if final != prev {
		global.Log.Infof("评论 %d 状态 %s -> %s, 操作人 %d", comment.ID, prev, final, claims.UserID)
	}

	res.SuccessWithMsg(c, comment, "更新评论成功")
}

package models

import (
	"context"
	"errors"
	"fmt"

	"blogcms/global"
	"blogcms/models/ctypes"
	"blogcms/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CommentModel 评论模型。ParentID为空表示顶级评论，作者二选一：
// 注册用户(UserID) 或 游客三元组(AuthorName/AuthorEmail/AuthorWebsite)
type CommentModel struct {
	MODEL         `json:","`
	PostID        string               `json:"post_id" gorm:"size:64;index:idx_post_parent"`
	ParentID      *int64               `json:"parent_id" gorm:"index:idx_post_parent"`
	Content       string               `json:"content" gorm:"type:text"`
	Status        ctypes.CommentStatus `json:"status" gorm:"type:varchar(10);default:pending;index"`
	UserID        *int64               `json:"user_id,omitempty"`
	User          *UserModel           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AuthorName    string               `json:"author_name,omitempty" gorm:"size:100"`
	AuthorEmail   string               `json:"author_email,omitempty" gorm:"size:190"`
	AuthorWebsite string               `json:"author_website,omitempty" gorm:"size:255"`
	IPAddress     string               `json:"ip_address,omitempty" gorm:"size:64"`
	UserAgent     string               `json:"user_agent,omitempty" gorm:"size:255"`

	// 以下字段装配响应时填充，不落库
	IPRegion       string                         `json:"ip_region,omitempty" gorm:"-"`
	Excerpt        string                         `json:"excerpt,omitempty" gorm:"-"`
	ReactionCounts map[ctypes.ReactionType]int64  `json:"reaction_counts,omitempty" gorm:"-"`
	SubComments    []*CommentModel                `json:"sub_comments" gorm:"-"`
}

var (
	ErrCommentNotFound = errors.New("评论不存在")
	ErrParentNotFound  = errors.New("回复的评论不存在")
	ErrParentMismatch  = errors.New("不能回复其他文章的评论")
	ErrAuthorInvalid   = errors.New("评论作者信息不完整")
)

// AuthorRef 作者引用，注册用户和游客二选一
type AuthorRef struct {
	Registered bool
	UserID     int64
	Name       string
	Email      string
	Website    string
}

// AuthorRef 返回评论作者的标记联合表示
func (c *CommentModel) AuthorRef() AuthorRef {
	if c.UserID != nil {
		return AuthorRef{Registered: true, UserID: *c.UserID}
	}
	return AuthorRef{
		Name:    c.AuthorName,
		Email:   c.AuthorEmail,
		Website: c.AuthorWebsite,
	}
}

// IsAuthor 判断给定用户是否为评论作者，游客评论没有作者身份
func (c *CommentModel) IsAuthor(userID int64) bool {
	return c.UserID != nil && *c.UserID == userID
}

// validateAuthor 两种作者形式必须恰好出现一种，
// MySQL不强制CHECK约束，所以在模型边界校验
func (c *CommentModel) validateAuthor() error {
	if c.UserID != nil {
		if c.AuthorName != "" || c.AuthorEmail != "" || c.AuthorWebsite != "" {
			return ErrAuthorInvalid
		}
		return nil
	}
	if c.AuthorName == "" || c.AuthorEmail == "" {
		return ErrAuthorInvalid
	}
	return nil
}

// filterContent 评论内容入库前的处理：黑名单净化 + 敏感词屏蔽
func filterContent(content string) string {
	return utils.MaskSensitiveWords(utils.SanitizeContent(content))
}

// CommentCreate 创建评论。校验目标文章已发布、父评论存在且同属一篇文章，
// 新评论一律从pending开始，版主自己的评论也不例外
func CommentCreate(comment *CommentModel) error {
	if err := comment.validateAuthor(); err != nil {
		return err
	}

	if _, err := PostGetPublished(comment.PostID); err != nil {
		return err
	}

	comment.Content = filterContent(comment.Content)
	comment.Status = ctypes.StatusPending

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if comment.ParentID != nil {
			var parent CommentModel
			if err := tx.Select("id", "post_id").First(&parent, *comment.ParentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrParentNotFound
				}
				return err
			}
			if parent.PostID != comment.PostID {
				return ErrParentMismatch
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("创建评论失败: %w", err)
		}
		return nil
	})
}

// CommentGet 根据ID获取评论
func CommentGet(id int64) (*CommentModel, error) {
	var comment CommentModel
	if err := global.DB.Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// CommentDetail 获取评论及其反应计数，两个查询互不依赖并发执行
func CommentDetail(id int64) (*CommentModel, error) {
	var (
		comment *CommentModel
		counts  map[ctypes.ReactionType]int64
	)

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		comment, err = CommentGet(id)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = ReactionCounts(id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comment.ReactionCounts = counts
	return comment, nil
}

// CommentFlatListByPost 获取文章的全部评论，按创建时间升序。
// 可见性过滤和树形组装由调用方完成
func CommentFlatListByPost(postID string) ([]*CommentModel, error) {
	var comments []*CommentModel
	err := global.DB.Model(&CommentModel{}).
		Where("post_id = ?", postID).
		Preload("User").
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("获取评论失败: %w", err)
	}
	return comments, nil
}

// CommentApplyUpdate 一条语句同时落内容和状态变更，要么全生效要么全不生效。
// 内容在这里重新净化，状态流转的合法性由调用方通过审核服务校验
func CommentApplyUpdate(comment *CommentModel, newContent *string, newStatus *ctypes.CommentStatus) error {
	updates := map[string]interface{}{}

	var filtered string
	if newContent != nil {
		filtered = filterContent(*newContent)
		updates["content"] = filtered
	}
	if newStatus != nil {
		updates["status"] = *newStatus
	}
	if len(updates) == 0 {
		return nil
	}

	if err := global.DB.Model(comment).Updates(updates).Error; err != nil {
		return fmt.Errorf("更新评论失败: %w", err)
	}

	if newContent != nil {
		comment.Content = filtered
	}
	if newStatus != nil {
		comment.Status = *newStatus
	}
	return nil
}

// commentSubtreeIDs 收集以rootID为根的整棵回复子树的ID，逐层宽度优先，
// 不用递归，深度不受限制
func commentSubtreeIDs(tx *gorm.DB, rootID int64) ([]int64, error) {
	ids := []int64{rootID}
	frontier := []int64{rootID}

	for len(frontier) > 0 {
		var next []int64
		err := tx.Model(&CommentModel{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &next).Error
		if err != nil {
			return nil, err
		}
		ids = append(ids, next...)
		frontier = next
	}

	return ids, nil
}

// CommentDelete 级联删除评论及其整棵回复子树和相关反应，单个事务内完成，
// 失败时整棵树保持原样。返回删除的评论数
func CommentDelete(comment *CommentModel) (int64, error) {
	var removed int64

	err := global.DB.Transaction(func(tx *gorm.DB) error {
		ids, err := commentSubtreeIDs(tx, comment.ID)
		if err != nil {
			return fmt.Errorf("收集回复子树失败: %w", err)
		}

		if err := tx.Where("comment_id IN ?", ids).Delete(&ReactionModel{}).Error; err != nil {
			return fmt.Errorf("删除评论反应失败: %w", err)
		}

		result := tx.Where("id IN ?", ids).Delete(&CommentModel{})
		if result.Error != nil {
			return fmt.Errorf("删除评论失败: %w", result.Error)
		}
		removed = result.RowsAffected
		return nil
	})

	return removed, err
}

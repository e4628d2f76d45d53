package moderation_ser

import (
	"testing"

	"blogcms/models"
	"blogcms/models/ctypes"
)

func newComment(id int64, status ctypes.CommentStatus, userID *int64) *models.CommentModel {
	c := &models.CommentModel{Status: status, UserID: userID}
	c.ID = id
	return c
}

func uid(id int64) *int64 {
	return &id
}

var (
	anonymous = Viewer{Anonymous: true}
	regular   = Viewer{UserID: 100, Role: ctypes.RoleUser}
	moderator = Viewer{UserID: 200, Role: ctypes.RoleModerator}
)

func TestViewerCanSee(t *testing.T) {
	tests := []struct {
		name    string
		viewer  Viewer
		comment *models.CommentModel
		want    bool
	}{
		{"匿名可见已通过", anonymous, newComment(1, ctypes.StatusApproved, nil), true},
		{"匿名不可见待审核", anonymous, newComment(2, ctypes.StatusPending, nil), false},
		{"匿名不可见已拒绝", anonymous, newComment(3, ctypes.StatusRejected, nil), false},
		{"作者可见自己的待审核", regular, newComment(4, ctypes.StatusPending, uid(100)), true},
		{"作者可见自己的已拒绝", regular, newComment(5, ctypes.StatusRejected, uid(100)), true},
		{"他人不可见别人的待审核", regular, newComment(6, ctypes.StatusPending, uid(999)), false},
		{"游客待审核评论登录用户不可见", regular, newComment(7, ctypes.StatusPending, nil), false},
		{"版主可见待审核", moderator, newComment(8, ctypes.StatusPending, nil), true},
		{"版主可见垃圾评论", moderator, newComment(9, ctypes.StatusSpam, nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.viewer.CanSee(tt.comment); got != tt.want {
				t.Errorf("CanSee = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterVisible(t *testing.T) {
	comments := []*models.CommentModel{
		newComment(1, ctypes.StatusApproved, nil),
		newComment(2, ctypes.StatusPending, uid(100)),
		newComment(3, ctypes.StatusPending, uid(999)),
		newComment(4, ctypes.StatusRejected, nil),
		newComment(5, ctypes.StatusApproved, uid(999)),
	}

	t.Run("匿名只看到已通过", func(t *testing.T) {
		got := FilterVisible(comments, anonymous)
		if len(got) != 2 || got[0].ID != 1 || got[1].ID != 5 {
			t.Errorf("匿名可见评论错误: %v", ids(got))
		}
	})

	t.Run("作者额外看到自己的待审核", func(t *testing.T) {
		got := FilterVisible(comments, regular)
		if len(got) != 3 || got[1].ID != 2 {
			t.Errorf("作者可见评论错误: %v", ids(got))
		}
	})

	t.Run("版主看到全部", func(t *testing.T) {
		got := FilterVisible(comments, moderator)
		if len(got) != len(comments) {
			t.Errorf("版主应看到全部评论, got %d", len(got))
		}
	})

	t.Run("顺序保持不变", func(t *testing.T) {
		got := FilterVisible(comments, moderator)
		for i := 1; i < len(got); i++ {
			if got[i].ID < got[i-1].ID {
				t.Errorf("过滤后顺序被打乱: %v", ids(got))
			}
		}
	})
}

func TestStripModerationContext(t *testing.T) {
	build := func() []*models.CommentModel {
		c := newComment(1, ctypes.StatusApproved, nil)
		c.IPAddress = "1.2.3.4"
		c.UserAgent = "Mozilla/5.0"
		c.IPRegion = "浙江省杭州市"
		c.Excerpt = "摘要"
		c.AuthorEmail = "guest@example.com"
		return []*models.CommentModel{c}
	}

	t.Run("普通访客响应抹掉审核字段", func(t *testing.T) {
		comments := build()
		StripModerationContext(comments, anonymous)
		c := comments[0]
		if c.IPAddress != "" || c.UserAgent != "" || c.IPRegion != "" || c.Excerpt != "" || c.AuthorEmail != "" {
			t.Errorf("审核字段未清空: %+v", c)
		}
	})

	t.Run("版主响应保留审核字段", func(t *testing.T) {
		comments := build()
		StripModerationContext(comments, moderator)
		c := comments[0]
		if c.IPAddress == "" || c.IPRegion == "" {
			t.Errorf("版主响应不应清空审核字段")
		}
	})
}

func ids(comments []*models.CommentModel) []int64 {
	out := make([]int64, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.ID)
	}
	return out
}

package moderation_ser

import (
	"testing"

	"blogcms/models/ctypes"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name   string
		role   ctypes.UserRole
		target ctypes.CommentStatus
		want   bool
	}{
		{"版主可以通过", ctypes.RoleModerator, ctypes.StatusApproved, true},
		{"版主可以拒绝", ctypes.RoleModerator, ctypes.StatusRejected, true},
		{"版主可以标记垃圾", ctypes.RoleModerator, ctypes.StatusSpam, true},
		{"版主可以打回待审核", ctypes.RoleModerator, ctypes.StatusPending, true},
		{"管理员可以通过", ctypes.RoleAdmin, ctypes.StatusApproved, true},
		{"普通用户不能改状态", ctypes.RoleUser, ctypes.StatusApproved, false},
		{"非法目标状态拒绝", ctypes.RoleModerator, ctypes.CommentStatus("deleted"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.role, tt.target); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.role, tt.target, got, tt.want)
			}
		})
	}
}

func TestNextStatusOnEdit(t *testing.T) {
	tests := []struct {
		name    string
		role    ctypes.UserRole
		current ctypes.CommentStatus
		want    ctypes.CommentStatus
	}{
		{"普通用户编辑已通过评论回到待审核", ctypes.RoleUser, ctypes.StatusApproved, ctypes.StatusPending},
		{"普通用户编辑被拒评论状态不变", ctypes.RoleUser, ctypes.StatusRejected, ctypes.StatusRejected},
		{"普通用户编辑待审核评论状态不变", ctypes.RoleUser, ctypes.StatusPending, ctypes.StatusPending},
		{"版主编辑不改变状态", ctypes.RoleModerator, ctypes.StatusApproved, ctypes.StatusApproved},
		{"管理员编辑不改变状态", ctypes.RoleAdmin, ctypes.StatusSpam, ctypes.StatusSpam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStatusOnEdit(tt.role, tt.current); got != tt.want {
				t.Errorf("NextStatusOnEdit(%s, %s) = %s, want %s", tt.role, tt.current, got, tt.want)
			}
		})
	}
}

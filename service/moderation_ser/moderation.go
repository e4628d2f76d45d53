package moderation_ser

import (
	"blogcms/models/ctypes"
)

// CanTransition 判断角色能否把评论状态改为target。
// 版主和管理员可以在四种状态间任意流转，包括改回pending，
// 普通用户和游客不能直接操作状态
func CanTransition(role ctypes.UserRole, target ctypes.CommentStatus) bool {
	if !target.Valid() {
		return false
	}
	return role.IsModerator()
}

// NextStatusOnEdit 作者编辑内容后的状态归宿。
// 非版主作者改动已通过的评论要重新过审，其余状态不因编辑而改变，
// 版主自己编辑也不回退
func NextStatusOnEdit(role ctypes.UserRole, current ctypes.CommentStatus) ctypes.CommentStatus {
	if !role.IsModerator() && current == ctypes.StatusApproved {
		return ctypes.StatusPending
	}
	return current
}

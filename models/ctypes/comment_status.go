package ctypes

// CommentStatus 评论审核状态
type CommentStatus string

const (
	StatusPending  CommentStatus = "pending"  // 待审核
	StatusApproved CommentStatus = "approved" // 已通过
	StatusRejected CommentStatus = "rejected" // 已拒绝
	StatusSpam     CommentStatus = "spam"     // 垃圾评论
)

// Valid 是否为合法状态
func (s CommentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusSpam:
		return true
	}
	return false
}

package ctypes

// UserRole 用户角色
type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// IsModerator 是否具备审核权限（版主或管理员）
func (r UserRole) IsModerator() bool {
	return r == RoleModerator || r == RoleAdmin
}

// Valid 是否为合法角色
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

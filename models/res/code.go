package res

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 客户端错误码 (1000-1999)
	// 通用客户端错误 (1000-1099)
	BadRequest      ResponseCode = 1000 // 错误的请求
	Unauthorized    ResponseCode = 1001 // 未认证
	Forbidden       ResponseCode = 1003 // 禁止访问
	NotFound        ResponseCode = 1004 // 资源未找到
	TooManyRequests ResponseCode = 1007 // 请求过于频繁

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数
	MissingParameter ResponseCode = 1101 // 缺少参数
	InvalidJSON      ResponseCode = 1103 // JSON解析错误
	CaptchaError     ResponseCode = 1104 // 验证码错误

	// 认证授权错误 (1200-1299)
	TokenExpired     ResponseCode = 1200 // 令牌过期
	TokenInvalid     ResponseCode = 1201 // 令牌无效
	TokenMissing     ResponseCode = 1202 // 缺少令牌
	PermissionDenied ResponseCode = 1204 // 权限不足

	// 服务端错误码 (2000-2999)
	ServerError ResponseCode = 2000 // 服务器内部错误
	DBError     ResponseCode = 2100 // 数据库错误
	CacheError  ResponseCode = 2200 // 缓存错误

	// 业务错误码 (3000-3999)
	// 评论相关错误 (3000-3099)
	CommentNotFound  ResponseCode = 3000 // 评论不存在
	ParentNotFound   ResponseCode = 3001 // 父评论不存在
	ParentMismatch   ResponseCode = 3002 // 父评论不属于同一篇文章
	StatusInvalid    ResponseCode = 3003 // 非法的评论状态
	ReactionConflict ResponseCode = 3004 // 反应数据冲突

	// 文章相关错误 (3100-3199)
	PostNotFound    ResponseCode = 3100 // 文章不存在
	PostUnpublished ResponseCode = 3101 // 文章未发布
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:      "请求参数错误",
	Unauthorized:    "未认证访问",
	Forbidden:       "禁止访问",
	NotFound:        "资源不存在",
	TooManyRequests: "请求过于频繁",

	InvalidParameter: "无效的参数",
	MissingParameter: "缺少必要参数",
	InvalidJSON:      "JSON解析错误",
	CaptchaError:     "验证码错误",

	TokenExpired:     "令牌已过期",
	TokenInvalid:     "令牌无效",
	TokenMissing:     "缺少令牌",
	PermissionDenied: "权限不足",

	ServerError: "服务器内部错误",
	DBError:     "数据库操作失败",
	CacheError:  "缓存操作失败",

	CommentNotFound:  "评论不存在",
	ParentNotFound:   "回复的评论不存在",
	ParentMismatch:   "不能回复其他文章的评论",
	StatusInvalid:    "非法的评论状态",
	ReactionConflict: "反应数据冲突",

	PostNotFound:    "文章不存在",
	PostUnpublished: "文章未发布",
}

// GetMsg 获取错误码对应的消息
func GetMsg(code ResponseCode) string {
	if msg, ok := CodeMsg[code]; ok {
		return msg
	}
	return "未知错误"
}

package utils

import (
	"regexp"
)

// 评论内容净化采用黑名单方式：只移除已知的危险标签和内联事件属性，
// 其余内容原样保留。不做白名单解析，渲染安全由前端负责。
var sanitizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script\b.*?</script\s*>`),
	regexp.MustCompile(`(?is)<iframe\b.*?</iframe\s*>`),
	regexp.MustCompile(`(?is)<object\b.*?</object\s*>`),
	regexp.MustCompile(`(?is)<embed\b.*?</embed\s*>`),
	regexp.MustCompile(`(?is)<style\b.*?</style\s*>`),
	regexp.MustCompile(`(?i)<link\b[^>]*>`),
	regexp.MustCompile(`(?i)<meta\b[^>]*>`),
	regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`),
}

// SanitizeContent 清理评论内容中的危险标签，在每次写入内容时调用
func SanitizeContent(raw string) string {
	cleaned := raw
	for _, re := range sanitizePatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	return cleaned
}

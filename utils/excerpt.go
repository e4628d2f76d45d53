package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// ContentExcerpt 提取评论内容的纯文本摘要，审核列表中展示。
// 解析失败时退回原始内容截断。
func ContentExcerpt(content string, maxRunes int) string {
	text := content
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err == nil {
		text = doc.Text()
	}

	text = strings.Join(strings.Fields(text), " ")
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	return string(runes[:maxRunes]) + "..."
}

package utils

import (
	"sync"

	"blogcms/global"

	"github.com/importcjj/sensitive"
	"go.uber.org/zap"
)

var (
	wordFilter     *sensitive.Filter
	wordFilterOnce sync.Once
)

// loadWordFilter 从配置的词库文件加载敏感词过滤器，文件缺失时不启用
func loadWordFilter() {
	path := global.Config.Moderation.WordsFile
	if path == "" {
		return
	}

	filter := sensitive.New()
	if err := filter.LoadWordDict(path); err != nil {
		global.Log.Warn("加载敏感词文件失败，跳过敏感词过滤", zap.String("path", path), zap.String("error", err.Error()))
		return
	}
	wordFilter = filter
	global.Log.Info("敏感词过滤器加载成功", zap.String("path", path))
}

// MaskSensitiveWords 将命中的敏感词替换为*，在内容净化之后调用。
// 未配置词库时内容原样返回。
func MaskSensitiveWords(content string) string {
	wordFilterOnce.Do(loadWordFilter)
	if wordFilter == nil {
		return content
	}
	return wordFilter.Replace(content, '*')
}

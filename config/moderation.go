package config

// Moderation 评论审核相关配置
type Moderation struct {
	WordsFile string `mapstructure:"words_file"` // 敏感词文件路径，为空则不启用
	AddrDB    string `mapstructure:"addr_db"`    // ip2region 数据库路径
}

package config

type Log struct {
	Filename   string `mapstructure:"filename"`    // 日志文件路径
	MaxSize    int    `mapstructure:"max_size"`    // 每个日志文件的最大大小（MB）
	MaxAge     int    `mapstructure:"max_age"`     // 保留的日志文件天数
	MaxBackups int    `mapstructure:"max_backups"` // 保留的旧日志文件数量
	Level      string `mapstructure:"level"`       // 日志级别：debug/info/warn/error
	Compress   bool   `mapstructure:"compress"`    // 是否压缩旧日志文件
	KeepDays   int    `mapstructure:"keep_days"`   // 数据库日志保留天数，定时任务清理
}

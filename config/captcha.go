package config

// Captcha 游客评论的验证码配置，关闭时游客评论不需要验证码
type Captcha struct {
	Enable bool `mapstructure:"enable"`
	Width  int  `mapstructure:"width"`
	Height int  `mapstructure:"height"`
	Length int  `mapstructure:"length"`
}

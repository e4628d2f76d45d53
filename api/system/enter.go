package system

import "github.com/mojocn/base64Captcha"

type System struct{}

// CaptchaStore 验证码存内存，单实例部署够用
var CaptchaStore = base64Captcha.DefaultMemStore

package system

import (
	"blogcms/global"
	"blogcms/models/res"

	"github.com/gin-gonic/gin"
	"github.com/mojocn/base64Captcha"
)

type CaptchaResponse struct {
	CaptchaID string `json:"captcha_id"`
	PicPath   string `json:"pic_path"`
}

// CaptchaCreateView 生成图形验证码，游客评论时要求携带
func (System) CaptchaCreateView(c *gin.Context) {
	cfg := global.Config.Captcha
	driver := base64Captcha.NewDriverDigit(cfg.Height, cfg.Width, cfg.Length, 0.7, 80)
	captcha := base64Captcha.NewCaptcha(driver, CaptchaStore)

	id, b64s, _, err := captcha.Generate()
	if err != nil {
		global.Log.Errorf("生成验证码失败: %s", err)
		res.Error(c, res.ServerError, "")
		return
	}

	res.Success(c, CaptchaResponse{
		CaptchaID: id,
		PicPath:   b64s,
	})
}

// VerifyCaptcha 校验验证码，一次性消费
func VerifyCaptcha(id, code string) bool {
	if id == "" || code == "" {
		return false
	}
	return CaptchaStore.Verify(id, code, true)
}

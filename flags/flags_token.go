package flags

import (
	"fmt"

	"blogcms/models"
	"blogcms/utils"
)

// IssueToken 为已有账号签发一枚调试令牌并打印到标准输出
func IssueToken(account string) error {
	var user models.UserModel
	if err := user.FindByAccount(account); err != nil {
		return err
	}

	token, err := utils.GenerateAccessToken(utils.PayLoad{
		Account: user.Account,
		Role:    user.Role,
		UserID:  user.ID,
	})
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

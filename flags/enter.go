package flags

import (
	"os"

	"blogcms/global"

	"github.com/urfave/cli/v2"
)

// Run 命令行入口，带子命令启动时只执行运维操作，不拉起服务
func Run() {
	app := &cli.App{
		Name:  "blogcms",
		Usage: "博客评论服务运维命令",
		Commands: []*cli.Command{
			{
				Name:  "db",
				Usage: "迁移数据库表结构",
				Action: func(ctx *cli.Context) error {
					return MigrateDB()
				},
			},
			{
				Name:  "user",
				Usage: "创建用户",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "account", Required: true, Usage: "登录账号"},
					&cli.StringFlag{Name: "password", Required: true, Usage: "登录密码"},
					&cli.StringFlag{Name: "role", Value: "moderator", Usage: "角色 user/moderator/admin"},
				},
				Action: func(ctx *cli.Context) error {
					return CreateUser(ctx.String("account"), ctx.String("password"), ctx.String("role"))
				},
			},
			{
				Name:  "token",
				Usage: "签发调试令牌",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "account", Required: true, Usage: "目标账号"},
				},
				Action: func(ctx *cli.Context) error {
					return IssueToken(ctx.String("account"))
				},
			},
			{
				Name:  "post",
				Usage: "写入测试文章",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true, Usage: "文章ID"},
					&cli.StringFlag{Name: "title", Value: "测试文章", Usage: "文章标题"},
				},
				Action: func(ctx *cli.Context) error {
					return SeedPost(ctx.String("id"), ctx.String("title"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		global.Log.Fatalf("命令执行失败: %s", err)
	}
}

package flags

import (
	"blogcms/global"
	"blogcms/models"
)

// MigrateDB 迁移全部表结构
func MigrateDB() error {
	err := global.DB.AutoMigrate(
		&models.PostModel{},
		&models.CommentModel{},
		&models.ReactionModel{},
		&models.UserModel{},
		&models.LogModel{},
	)
	if err != nil {
		return err
	}
	global.Log.Infoln("数据库迁移成功")
	return nil
}

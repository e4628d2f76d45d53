package flags

import (
	"blogcms/global"
	"blogcms/models"
	"blogcms/service/redis_ser"
)

// SeedPost 写入一篇已发布的测试文章，方便联调评论接口
func SeedPost(id, title string) error {
	post := models.PostModel{
		ID:        id,
		Title:     title,
		Published: true,
	}
	if err := global.DB.Save(&post).Error; err != nil {
		return err
	}
	redis_ser.AddPostBloom(id)
	global.Log.Infof("写入测试文章成功, id %s", id)
	return nil
}

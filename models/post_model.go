package models

import (
	"errors"

	"blogcms/global"
	"blogcms/models/ctypes"
	"blogcms/service/redis_ser"

	"gorm.io/gorm"
)

// PostModel 文章表由CMS负责维护，这里只读取评论校验需要的字段
type PostModel struct {
	ID        string        `json:"id" gorm:"primaryKey;size:64"`
	Title     string        `json:"title" gorm:"size:200"`
	Published bool          `json:"published"`
	CreatedAt ctypes.MyTime `json:"created_at" gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP"`
}

func (PostModel) TableName() string {
	return "posts"
}

var (
	ErrPostNotFound    = errors.New("文章不存在")
	ErrPostUnpublished = errors.New("文章未发布")
)

// PostGetPublished 校验评论目标文章存在且已发布。
// 文章由外部CMS写入，布隆过滤器在两次重建之间会落后，
// 所以过滤器判定不存在时仍要查库确认，查到后补录进过滤器
func PostGetPublished(id string) (*PostModel, error) {
	hinted, bloomErr := redis_ser.CheckPostBloom(id)

	var post PostModel
	if err := global.DB.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if !post.Published {
		return nil, ErrPostUnpublished
	}

	if bloomErr == nil && !hinted {
		redis_ser.AddPostBloom(id)
	}
	return &post, nil
}

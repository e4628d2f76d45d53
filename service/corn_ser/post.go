package corn_ser

import (
	"blogcms/global"
	"blogcms/models"
	"blogcms/models/ctypes"
	"blogcms/service/redis_ser"
)

// SyncPostCache 重建已发布文章布隆过滤器，并按数据库对齐各文章的可见评论数
func SyncPostCache() {
	var ids []string
	if err := global.DB.Model(&models.PostModel{}).
		Where("published = ?", true).
		Pluck("id", &ids).Error; err != nil {
		global.Log.Errorf("获取已发布文章列表失败: %s", err)
		return
	}

	if err := redis_ser.LoadPostBloom(ids); err != nil {
		global.Log.Errorf("重建文章布隆过滤器失败: %s", err)
	}

	type countRow struct {
		PostID string `gorm:"column:post_id"`
		Count  int64  `gorm:"column:count"`
	}
	var rows []countRow
	if err := global.DB.Model(&models.CommentModel{}).
		Select("post_id, COUNT(*) AS count").
		Where("status = ?", ctypes.StatusApproved).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		global.Log.Errorf("统计文章评论数失败: %s", err)
		return
	}

	for _, row := range rows {
		if err := redis_ser.SetPostCommentCount(row.PostID, row.Count); err != nil {
			global.Log.Warnf("同步文章评论计数失败: %s", err)
		}
	}

	global.Log.Infof("文章缓存同步完成, 文章数 %d", len(ids))
}

// PurgeExpiredLogs 按配置保留天数清理数据库日志
func PurgeExpiredLogs() {
	removed, err := models.LogDeleteBefore(global.Config.Log.KeepDays)
	if err != nil {
		global.Log.Errorf("清理过期日志失败: %s", err)
		return
	}
	if removed > 0 {
		global.Log.Infof("清理过期日志 %d 条", removed)
	}
}

package corn_ser

import (
	"blogcms/global"

	"github.com/robfig/cron/v3"
)

// CornInit 启动定时任务：每小时对齐文章缓存，每天凌晨清理过期日志
func CornInit() {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", SyncPostCache); err != nil {
		global.Log.Errorf("注册文章缓存同步任务失败: %s", err)
	}
	if _, err := c.AddFunc("0 3 * * *", PurgeExpiredLogs); err != nil {
		global.Log.Errorf("注册日志清理任务失败: %s", err)
	}

	c.Start()
}

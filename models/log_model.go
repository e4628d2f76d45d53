package models

import (
	"time"

	"blogcms/global"
)

type LogModel struct {
	MODEL    `json:","`
	Level    string `json:"level" gorm:"type:varchar(10);index"`
	Caller   string `json:"caller" gorm:"type:varchar(100)"`
	Message  string `json:"message" gorm:"type:text"`
	ErrorMsg string `json:"error_msg" gorm:"type:text"`
}

// LogDeleteBefore 删除指定天数之前的日志，定时任务调用
func LogDeleteBefore(days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	deadline := time.Now().AddDate(0, 0, -days)
	result := global.DB.Where("created_at < ?", deadline).Delete(&LogModel{})
	return result.RowsAffected, result.Error
}

package utils

import (
	"fmt"
	"time"

	"blogcms/global"

	sf "github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var idNode *sf.Node

// Init 初始化ID生成节点。startTime是纪元日期(2006-01-02)，
// 上线后不能再改，否则新旧ID的时间序会交叉
func Init(startTime string, machineID int64) {
	epoch, err := time.Parse("2006-01-02", startTime)
	if err != nil {
		global.Log.Fatal("解析ID纪元日期失败", zap.String("start_time", startTime), zap.String("error", err.Error()))
	}
	sf.Epoch = epoch.UnixMilli()

	idNode, err = sf.NewNode(machineID)
	if err != nil {
		global.Log.Fatal("创建ID生成节点失败", zap.Int64("machine_id", machineID), zap.String("error", err.Error()))
	}
}

// GenerateID 生成全局唯一的int64 ID
func GenerateID() (int64, error) {
	if idNode == nil {
		return 0, fmt.Errorf("ID生成节点未初始化")
	}
	return idNode.Generate().Int64(), nil
}

package core

import (
	"blogcms/global"

	"github.com/lionsoul2014/ip2region/binding/golang/xdb"
	"go.uber.org/zap"
)

// InitAddrDB 初始化 IP 地理位置数据库，用于审核列表展示评论者归属地
func InitAddrDB() *xdb.Searcher {
	dbPath := global.Config.Moderation.AddrDB
	if dbPath == "" {
		dbPath = "ip2region.xdb"
	}

	// 加载整个 xdb 到内存
	cBuff, err := xdb.LoadContentFromFile(dbPath)
	if err != nil {
		global.Log.Error("无法读取ip2region.xdb文件", zap.String("error", err.Error()))
		return nil
	}

	searcher, err := xdb.NewWithBuffer(cBuff)
	if err != nil {
		global.Log.Error("创建ip2region查询对象失败", zap.String("error", err.Error()))
		return nil
	}

	global.Log.Info("地址库初始化成功", zap.String("method", "InitAddrDB"))
	return searcher
}

package main

import (
	"fmt"
	"os"

	"blogcms/core"
	"blogcms/flags"
	"blogcms/global"
	"blogcms/router"
	"blogcms/service/corn_ser"
	"blogcms/service/redis_ser"
	"blogcms/utils"
)

func main() {
	core.InitConf()
	global.Log = core.NewLogManager(&global.Config.Log)
	global.DB = core.InitGorm()
	global.Redis = core.InitRedis()
	global.AddrDB = core.InitAddrDB()
	utils.Init(global.Config.System.StartTime, global.Config.System.MachineID)

	// 带子命令启动只跑运维操作
	if len(os.Args) > 1 {
		flags.Run()
		return
	}

	if err := redis_ser.RestorePostBloom(); err != nil {
		global.Log.Warnf("恢复文章布隆过滤器失败: %s", err)
	}
	corn_ser.CornInit()
	corn_ser.SyncPostCache()

	engine := router.InitRouter()
	addr := fmt.Sprintf("%s:%d", global.Config.System.Host, global.Config.System.Port)
	global.Log.Infof("服务启动, 监听 %s", addr)
	if err := engine.Run(addr); err != nil {
		global.Log.Fatalf("服务启动失败: %s", err)
	}
}

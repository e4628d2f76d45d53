package utils

import (
	"fmt"
	"net"
	"strings"

	"blogcms/global"
)

// GetAddrByIp 根据IP获取归属地，审核列表中展示评论者地区
func GetAddrByIp(ip string) string {
	parseIP := net.ParseIP(ip)
	if parseIP == nil {
		return fmt.Sprintf("%s-%s", "未知地区", ip)
	}
	if IsIntranetIP(parseIP) {
		return fmt.Sprintf("%s-%s", "内网地址", ip)
	}
	if global.AddrDB == nil {
		return fmt.Sprintf("%s-%s", "未知地区", ip)
	}
	record, err := global.AddrDB.SearchByStr(ip)
	if err != nil {
		return fmt.Sprintf("%s-%s", "错误的地址", ip)
	}
	fields := strings.Split(record, "|")
	regionName := "未知地区"
	if len(fields) >= 4 && fields[3] != "0" {
		regionName = fields[3] // 城市名
	} else if len(fields) >= 3 && fields[2] != "0" {
		regionName = fields[2] // 省份名
	} else if len(fields) >= 1 && fields[0] != "0" {
		regionName = fields[0] // 国家名
	}
	return fmt.Sprintf("%s-%s", regionName, ip)
}

// IsIntranetIP 判断IP是否为内网IP
func IsIntranetIP(ip net.IP) bool {
	if ip.IsLoopback() {
		return true
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return true
	}
	// 192.168 / 172.16-172.31 / 10 / 169.254
	return (ip4[0] == 192 && ip4[1] == 168) ||
		(ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31) ||
		(ip4[0] == 10) ||
		(ip4[0] == 169 && ip4[1] == 254)
}

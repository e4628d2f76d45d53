package utils

import (
	"strings"
	"testing"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "普通文本原样保留",
			in:   "这篇文章写得真好",
			want: "这篇文章写得真好",
		},
		{
			name: "安全的HTML标签保留",
			in:   "<p>同意<strong>楼上</strong>的看法</p>",
			want: "<p>同意<strong>楼上</strong>的看法</p>",
		},
		{
			name: "script整体移除",
			in:   "前<script>alert(1)</script>后",
			want: "前后",
		},
		{
			name: "script大小写混合",
			in:   "a<ScRiPt>alert(1)</sCrIpT>b",
			want: "ab",
		},
		{
			name: "script跨行移除",
			in:   "a<script>\nvar x = 1;\nalert(x);\n</script>b",
			want: "ab",
		},
		{
			name: "iframe移除",
			in:   "看<iframe src=\"http://evil.com\"></iframe>这里",
			want: "看这里",
		},
		{
			name: "style连同内容移除",
			in:   "x<style>body{display:none}</style>y",
			want: "xy",
		},
		{
			name: "link自闭合标签移除",
			in:   "a<link rel=\"stylesheet\" href=\"x.css\">b",
			want: "ab",
		},
		{
			name: "meta标签移除",
			in:   "a<meta http-equiv=\"refresh\" content=\"0\">b",
			want: "ab",
		},
		{
			name: "内联事件属性移除",
			in:   `<img src="a.png" onerror="alert(1)">`,
			want: `<img src="a.png" >`,
		},
		{
			name: "单引号事件属性移除",
			in:   `<div onclick='doEvil()'>点我</div>`,
			want: `<div >点我</div>`,
		},
		{
			name: "未闭合的script保留",
			in:   "a<script>alert(1)",
			want: "a<script>alert(1)",
		},
		{
			name: "多个危险标签全部移除",
			in:   "<script>a()</script>中<embed src=\"x\"></embed>间<object data=\"y\"></object>",
			want: "中间",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeContent(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeContent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeContentIdempotent(t *testing.T) {
	in := "前<script>alert(1)</script><img src=\"a\" onerror=\"x()\">后"
	once := SanitizeContent(in)
	twice := SanitizeContent(once)
	if once != twice {
		t.Errorf("二次净化结果不一致: %q vs %q", once, twice)
	}
	if strings.Contains(once, "script") || strings.Contains(once, "onerror") {
		t.Errorf("净化后仍残留危险内容: %q", once)
	}
}

package utils

import "testing"

func TestContentExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxRunes int
		want     string
	}{
		{
			name:     "纯文本不截断",
			in:       "短评论",
			maxRunes: 10,
			want:     "短评论",
		},
		{
			name:     "HTML标签剥离",
			in:       "<p>同意<strong>楼上</strong></p>",
			maxRunes: 20,
			want:     "同意楼上",
		},
		{
			name:     "超长内容按字符数截断",
			in:       "一二三四五六七八九十",
			maxRunes: 5,
			want:     "一二三四五...",
		},
		{
			name:     "多余空白折叠",
			in:       "hello   \n\n  world",
			maxRunes: 20,
			want:     "hello world",
		},
		{
			name:     "maxRunes为零不截断",
			in:       "随便写点什么",
			maxRunes: 0,
			want:     "随便写点什么",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentExcerpt(tt.in, tt.maxRunes)
			if got != tt.want {
				t.Errorf("ContentExcerpt(%q, %d) = %q, want %q", tt.in, tt.maxRunes, got, tt.want)
			}
		})
	}
}

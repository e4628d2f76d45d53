package redis_ser

const (
	tokenBlacklistPrefix = "token_blacklist:"
	postStatsKey         = "post_comment_stats"
	postBloomKey         = "post_bloom"
)

package redis_ser

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"sync"

	"blogcms/global"

	"github.com/bits-and-blooms/bloom/v3"
)

var (
	postBloom   *bloom.BloomFilter
	postBloomMu sync.RWMutex
)

var ErrBloomNotLoaded = errors.New("文章布隆过滤器未加载")

// LoadPostBloom 用已发布文章ID重建布隆过滤器，
// 启动和定时任务中调用。redis持久化尽力而为，redis不可用不影响内存过滤器
func LoadPostBloom(ids []string) error {
	filter := bloom.NewWithEstimates(100000, 0.01)
	for _, id := range ids {
		filter.AddString(id)
	}

	postBloomMu.Lock()
	postBloom = filter
	postBloomMu.Unlock()

	return persistPostBloom(filter)
}

func persistPostBloom(filter *bloom.BloomFilter) error {
	if global.Redis == nil {
		return nil
	}
	var buf bytes.Buffer
	if _, err := filter.WriteTo(&buf); err != nil {
		return err
	}
	return global.Redis.Set(context.Background(), postBloomKey, buf.Bytes(), 0).Err()
}

// AddPostBloom 把数据库确认存在的文章ID补进过滤器。
// 文章由外部CMS写入，过滤器在两次重建之间会落后，查库确认后必须补录
func AddPostBloom(id string) {
	postBloomMu.Lock()
	if postBloom == nil {
		postBloomMu.Unlock()
		return
	}
	postBloom.AddString(id)
	filter := postBloom
	postBloomMu.Unlock()

	if err := persistPostBloom(filter); err != nil {
		global.Log.Warnf("持久化文章布隆过滤器失败: %s", err)
	}
}

// RestorePostBloom 从redis恢复布隆过滤器，redis里没有时不算错误
func RestorePostBloom() error {
	data, err := global.Redis.Get(context.Background(), postBloomKey).Bytes()
	if err != nil {
		return nil
	}

	filter := bloom.NewWithEstimates(100000, 0.01)
	if _, err := filter.ReadFrom(bytes.NewReader(data)); err != nil {
		return err
	}

	postBloomMu.Lock()
	postBloom = filter
	postBloomMu.Unlock()
	return nil
}

// CheckPostBloom 判断文章ID是否可能存在。返回false可以确定不存在，
// 过滤器未加载时返回ErrBloomNotLoaded，调用方自行回落到数据库
func CheckPostBloom(id string) (bool, error) {
	postBloomMu.RLock()
	defer postBloomMu.RUnlock()
	if postBloom == nil {
		return false, ErrBloomNotLoaded
	}
	return postBloom.TestString(id), nil
}

// IncrPostCommentCount 文章可见评论数增减，delta可以为负
func IncrPostCommentCount(postID string, delta int64) {
	if global.Redis == nil {
		return
	}
	if err := global.Redis.HIncrBy(context.Background(), postStatsKey, postID, delta).Err(); err != nil {
		global.Log.Warnf("更新文章评论计数失败: %s", err)
	}
}

// SetPostCommentCount 覆写文章评论数，定时任务对齐数据库用
func SetPostCommentCount(postID string, count int64) error {
	if global.Redis == nil {
		return nil
	}
	return global.Redis.HSet(context.Background(), postStatsKey, postID, count).Err()
}

// GetPostCommentCount 读取文章评论数缓存，未命中时ok为false，调用方回源
func GetPostCommentCount(postID string) (count int64, ok bool) {
	if global.Redis == nil {
		return 0, false
	}
	val, err := global.Redis.HGet(context.Background(), postStatsKey, postID).Result()
	if err != nil {
		return 0, false
	}
	count, err = strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

package models

import (
	"errors"
	"testing"

	"blogcms/config"
	"blogcms/global"
	"blogcms/models/ctypes"
	"blogcms/service/redis_ser"
	"blogcms/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 用内存sqlite搭一个仓储测试环境。
// 表结构手写建表语句，MODEL里的MySQL默认值子句sqlite不认
func newTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开sqlite失败: %s", err)
	}

	ddl := []string{
		`CREATE TABLE posts (
			id text PRIMARY KEY,
			title text,
			published numeric,
			created_at datetime
		)`,
		`CREATE TABLE comment_models (
			id integer PRIMARY KEY,
			created_at datetime,
			updated_at datetime,
			post_id text,
			parent_id integer,
			content text,
			status text,
			user_id integer,
			author_name text,
			author_email text,
			author_website text,
			ip_address text,
			user_agent text
		)`,
		`CREATE TABLE reaction_models (
			id integer PRIMARY KEY,
			created_at datetime,
			updated_at datetime,
			comment_id integer,
			user_id integer,
			reaction_type text
		)`,
		`CREATE UNIQUE INDEX idx_comment_user ON reaction_models (comment_id, user_id)`,
		`CREATE TABLE user_models (
			id integer PRIMARY KEY,
			created_at datetime,
			updated_at datetime,
			nick_name text,
			account text,
			password text,
			avatar text,
			role text
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("建表失败: %s", err)
		}
	}

	global.DB = db
	global.Config = &config.Config{}
	utils.Init("2024-01-01", 1)
}

func seedPost(t *testing.T, id string, published bool) {
	t.Helper()
	post := PostModel{ID: id, Title: "t-" + id, Published: published}
	if err := global.DB.Create(&post).Error; err != nil {
		t.Fatalf("写入文章失败: %s", err)
	}
}

func seedComment(t *testing.T, id int64, postID string, parentID *int64) *CommentModel {
	t.Helper()
	c := &CommentModel{PostID: postID, ParentID: parentID, Content: "c", Status: ctypes.StatusApproved}
	c.ID = id
	if err := global.DB.Create(c).Error; err != nil {
		t.Fatalf("写入评论失败: %s", err)
	}
	return c
}

func seedReaction(t *testing.T, commentID, userID int64, rt ctypes.ReactionType) {
	t.Helper()
	r := &ReactionModel{CommentID: commentID, UserID: userID, ReactionType: rt}
	if err := global.DB.Create(r).Error; err != nil {
		t.Fatalf("写入反应失败: %s", err)
	}
}

func countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := global.DB.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("统计失败: %s", err)
	}
	return n
}

func TestCommentDeleteCascade(t *testing.T) {
	newTestDB(t)
	seedPost(t, "post-1", true)

	// 树形：1 ─ 2 ─ 3，4是独立顶级评论
	root := seedComment(t, 1, "post-1", nil)
	mid := seedComment(t, 2, "post-1", pid(1))
	seedComment(t, 3, "post-1", pid(2))
	seedComment(t, 4, "post-1", nil)
	seedReaction(t, 2, 10, ctypes.ReactionLike)
	seedReaction(t, 3, 10, ctypes.ReactionLove)
	seedReaction(t, 4, 10, ctypes.ReactionLike)

	removed, err := CommentDelete(mid)
	if err != nil {
		t.Fatalf("删除评论失败: %s", err)
	}
	if removed != 2 {
		t.Errorf("应删除2条评论(2和3), got %d", removed)
	}

	if n := countRows(t, &CommentModel{}, "1 = 1"); n != 2 {
		t.Errorf("剩余评论应为2条, got %d", n)
	}
	if n := countRows(t, &CommentModel{}, "id IN ?", []int64{2, 3}); n != 0 {
		t.Errorf("子树评论未删干净")
	}
	if n := countRows(t, &ReactionModel{}, "comment_id IN ?", []int64{2, 3}); n != 0 {
		t.Errorf("子树评论的反应未删干净")
	}
	if n := countRows(t, &ReactionModel{}, "comment_id = ?", int64(4)); n != 1 {
		t.Errorf("无关评论的反应不应被删除")
	}

	// 再删根，只剩4
	if _, err := CommentDelete(root); err != nil {
		t.Fatalf("删除根评论失败: %s", err)
	}
	if n := countRows(t, &CommentModel{}, "1 = 1"); n != 1 {
		t.Errorf("应只剩评论4, got %d 条", n)
	}
}

func TestReactionToggle(t *testing.T) {
	newTestDB(t)
	seedPost(t, "post-1", true)
	seedComment(t, 1, "post-1", nil)

	// 首次：插入
	applied, err := ReactionToggle(1, 10, ctypes.ReactionLike)
	if err != nil || !applied {
		t.Fatalf("首次反应应生效, applied=%v err=%v", applied, err)
	}
	if n := countRows(t, &ReactionModel{}, "comment_id = ? AND user_id = ?", 1, 10); n != 1 {
		t.Fatalf("应恰好有1条反应记录, got %d", n)
	}

	// 同类型再点：取消
	applied, err = ReactionToggle(1, 10, ctypes.ReactionLike)
	if err != nil || applied {
		t.Fatalf("同类型再点应取消, applied=%v err=%v", applied, err)
	}
	if n := countRows(t, &ReactionModel{}, "comment_id = ? AND user_id = ?", 1, 10); n != 0 {
		t.Fatalf("取消后不应有记录, got %d", n)
	}

	// 重新点赞后切换类型：记录仍只有一条
	if _, err := ReactionToggle(1, 10, ctypes.ReactionLike); err != nil {
		t.Fatalf("重新反应失败: %s", err)
	}
	applied, err = ReactionToggle(1, 10, ctypes.ReactionLove)
	if err != nil || !applied {
		t.Fatalf("切换类型应生效, applied=%v err=%v", applied, err)
	}
	var r ReactionModel
	if err := global.DB.Where("comment_id = ? AND user_id = ?", 1, 10).Take(&r).Error; err != nil {
		t.Fatalf("查询反应失败: %s", err)
	}
	if r.ReactionType != ctypes.ReactionLove {
		t.Errorf("类型应已切换为love, got %s", r.ReactionType)
	}
	if n := countRows(t, &ReactionModel{}, "comment_id = ? AND user_id = ?", 1, 10); n != 1 {
		t.Errorf("每人每条评论至多一条记录, got %d", n)
	}

	counts, err := ReactionCounts(1)
	if err != nil {
		t.Fatalf("统计反应失败: %s", err)
	}
	if counts[ctypes.ReactionLove] != 1 || counts[ctypes.ReactionLike] != 0 {
		t.Errorf("计数错误: %v", counts)
	}
	if len(counts) != len(ctypes.AllReactionTypes) {
		t.Errorf("计数应零值补齐全部类型, got %d 项", len(counts))
	}
}

func TestPostGetPublishedBloomLag(t *testing.T) {
	newTestDB(t)
	seedPost(t, "post-a", true)
	seedPost(t, "post-b", true)
	seedPost(t, "post-c", false)

	// 过滤器只装了post-a，模拟CMS在重建之后又发布了post-b
	if err := redis_ser.LoadPostBloom([]string{"post-a"}); err != nil {
		t.Fatalf("加载布隆过滤器失败: %s", err)
	}

	post, err := PostGetPublished("post-b")
	if err != nil {
		t.Fatalf("过滤器落后时已发布文章仍应查库确认, got %v", err)
	}
	if post.ID != "post-b" {
		t.Errorf("返回了错误的文章: %s", post.ID)
	}

	// 查库确认后应已补录
	hinted, err := redis_ser.CheckPostBloom("post-b")
	if err != nil || !hinted {
		t.Errorf("确认存在的文章应补进过滤器, hinted=%v err=%v", hinted, err)
	}

	if _, err := PostGetPublished("post-missing"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("不存在的文章应返回ErrPostNotFound, got %v", err)
	}
	if _, err := PostGetPublished("post-c"); !errors.Is(err, ErrPostUnpublished) {
		t.Errorf("未发布的文章应返回ErrPostUnpublished, got %v", err)
	}
}

func TestCommentApplyUpdate(t *testing.T) {
	newTestDB(t)
	seedPost(t, "post-1", true)
	c := seedComment(t, 1, "post-1", nil)

	content := `新内容<script>alert(1)</script>`
	status := ctypes.StatusPending
	if err := CommentApplyUpdate(c, &content, &status); err != nil {
		t.Fatalf("更新评论失败: %s", err)
	}

	var got CommentModel
	if err := global.DB.First(&got, c.ID).Error; err != nil {
		t.Fatalf("查询评论失败: %s", err)
	}
	if got.Content != "新内容" {
		t.Errorf("内容应已净化, got %q", got.Content)
	}
	if got.Status != ctypes.StatusPending {
		t.Errorf("状态应同批更新, got %s", got.Status)
	}

	// 两个都不给时不应发语句也不应报错
	if err := CommentApplyUpdate(c, nil, nil); err != nil {
		t.Errorf("空更新不应报错: %s", err)
	}
}

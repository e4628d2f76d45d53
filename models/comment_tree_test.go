package models

import "testing"

func tc(id int64, parentID *int64) *CommentModel {
	c := &CommentModel{ParentID: parentID}
	c.ID = id
	return c
}

func pid(id int64) *int64 {
	return &id
}

func TestBuildCommentForest(t *testing.T) {
	t.Run("空列表", func(t *testing.T) {
		forest := BuildCommentForest(nil)
		if len(forest) != 0 {
			t.Fatalf("空输入应返回空森林, got %d", len(forest))
		}
	})

	t.Run("两层嵌套", func(t *testing.T) {
		forest := BuildCommentForest([]*CommentModel{
			tc(1, nil),
			tc(2, pid(1)),
			tc(3, pid(1)),
			tc(4, nil),
			tc(5, pid(4)),
		})

		if len(forest) != 2 {
			t.Fatalf("顶级评论应为2条, got %d", len(forest))
		}
		if forest[0].ID != 1 || forest[1].ID != 4 {
			t.Errorf("顶级评论顺序错误: %d, %d", forest[0].ID, forest[1].ID)
		}
		if len(forest[0].SubComments) != 2 {
			t.Fatalf("评论1应有2条回复, got %d", len(forest[0].SubComments))
		}
		if forest[0].SubComments[0].ID != 2 || forest[0].SubComments[1].ID != 3 {
			t.Errorf("回复顺序应保持输入顺序")
		}
	})

	t.Run("深层嵌套", func(t *testing.T) {
		forest := BuildCommentForest([]*CommentModel{
			tc(1, nil),
			tc(2, pid(1)),
			tc(3, pid(2)),
			tc(4, pid(3)),
		})

		if len(forest) != 1 {
			t.Fatalf("应只有1条顶级评论, got %d", len(forest))
		}
		node := forest[0]
		for want := int64(2); want <= 4; want++ {
			if len(node.SubComments) != 1 {
				t.Fatalf("评论%d应恰好有1条回复", node.ID)
			}
			node = node.SubComments[0]
			if node.ID != want {
				t.Fatalf("嵌套链错误, want %d, got %d", want, node.ID)
			}
		}
	})

	t.Run("孤儿提升为顶级", func(t *testing.T) {
		// 父评论99不在列表里，比如被过滤掉了
		forest := BuildCommentForest([]*CommentModel{
			tc(1, nil),
			tc(2, pid(99)),
		})

		if len(forest) != 2 {
			t.Fatalf("孤儿评论应提升为顶级, got %d 条顶级", len(forest))
		}
		if forest[1].ID != 2 {
			t.Errorf("孤儿评论应保持原有位置")
		}
	})

	t.Run("子评论在父评论之前", func(t *testing.T) {
		// 输入按时间升序，正常情况下父评论总在前面，
		// 但组装不依赖这个前提
		forest := BuildCommentForest([]*CommentModel{
			tc(2, pid(1)),
			tc(1, nil),
		})

		if len(forest) != 1 {
			t.Fatalf("应只有1条顶级评论, got %d", len(forest))
		}
		if len(forest[0].SubComments) != 1 || forest[0].SubComments[0].ID != 2 {
			t.Errorf("乱序输入也应正确挂接")
		}
	})

	t.Run("叶子节点回复为空切片", func(t *testing.T) {
		forest := BuildCommentForest([]*CommentModel{tc(1, nil)})
		if forest[0].SubComments == nil {
			t.Errorf("叶子节点的SubComments应为空切片而非nil")
		}
	})
}

package models

import "testing"

func TestCommentAuthorRef(t *testing.T) {
	t.Run("注册用户作者", func(t *testing.T) {
		userID := int64(42)
		c := &CommentModel{UserID: &userID}

		ref := c.AuthorRef()
		if !ref.Registered || ref.UserID != 42 {
			t.Errorf("注册用户的AuthorRef错误: %+v", ref)
		}
		if !c.IsAuthor(42) {
			t.Errorf("IsAuthor应对作者本人返回true")
		}
		if c.IsAuthor(43) {
			t.Errorf("IsAuthor不应对其他用户返回true")
		}
	})

	t.Run("游客作者", func(t *testing.T) {
		c := &CommentModel{
			AuthorName:  "路人甲",
			AuthorEmail: "guest@example.com",
		}

		ref := c.AuthorRef()
		if ref.Registered || ref.Name != "路人甲" {
			t.Errorf("游客的AuthorRef错误: %+v", ref)
		}
		if c.IsAuthor(42) {
			t.Errorf("游客评论没有作者身份")
		}
	})
}

func TestValidateAuthor(t *testing.T) {
	userID := int64(1)
	tests := []struct {
		name    string
		comment CommentModel
		wantErr bool
	}{
		{"注册用户合法", CommentModel{UserID: &userID}, false},
		{"游客信息完整", CommentModel{AuthorName: "甲", AuthorEmail: "a@b.c"}, false},
		{"两种身份混用", CommentModel{UserID: &userID, AuthorName: "甲"}, true},
		{"游客缺邮箱", CommentModel{AuthorName: "甲"}, true},
		{"游客缺昵称", CommentModel{AuthorEmail: "a@b.c"}, true},
		{"两种身份都缺", CommentModel{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.validateAuthor()
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAuthor() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

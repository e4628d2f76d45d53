package models

import (
	"errors"
	"fmt"

	"blogcms/global"
	"blogcms/models/ctypes"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionModel 评论反应，(comment_id, user_id)唯一，
// 每个用户对一条评论最多一种反应
type ReactionModel struct {
	MODEL        `json:","`
	CommentID    int64               `json:"comment_id" gorm:"uniqueIndex:idx_comment_user"`
	UserID       int64               `json:"user_id" gorm:"uniqueIndex:idx_comment_user"`
	ReactionType ctypes.ReactionType `json:"reaction_type" gorm:"type:varchar(10)"`
}

var ErrReactionConflict = errors.New("反应操作冲突，请重试")

// ReactionToggle 反应的置换语义：无记录则新增，同类型则取消，异类型则切换。
// 三步都是带条件的单语句写操作，靠唯一索引和受影响行数判定结果，
// 并发请求最终落在其中一条路径上，不做先查后写。
// 返回applied表示调用后该反应是否存在
func ReactionToggle(commentID, userID int64, rt ctypes.ReactionType) (applied bool, err error) {
	err = global.DB.Transaction(func(tx *gorm.DB) error {
		reaction := ReactionModel{
			CommentID:    commentID,
			UserID:       userID,
			ReactionType: rt,
		}

		// 无记录时插入成功，有记录时被唯一索引挡下
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&reaction)
		if insert.Error != nil {
			return fmt.Errorf("创建评论反应失败: %w", insert.Error)
		}
		if insert.RowsAffected == 1 {
			applied = true
			return nil
		}

		// 已有同类型反应则取消
		del := tx.Where("comment_id = ? AND user_id = ? AND reaction_type = ?",
			commentID, userID, rt).Delete(&ReactionModel{})
		if del.Error != nil {
			return fmt.Errorf("取消评论反应失败: %w", del.Error)
		}
		if del.RowsAffected == 1 {
			applied = false
			return nil
		}

		// 已有异类型反应则切换
		upd := tx.Model(&ReactionModel{}).
			Where("comment_id = ? AND user_id = ? AND reaction_type <> ?",
				commentID, userID, rt).
			Update("reaction_type", rt)
		if upd.Error != nil {
			return fmt.Errorf("切换评论反应失败: %w", upd.Error)
		}
		if upd.RowsAffected == 1 {
			applied = true
			return nil
		}

		// 三条路径全落空说明并发修改撞车
		return ErrReactionConflict
	})
	return applied, err
}

type reactionCountRow struct {
	CommentID    int64               `gorm:"column:comment_id"`
	ReactionType ctypes.ReactionType `gorm:"column:reaction_type"`
	Count        int64               `gorm:"column:count"`
}

// ReactionCounts 统计单条评论的各类反应数，全部类型零值补齐
func ReactionCounts(commentID int64) (map[ctypes.ReactionType]int64, error) {
	var rows []reactionCountRow
	err := global.DB.Model(&ReactionModel{}).
		Select("comment_id, reaction_type, COUNT(*) AS count").
		Where("comment_id = ?", commentID).
		Group("comment_id, reaction_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("统计评论反应失败: %w", err)
	}

	counts := make(map[ctypes.ReactionType]int64, len(ctypes.AllReactionTypes))
	for _, rt := range ctypes.AllReactionTypes {
		counts[rt] = 0
	}
	for _, row := range rows {
		counts[row.ReactionType] = row.Count
	}
	return counts, nil
}

// ReactionCountsForComments 批量统计多条评论的反应数，单句GROUP BY完成
func ReactionCountsForComments(commentIDs []int64) (map[int64]map[ctypes.ReactionType]int64, error) {
	result := make(map[int64]map[ctypes.ReactionType]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	var rows []reactionCountRow
	err := global.DB.Model(&ReactionModel{}).
		Select("comment_id, reaction_type, COUNT(*) AS count").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id, reaction_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("统计评论反应失败: %w", err)
	}

	for _, id := range commentIDs {
		counts := make(map[ctypes.ReactionType]int64, len(ctypes.AllReactionTypes))
		for _, rt := range ctypes.AllReactionTypes {
			counts[rt] = 0
		}
		result[id] = counts
	}
	for _, row := range rows {
		result[row.CommentID][row.ReactionType] = row.Count
	}
	return result, nil
}

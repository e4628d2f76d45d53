package models

// BuildCommentForest 把平面评论列表组装成森林。
// 两趟遍历：先建ID索引，再按输入顺序挂接，兄弟节点保持原有排序。
// 父节点不在列表内的评论（父评论被过滤或已删除）提升为顶级评论
func BuildCommentForest(comments []*CommentModel) []*CommentModel {
	nodes := make(map[int64]*CommentModel, len(comments))
	for _, c := range comments {
		c.SubComments = []*CommentModel{}
		nodes[c.ID] = c
	}

	roots := make([]*CommentModel, 0, len(comments))
	for _, c := range comments {
		if c.ParentID != nil {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.SubComments = append(parent.SubComments, c)
				continue
			}
		}
		roots = append(roots, c)
	}

	return roots
}

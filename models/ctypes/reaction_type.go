package ctypes

// ReactionType 评论表情反应类型
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
	ReactionLove    ReactionType = "love"
	ReactionLaugh   ReactionType = "laugh"
	ReactionAngry   ReactionType = "angry"
)

// AllReactionTypes 全部反应类型，统计时保证每种类型都有计数
var AllReactionTypes = []ReactionType{
	ReactionLike,
	ReactionDislike,
	ReactionLove,
	ReactionLaugh,
	ReactionAngry,
}

// Valid 是否为合法反应类型
func (t ReactionType) Valid() bool {
	switch t {
	case ReactionLike, ReactionDislike, ReactionLove, ReactionLaugh, ReactionAngry:
		return true
	}
	return false
}

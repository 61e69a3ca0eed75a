package domain

import (
	"time"

	authdomain "blogapp-backend/internal/auth/domain"
)

type Post struct {
	ID          string            `json:"id" gorm:"primaryKey"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	BlogID      string            `json:"blog_id" gorm:"index;not null"`
	AuthorID    string            `json:"author_id" gorm:"index;not null"`
	Likes       []authdomain.User `json:"likes" gorm:"many2many:post_likes"`
	Dislikes    []authdomain.User `json:"dislikes" gorm:"many2many:post_dislikes"`
	Labels      []Label           `json:"labels,omitempty" gorm:"many2many:post_labels"`
	Comments    []Comment         `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	PublishDate time.Time         `json:"publish_date"`
}

// ReactionKind selects which of the two disjoint reaction sets a toggle
// targets.
type ReactionKind int

const (
	ReactionLike ReactionKind = iota
	ReactionDislike
)

// Reaction states for a (post, account) pair. Exactly one holds at a time.
const (
	ReactionNeutral  = "NEUTRAL"
	ReactionLiked    = "LIKED"
	ReactionDisliked = "DISLIKED"
)

// React applies one like/dislike toggle for the given account: the opposite
// set is cleared first, then membership in the chosen set is flipped. The
// account therefore never ends up in both sets, and repeating the same
// reaction returns the pair to neutral.
func (p *Post) React(user *authdomain.User, kind ReactionKind) {
	own, other := &p.Likes, &p.Dislikes
	if kind == ReactionDislike {
		own, other = &p.Dislikes, &p.Likes
	}

	*other = removeUser(*other, user.ID)

	if containsUser(*own, user.ID) {
		*own = removeUser(*own, user.ID)
	} else {
		*own = append(*own, *user)
	}
}

// ReactionState reports the current state for an account.
func (p *Post) ReactionState(accountID string) string {
	switch {
	case containsUser(p.Likes, accountID):
		return ReactionLiked
	case containsUser(p.Dislikes, accountID):
		return ReactionDisliked
	default:
		return ReactionNeutral
	}
}

func containsUser(users []authdomain.User, id string) bool {
	for i := range users {
		if users[i].ID == id {
			return true
		}
	}
	return false
}

func removeUser(users []authdomain.User, id string) []authdomain.User {
	out := users[:0]
	for i := range users {
		if users[i].ID != id {
			out = append(out, users[i])
		}
	}
	return out
}

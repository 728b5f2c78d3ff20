package model

import "time"

// Action type values recorded in the host forum's activity log. Anything
// outside this pair is carried in the log but never counted here.
const (
	ActionNewTopic = 4
	ActionReply    = 5
)

// PostTypeRegular is the only post type that counts toward participation;
// whispers, small-action and moderator posts use other values.
const PostTypeRegular = 1

// ArchetypeRegular marks ordinary public topics as opposed to private
// messages and banners.
const ArchetypeRegular = "regular"

// UserAction is one entry of the host forum's activity log (read-only
// input to the aggregation engine).
type UserAction struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	UserID        int64     `gorm:"index;not null" json:"user_id"`
	ActionType    int       `gorm:"not null" json:"action_type"`
	TargetTopicID *int64    `json:"target_topic_id,omitempty"`
	TargetPostID  *int64    `json:"target_post_id,omitempty"`
	CreatedAt     time.Time `gorm:"index;autoCreateTime" json:"created_at"`
}

// Topic carries the join filters the aggregation engine needs; everything
// else about topics stays with the host application.
type Topic struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	CategoryID *int64     `json:"category_id,omitempty"`
	Archetype  string     `gorm:"size:50;default:regular" json:"archetype"`
	Visible    bool       `gorm:"not null" json:"visible"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// Post carries the join filters the aggregation engine needs.
type Post struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	TopicID   int64      `gorm:"index" json:"topic_id"`
	UserID    int64      `gorm:"index" json:"user_id"`
	PostType  int        `gorm:"default:1" json:"post_type"`
	Hidden    bool       `gorm:"default:false" json:"hidden"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Category exists only so topic joins resolve in a standalone deployment.
type Category struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

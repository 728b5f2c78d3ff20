package model

import (
	"strings"
	"time"
)

// User mirrors the host forum's users table. The directory only reads it:
// rows are owned by the host application and ids at or below zero are
// reserved for system accounts. Active carries no column default because
// gorm drops an explicit false on Create when the tag says default:true.
type User struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"size:60;not null" json:"username"`
	UsernameLower string    `gorm:"size:60;uniqueIndex;not null" json:"-"`
	Name          string    `gorm:"size:255" json:"name"`
	AvatarURL     *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	Active        bool      `gorm:"not null" json:"active"`
	Blocked       bool      `gorm:"default:false" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NormalizeUsername folds a username the way the users.username_lower
// column stores it.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// UserStat mirrors the host forum's per-user stats row. Only time_read is
// surfaced by the directory.
type UserStat struct {
	UserID   int64 `gorm:"primaryKey" json:"user_id"`
	TimeRead int64 `gorm:"default:0" json:"time_read"` // seconds
}

package model

// DirectoryItem is one materialized per-user-per-period statistic row.
// Rows are written only by the refresh transaction for their own period;
// TotalParticipation is always TopicCount + PostCount and is never
// mutated independently.
type DirectoryItem struct {
	PeriodType         PeriodType `gorm:"primaryKey;autoIncrement:false" json:"period_type"`
	UserID             int64      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	TopicCount         int        `gorm:"not null;default:0" json:"topic_count"`
	PostCount          int        `gorm:"not null;default:0" json:"post_count"`
	TotalParticipation int        `gorm:"not null;default:0" json:"total_participation"`

	User     User     `gorm:"foreignKey:UserID" json:"user"`
	UserStat UserStat `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

// Headings are the metric columns a caller may order the listing by.
func Headings() []string {
	return []string{"topic_count", "post_count", "total_participation"}
}

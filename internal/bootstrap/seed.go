package bootstrap

import (
	"log"
	"time"

	"anoa.com/quarterdirectory/internal/model"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// The collaborator tables (users, topics, posts, user_actions) belong
	// to the host application; migrating them here lets the directory run
	// standalone in development.
	return db.AutoMigrate(
		&model.User{},
		&model.UserStat{},
		&model.Category{},
		&model.Topic{},
		&model.Post{},
		&model.UserAction{},
		&model.DirectoryItem{},
	)
}

// SeedDemoData creates a handful of users with activity in the current
// quarter so the directory renders locally. Development only.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Users already present, skipping demo seed")
		return nil
	}

	users := []model.User{
		{ID: 1, Username: "alice", UsernameLower: "alice", Name: "Alice Martin", Active: true},
		{ID: 2, Username: "bob", UsernameLower: "bob", Name: "Bob Tanaka", Active: true},
		{ID: 3, Username: "carol", UsernameLower: "carol", Name: "Carol Reyes", Active: true},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	stats := []model.UserStat{
		{UserID: 1, TimeRead: 7200},
		{UserID: 2, TimeRead: 5400},
		{UserID: 3, TimeRead: 600},
	}
	if err := db.Create(&stats).Error; err != nil {
		return err
	}

	category := model.Category{ID: 1, Name: "General"}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	now := time.Now()
	topics := []model.Topic{
		{ID: 1, CategoryID: &category.ID, Archetype: model.ArchetypeRegular, Visible: true},
		{ID: 2, CategoryID: &category.ID, Archetype: model.ArchetypeRegular, Visible: true},
	}
	if err := db.Create(&topics).Error; err != nil {
		return err
	}

	posts := []model.Post{
		{ID: 1, TopicID: 1, UserID: 2, PostType: model.PostTypeRegular},
		{ID: 2, TopicID: 2, UserID: 3, PostType: model.PostTypeRegular},
	}
	if err := db.Create(&posts).Error; err != nil {
		return err
	}

	topicID1, topicID2 := int64(1), int64(2)
	postID1, postID2 := int64(1), int64(2)
	actions := []model.UserAction{
		{UserID: 1, ActionType: model.ActionNewTopic, TargetTopicID: &topicID1, CreatedAt: now},
		{UserID: 1, ActionType: model.ActionNewTopic, TargetTopicID: &topicID2, CreatedAt: now},
		{UserID: 2, ActionType: model.ActionReply, TargetTopicID: &topicID1, TargetPostID: &postID1, CreatedAt: now},
		{UserID: 3, ActionType: model.ActionReply, TargetTopicID: &topicID2, TargetPostID: &postID2, CreatedAt: now},
	}
	if err := db.Create(&actions).Error; err != nil {
		return err
	}

	log.Println("✅ Demo data seeded")
	return nil
}

package post

import (
	"time"
)

type Post struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    int       `json:"userId" gorm:"column:user_id;index;not null"`
	Content   string    `json:"content" gorm:"not null"`
	HasImage  bool      `json:"hasImage" gorm:"column:has_image;not null;default:false"`
	Likes     int       `json:"likes" gorm:"not null;default:0"`
	Shares    int       `json:"shares" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	PostID    int       `json:"postId" gorm:"column:post_id;index;not null"`
	UserID    int       `json:"userId" gorm:"column:user_id;not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

func (Comment) TableName() string {
	return "comments"
}

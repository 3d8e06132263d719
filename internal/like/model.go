package like

import (
	"time"
)

type Like struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    int       `json:"userId" gorm:"column:user_id;not null;uniqueIndex:uix_likes_user_post"`
	PostID    int       `json:"postId" gorm:"column:post_id;not null;uniqueIndex:uix_likes_user_post"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

func (Like) TableName() string {
	return "likes"
}

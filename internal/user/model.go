package user

type User struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`

	// Compteurs dénormalisés, toujours égaux aux collections sous-jacentes
	PostCount int `json:"postCount" gorm:"column:post_count;not null;default:0"`
	Followers int `json:"followers" gorm:"not null;default:0"`
	Comments  int `json:"comments" gorm:"not null;default:0"`
	Likes     int `json:"likes" gorm:"not null;default:0"`

	// Calculé à la lecture, jamais stocké
	AvatarURL string `json:"avatarUrl,omitempty" gorm:"-"`
}

func (User) TableName() string {
	return "users"
}

package user

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("utilisateur introuvable")
	ErrUsernameTaken = errors.New("nom d'utilisateur déjà utilisé")
)

const DefaultTopLimit = 5

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insère un nouvel utilisateur avec tous ses compteurs à zéro.
func (r *Repository) Create(username, password string) (*User, error) {
	var count int64
	if err := r.DB.Model(&User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	u := User{Username: username, Password: password}
	if err := r.DB.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByID(id int) (*User, error) {
	var u User
	if err := r.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByUsername(username string) (*User, error) {
	var u User
	if err := r.DB.Where("LOWER(username) = LOWER(?)", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// TopUsers retourne les utilisateurs triés par nombre de posts décroissant.
// Égalité départagée par id croissant pour un classement déterministe.
func (r *Repository) TopUsers(limit int) ([]User, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	users := make([]User, 0, limit)
	if err := r.DB.Order("post_count DESC, id ASC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

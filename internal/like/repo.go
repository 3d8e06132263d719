package like

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/post"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/user"
)

// ErrAlreadyLiked : un seul like par couple (utilisateur, post).
var ErrAlreadyLiked = errors.New("post déjà liké")

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Like enregistre un like et incrémente, dans la même transaction, le
// compteur du post et celui des likes reçus par son auteur. Un doublon
// échoue avec ErrAlreadyLiked, jamais en silence.
func (r *Repository) Like(userID, postID int) (*Like, error) {
	l := Like{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Like{}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyLiked
		}

		if err := tx.Create(&l).Error; err != nil {
			return err
		}

		var p post.Post
		if err := tx.First(&p, "id = ?", postID).Error; err != nil {
			return err
		}

		if err := tx.Model(&post.Post{}).Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}

		return tx.Model(&user.User{}).Where("id = ?", p.UserID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Unlike retire le like s'il existe et décrémente les compteurs, avec un
// plancher à zéro. Sans like existant c'est un no-op, pas une erreur.
func (r *Repository) Unlike(userID, postID int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var l Like
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&l).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Delete(&l).Error; err != nil {
			return err
		}

		var p post.Post
		if err := tx.First(&p, "id = ?", postID).Error; err != nil {
			return err
		}

		if err := tx.Model(&post.Post{}).Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error; err != nil {
			return err
		}

		return tx.Model(&user.User{}).Where("id = ?", p.UserID).
			UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error
	})
}

func (r *Repository) HasLiked(userID, postID int) (bool, error) {
	var count int64
	err := r.DB.Model(&Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

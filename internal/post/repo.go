package post

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/user"
)

var (
	ErrNotFound     = errors.New("post introuvable")
	ErrUserNotFound = errors.New("utilisateur introuvable")
)

const (
	DefaultFeedLimit     = 20
	DefaultTrendingLimit = 5
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insère un post pour un utilisateur existant et incrémente son
// compteur de posts dans la même transaction.
func (r *Repository) Create(userID int, content string, hasImage bool) (*PostView, error) {
	var author user.User
	p := Post{
		UserID:    userID,
		Content:   content,
		HasImage:  hasImage,
		CreatedAt: time.Now(),
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&author, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		return tx.Model(&user.User{}).Where("id = ?", userID).
			UpdateColumn("post_count", gorm.Expr("post_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return &PostView{
		Post:     p,
		Username: author.Username,
		Comments: []CommentView{},
	}, nil
}

func (r *Repository) GetByID(id int) (*Post, error) {
	var p Post
	if err := r.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ByUser retourne tous les posts d'un utilisateur, du plus récent au plus ancien.
func (r *Repository) ByUser(userID int) ([]Post, error) {
	var posts []Post
	if err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Feed retourne les posts par ordre chronologique inverse, chacun avec ses
// commentaires et l'indicateur hasLiked du lecteur.
func (r *Repository) Feed(limit, viewerID int) ([]PostView, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	var posts []Post
	if err := r.DB.Order("created_at DESC, id DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}

	return r.composeViews(posts, viewerID)
}

// Trending classe les posts par nombre de commentaires décroissant,
// quelles que soient les préférences de tri demandées en amont.
// Égalité départagée par id croissant.
func (r *Repository) Trending(limit, viewerID int) ([]PostView, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	var posts []Post
	err := r.DB.Model(&Post{}).
		Select("posts.*").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Group("posts.id").
		Order("COUNT(comments.id) DESC, posts.id ASC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return r.composeViews(posts, viewerID)
}

// Comments retourne les commentaires d'un post, du plus récent au plus
// ancien. Le nom de l'auteur est résolu à la lecture ; l'ancienneté est
// recalculée à chaque appel.
func (r *Repository) Comments(postID int) ([]CommentView, error) {
	var comments []Comment
	if err := r.DB.Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}

	usernames, err := r.usernamesFor(comments)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]CommentView, 0, len(comments))
	for _, cm := range comments {
		username, ok := usernames[cm.UserID]
		if !ok {
			username = UnknownUsername
		}
		views = append(views, CommentView{
			Comment:  cm,
			Username: username,
			TimeAgo:  timeAgo(cm.CreatedAt, now),
		})
	}
	return views, nil
}

// CreateComment insère un commentaire pour un utilisateur existant et
// incrémente son compteur de commentaires dans la même transaction.
// L'existence du post est vérifiée par la route, pas ici.
func (r *Repository) CreateComment(postID, userID int, content string) (*CommentView, error) {
	var author user.User
	cm := Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&author, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Create(&cm).Error; err != nil {
			return err
		}

		return tx.Model(&user.User{}).Where("id = ?", userID).
			UpdateColumn("comments", gorm.Expr("comments + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return &CommentView{
		Comment:  cm,
		Username: author.Username,
		TimeAgo:  timeAgo(cm.CreatedAt, time.Now()),
	}, nil
}

func (r *Repository) hasLiked(userID, postID int) (bool, error) {
	var count int64
	err := r.DB.Table("likes").
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// composeViews construit les modèles de lecture : nom de l'auteur,
// commentaires attachés et hasLiked pour le lecteur courant.
func (r *Repository) composeViews(posts []Post, viewerID int) ([]PostView, error) {
	usernames, err := r.authorsFor(posts)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		comments, err := r.Comments(p.ID)
		if err != nil {
			return nil, err
		}

		liked, err := r.hasLiked(viewerID, p.ID)
		if err != nil {
			return nil, err
		}

		username, ok := usernames[p.UserID]
		if !ok {
			username = UnknownUsername
		}

		views = append(views, PostView{
			Post:     p,
			Username: username,
			Comments: comments,
			HasLiked: liked,
		})
	}
	return views, nil
}

func (r *Repository) authorsFor(posts []Post) (map[int]string, error) {
	ids := make([]int, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.UserID)
	}
	return r.usernamesByID(ids)
}

func (r *Repository) usernamesFor(comments []Comment) (map[int]string, error) {
	ids := make([]int, 0, len(comments))
	for _, cm := range comments {
		ids = append(ids, cm.UserID)
	}
	return r.usernamesByID(ids)
}

func (r *Repository) usernamesByID(ids []int) (map[int]string, error) {
	usernames := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return usernames, nil
	}

	var users []user.User
	if err := r.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		usernames[u.ID] = u.Username
	}
	return usernames, nil
}

package external

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// Service encapsule les appels au serveur de test tiers.
type Service struct {
	client *resty.Client
}

// NewService construit le client sortant. Chaque appel est borné par un
// timeout pour qu'un serveur de test lent ne bloque pas les agrégations.
func NewService(baseURL, token string) *Service {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	if token != "" {
		client.SetAuthToken(token)
	}

	return &Service{client: client}
}

// Réponses du serveur de test.
type usersResponse struct {
	// id → nom, les identifiants sont des clés de l'objet JSON
	Users map[string]string `json:"users"`
}

type postsResponse struct {
	Posts []ExternalPost `json:"posts"`
}

type commentsResponse struct {
	Comments []ExternalComment `json:"comments"`
}

type ExternalPost struct {
	ID      int    `json:"id"`
	UserID  int    `json:"userid"`
	Content string `json:"content"`
}

type ExternalComment struct {
	ID      int    `json:"id"`
	PostID  int    `json:"postid"`
	Content string `json:"content"`
}

package external

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
)

const topUsersLimit = 5
const latestPostsLimit = 5

type TopUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PostCount int    `json:"postCount"`
}

// TopUsers interroge le serveur de test pour chaque utilisateur en
// parallèle et classe les cinq plus gros posteurs. Un appel qui échoue
// vaut zéro post pour cet utilisateur, jamais un échec global.
func (s *Service) TopUsers(ctx context.Context) ([]TopUser, error) {
	var users usersResponse
	resp, err := s.client.R().SetContext(ctx).SetResult(&users).Get("/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("serveur de test: statut %d", resp.StatusCode())
	}

	var mu sync.Mutex
	postCounts := make(map[string]int, len(users.Users))

	g, gctx := errgroup.WithContext(ctx)
	for userID := range users.Users {
		userID := userID
		g.Go(func() error {
			count := 0
			var posts postsResponse
			resp, err := s.client.R().SetContext(gctx).SetResult(&posts).
				Get(fmt.Sprintf("/users/%s/posts", userID))
			if err == nil && !resp.IsError() {
				count = len(posts.Posts)
			}

			mu.Lock()
			postCounts[userID] = count
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	top := make([]TopUser, 0, len(postCounts))
	for id, count := range postCounts {
		top = append(top, TopUser{ID: id, Name: users.Users[id], PostCount: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].PostCount != top[j].PostCount {
			return top[i].PostCount > top[j].PostCount
		}
		return numericLess(top[i].ID, top[j].ID)
	})
	if len(top) > topUsersLimit {
		top = top[:topUsersLimit]
	}
	return top, nil
}

// Posts agrège les posts de tous les utilisateurs du serveur de test.
// kind "latest" : les cinq posts les plus récents (id décroissant).
// kind "popular" : les posts ayant le plus de commentaires.
func (s *Service) Posts(ctx context.Context, kind string) ([]ExternalPost, error) {
	var users usersResponse
	resp, err := s.client.R().SetContext(ctx).SetResult(&users).Get("/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("serveur de test: statut %d", resp.StatusCode())
	}

	var mu sync.Mutex
	var allPosts []ExternalPost

	g, gctx := errgroup.WithContext(ctx)
	for userID := range users.Users {
		userID := userID
		g.Go(func() error {
			var posts postsResponse
			resp, err := s.client.R().SetContext(gctx).SetResult(&posts).
				Get(fmt.Sprintf("/users/%s/posts", userID))
			if err != nil || resp.IsError() {
				// Utilisateur ignoré, l'agrégat continue
				return nil
			}

			mu.Lock()
			allPosts = append(allPosts, posts.Posts...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if kind == "latest" {
		sort.Slice(allPosts, func(i, j int) bool { return allPosts[i].ID > allPosts[j].ID })
		if len(allPosts) > latestPostsLimit {
			allPosts = allPosts[:latestPostsLimit]
		}
		return allPosts, nil
	}

	// popular : nombre de commentaires par post, en parallèle là aussi
	commentCounts := make(map[int]int, len(allPosts))

	cg, cgctx := errgroup.WithContext(ctx)
	for _, p := range allPosts {
		p := p
		cg.Go(func() error {
			count := 0
			var comments commentsResponse
			resp, err := s.client.R().SetContext(cgctx).SetResult(&comments).
				Get(fmt.Sprintf("/posts/%d/comments", p.ID))
			if err == nil && !resp.IsError() {
				count = len(comments.Comments)
			}

			mu.Lock()
			commentCounts[p.ID] = count
			mu.Unlock()
			return nil
		})
	}
	if err := cg.Wait(); err != nil {
		return nil, err
	}

	maxCount := 0
	for _, count := range commentCounts {
		if count > maxCount {
			maxCount = count
		}
	}

	popular := make([]ExternalPost, 0)
	for _, p := range allPosts {
		if commentCounts[p.ID] == maxCount {
			popular = append(popular, p)
		}
	}
	sort.Slice(popular, func(i, j int) bool { return popular[i].ID < popular[j].ID })
	return popular, nil
}

func numericLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}

package seed

import (
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"github.com/ArthurDelaporte/PulseFeed-Back/internal/like"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/logs"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/post"
	"github.com/ArthurDelaporte/PulseFeed-Back/internal/user"
)

var demoUsernames = []string{
	"John Doe",
	"Jane Smith",
	"Alex Johnson",
	"Maria Garcia",
	"David Kim",
	"Sarah Wilson",
	"Michael Brown",
}

// Volumes décroissants pour produire un classement lisible
var postsPerUser = []int{23, 19, 17, 15, 13, 10, 8}

var postContents = []string{
	"Amazing elephant sighting on my recent safari trip! These gentle giants are truly magnificent creatures. What do you think? #Wildlife #Safari #Elephant",
	"Just spotted this amazing ant colony in my backyard. The complexity of their organization is truly fascinating! #Nature #Insects #Biology",
	"Just finished my morning hike! The sunrise was absolutely breathtaking today. #MorningHike #Nature #Sunrise",
	"Just got my hands on the latest tech gadget! Can't wait to try it out and see if it lives up to the hype. Has anyone else tried it yet? #TechNews #Gadgets",
	"Made an incredible pasta dish for dinner tonight! The secret is in the sauce. #Cooking #FoodLover #Homemade",
	"Can't believe how fast my garden is growing this year! Look at these tomatoes! #Gardening #GrowYourOwn #Summer",
	"Work from home view today. So grateful for this flexibility. #RemoteWork #DigitalNomad #WorkLifeBalance",
	"My new art project is coming along nicely. It's all about expression through color. #Art #Creative #WIP",
}

var commentContents = []string{
	"Such beautiful creatures! I was lucky enough to see them in Kenya last year.",
	"Did you know elephants can communicate through the ground? They make low-frequency sounds that travel through the earth!",
	"This is absolutely fascinating! I've always been interested in ant colonies.",
	"Amazing photo! The colors are so vibrant.",
	"I tried it last week and it's definitely worth the hype!",
	"This looks delicious! Would you mind sharing your recipe?",
	"Your garden is thriving! Any tips for a beginner?",
	"That view is incredible! What a great workspace.",
	"The use of color is really striking. Can't wait to see the finished piece!",
}

// Run remplit la base de démonstration : utilisateurs, posts, commentaires
// et likes, puis recalcule tous les compteurs dénormalisés en un passage.
func Run(db *gorm.DB) error {
	users := user.NewRepository(db)
	posts := post.NewRepository(db)
	likes := like.NewRepository(db)

	for _, username := range demoUsernames {
		if _, err := users.Create(username, "password"); err != nil {
			return fmt.Errorf("seed utilisateur %q: %w", username, err)
		}
	}

	userCount := len(demoUsernames)

	for userIdx, numPosts := range postsPerUser {
		for i := 0; i < numPosts; i++ {
			content := postContents[rand.Intn(len(postContents))]
			hasImage := rand.Float64() > 0.3
			if _, err := posts.Create(userIdx+1, content, hasImage); err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
	}

	totalPosts := 0
	for _, n := range postsPerUser {
		totalPosts += n
	}

	for postID := 1; postID <= totalPosts; postID++ {
		// Les deux premiers posts reçoivent beaucoup de commentaires
		// pour alimenter les tendances
		commentCount := rand.Intn(8) + 1
		if postID == 1 || postID == 2 {
			commentCount = 15
		}

		for i := 0; i < commentCount; i++ {
			authorID := rand.Intn(userCount) + 1
			content := commentContents[rand.Intn(len(commentContents))]
			if _, err := posts.CreateComment(postID, authorID, content); err != nil {
				return fmt.Errorf("seed commentaire: %w", err)
			}
		}

		likeCount := rand.Intn(userCount) + 1
		for _, likerID := range rand.Perm(userCount)[:likeCount] {
			if _, err := likes.Like(likerID+1, postID); err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}

		if err := db.Model(&post.Post{}).Where("id = ?", postID).
			UpdateColumn("shares", rand.Intn(15)).Error; err != nil {
			return fmt.Errorf("seed partages: %w", err)
		}
	}

	if err := recomputeUserStats(db); err != nil {
		return err
	}

	logs.LogJSON("INFO", "Demo dataset seeded", map[string]interface{}{
		"users": userCount,
		"posts": totalPosts,
	})
	return nil
}

// recomputeUserStats recalcule en bloc les compteurs dérivés à partir des
// collections sous-jacentes. Les mutations incrémentales pendant le seed
// donnent le même résultat ; ce passage garantit l'invariant au repos.
func recomputeUserStats(db *gorm.DB) error {
	err := db.Exec(`
		UPDATE users SET
			post_count = (SELECT COUNT(*) FROM posts WHERE posts.user_id = users.id),
			comments   = (SELECT COUNT(*) FROM comments WHERE comments.user_id = users.id),
			likes      = (SELECT COUNT(*) FROM likes
			              JOIN posts ON posts.id = likes.post_id
			              WHERE posts.user_id = users.id)
	`).Error
	if err != nil {
		return fmt.Errorf("recalcul des compteurs: %w", err)
	}

	// Les abonnés ne sont pas modélisés : compteur décoratif
	var users []user.User
	if err := db.Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		if err := db.Model(&user.User{}).Where("id = ?", u.ID).
			UpdateColumn("followers", rand.Intn(1000)+100).Error; err != nil {
			return err
		}
	}
	return nil
}

package post

import (
	"fmt"
	"time"
)

// UnknownUsername remplace le nom d'un auteur dont le compte n'existe plus.
const UnknownUsername = "Unknown User"

// PostView est le modèle de lecture d'un post : l'entité stockée enrichie
// des champs calculés au moment de la lecture. Les entités en base ne sont
// jamais mutées avec ces champs transitoires.
type PostView struct {
	Post
	Username string        `json:"username"`
	Comments []CommentView `json:"comments"`
	HasLiked bool          `json:"hasLiked"`
}

type CommentView struct {
	Comment
	Username string `json:"username"`
	TimeAgo  string `json:"timeAgo"`
}

// timeAgo formate l'ancienneté d'une date, recalculée à chaque lecture.
func timeAgo(t, now time.Time) string {
	d := now.Sub(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < 2*time.Minute:
		return "1 minute ago"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 2*time.Hour:
		return "1 hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "1 day ago"
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	case d < 60*24*time.Hour:
		return "1 month ago"
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d months ago", int(d.Hours()/(24*30)))
	case d < 2*365*24*time.Hour:
		return "1 year ago"
	default:
		return fmt.Sprintf("%d years ago", int(d.Hours()/(24*365)))
	}
}

package realtime

// Types des messages poussés aux abonnés temps réel.
const (
	TypeNewPost    = "new_post"
	TypeNewComment = "new_comment"
	TypePostLiked  = "post_liked"
)

type NewPostEvent struct {
	Type string      `json:"type"`
	Post interface{} `json:"post"`
}

func NewPost(post interface{}) NewPostEvent {
	return NewPostEvent{Type: TypeNewPost, Post: post}
}

type NewCommentEvent struct {
	Type    string      `json:"type"`
	PostID  int         `json:"postId"`
	Comment interface{} `json:"comment"`
}

func NewComment(postID int, comment interface{}) NewCommentEvent {
	return NewCommentEvent{Type: TypeNewComment, PostID: postID, Comment: comment}
}

type PostLikedEvent struct {
	Type   string `json:"type"`
	PostID int    `json:"postId"`
	Likes  int    `json:"likes"`
}

func PostLiked(postID, likes int) PostLikedEvent {
	return PostLikedEvent{Type: TypePostLiked, PostID: postID, Likes: likes}
}

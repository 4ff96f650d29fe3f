package news

// Article is one news entry as stored and served.
type Article struct {
	ID        string `json:"id" firestore:"-"`
	Title     string `json:"title" firestore:"title"`
	Body      string `json:"body" firestore:"body"`
	ImageURL  string `json:"imageUrl" firestore:"imageUrl"`
	Author    string `json:"author" firestore:"author"`
	Timestamp int64  `json:"timestamp" firestore:"timestamp"`
}

// ArticleRequest is the payload for publishing an article.
type ArticleRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	ImageURL string `json:"imageUrl"`
	Author   string `json:"author"`
}

package news

import (
	"errors"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"
	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrArticleNotFound = errors.New("article not found")

type NewsService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
}

func NewNewsService(firestoreClient *firestore.Client, firebaseApp *firebase.App) *NewsService {
	return &NewsService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
	}
}

// ListArticles returns the feed, newest first.
func (s *NewsService) ListArticles(c *gin.Context) ([]Article, error) {
	docs, err := s.firestoreClient.Collection("news").
		OrderBy("timestamp", firestore.Desc).
		Documents(c).GetAll()
	if err != nil {
		log.Printf("Failed to list news: %v\n", err)
		return nil, err
	}

	articles := make([]Article, 0, len(docs))
	for _, doc := range docs {
		var article Article
		if err := doc.DataTo(&article); err != nil {
			return nil, xerrors.Errorf("encountered consistency error when trying to map news article: %w", err)
		}
		article.ID = doc.Ref.ID
		articles = append(articles, article)
	}
	return articles, nil
}

// PublishArticle stores a new article under a generated ID and returns it.
func (s *NewsService) PublishArticle(c *gin.Context, request ArticleRequest) (*Article, error) {
	article := Article{
		ID:        uuidv7.New().String(),
		Title:     request.Title,
		Body:      request.Body,
		ImageURL:  request.ImageURL,
		Author:    request.Author,
		Timestamp: time.Now().Unix(),
	}

	_, err := s.firestoreClient.Collection("news").Doc(article.ID).Set(c, article)
	if err != nil {
		log.Printf("Failed to publish article: %v\n", err)
		return nil, err
	}
	return &article, nil
}

// DeleteArticle removes an article from the feed.
func (s *NewsService) DeleteArticle(c *gin.Context, articleID string) error {
	docRef := s.firestoreClient.Collection("news").Doc(articleID)

	if _, err := docRef.Get(c); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrArticleNotFound
		}
		log.Printf("Failed to get article %s: %v\n", articleID, err)
		return err
	}

	if _, err := docRef.Delete(c); err != nil {
		log.Printf("Failed to delete article %s: %v\n", articleID, err)
		return err
	}
	return nil
}

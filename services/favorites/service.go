package favorites

import (
	"log"
	"strconv"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FavoritesService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
}

func NewFavoritesService(firestoreClient *firestore.Client, firebaseApp *firebase.App) *FavoritesService {
	return &FavoritesService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
	}
}

func (s *FavoritesService) favoritesRef(userID string) *firestore.DocumentRef {
	return s.firestoreClient.Collection("users").Doc(userID).Collection("favorites").Doc("data")
}

// GetFavorites returns the caller's favorites; a user with no favorites
// document gets an empty set, not an error.
func (s *FavoritesService) GetFavorites(c *gin.Context, userID string) (*Favorites, error) {
	doc, err := s.favoritesRef(userID).Get(c)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &Favorites{}, nil
		}
		log.Printf("Failed to get favorites for user %s: %v\n", userID, err)
		return nil, err
	}

	var favorites Favorites
	if err := doc.DataTo(&favorites); err != nil {
		return nil, xerrors.Errorf(
			"consistency error. Converting %+v to favorites failed: %w",
			doc,
			err,
		)
	}
	return &favorites, nil
}

// SetFavorites replaces the caller's favorites document wholesale. The
// client owns the full set, mirroring how the app keeps local and remote
// favorites in sync.
func (s *FavoritesService) SetFavorites(c *gin.Context, userID string, favorites Favorites) error {
	if _, err := s.favoritesRef(userID).Set(c, favorites); err != nil {
		log.Printf("Failed to set favorites for user %s: %v\n", userID, err)
		return err
	}
	return nil
}

// SetCrownedTeam crowns a single team, preserving the rest of the document.
func (s *FavoritesService) SetCrownedTeam(c *gin.Context, userID string, team CrownedTeam) error {
	_, err := s.favoritesRef(userID).Set(c, map[string]interface{}{
		"crownedTeams": map[string]CrownedTeam{
			strconv.Itoa(team.TeamID): team,
		},
	}, firestore.MergeAll)
	if err != nil {
		log.Printf("Failed to crown team %d for user %s: %v\n", team.TeamID, userID, err)
		return err
	}
	return nil
}

// RemoveCrownedTeam removes a single crowned team.
func (s *FavoritesService) RemoveCrownedTeam(c *gin.Context, userID string, teamID int) error {
	_, err := s.favoritesRef(userID).Update(c, []firestore.Update{
		{Path: "crownedTeams." + strconv.Itoa(teamID), Value: firestore.Delete},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		log.Printf("Failed to uncrown team %d for user %s: %v\n", teamID, userID, err)
		return err
	}
	return nil
}

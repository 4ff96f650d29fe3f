package predictions

import (
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"golang.org/x/xerrors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	timehelper "github.com/nabdalmalaeb/score-sync/pkg/timeHelper"
	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
	resend "github.com/nabdalmalaeb/score-sync/repos/resend"
)

var (
	ErrRecalculationInProgress = errors.New("a recalculation run is already in progress")
	ErrFixtureNotPinned        = errors.New("fixture is not pinned for predictions")
	ErrFixtureNotFound         = errors.New("fixture not found upstream")
	ErrPredictionClosed        = errors.New("predictions are closed for this fixture")
)

type PredictionsService struct {
	firestoreClient    *firestore.Client
	firebaseApp        *firebase.App
	apiFootballService *apifootball.Service
	resendService      *resend.Service
	leaderboardLimit   int

	// Serializes recompute runs; a second trigger while one is in flight
	// is rejected instead of racing on the same leaderboard documents.
	recalcMu sync.Mutex
}

func NewPredictionsService(firestoreClient *firestore.Client, firebaseApp *firebase.App, apiFootballService *apifootball.Service, resendService *resend.Service, leaderboardLimit int) *PredictionsService {
	return &PredictionsService{
		firestoreClient:    firestoreClient,
		firebaseApp:        firebaseApp,
		apiFootballService: apiFootballService,
		resendService:      resendService,
		leaderboardLimit:   leaderboardLimit,
	}
}

// ListPinnedFixtures returns every fixture currently open for predictions.
func (s *PredictionsService) ListPinnedFixtures(c *gin.Context) ([]PinnedFixtureEntry, error) {
	docs, err := s.firestoreClient.Collection("predictionFixtures").Documents(c).GetAll()
	if err != nil {
		log.Printf("Failed to list pinned fixtures: %v\n", err)
		return nil, err
	}

	entries := make([]PinnedFixtureEntry, 0, len(docs))
	for _, doc := range docs {
		pinned, err := docToPinnedFixture(doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, PinnedFixtureEntry{
			ID:          doc.Ref.ID,
			FixtureData: pinned.FixtureData,
		})
	}
	return entries, nil
}

// SavePrediction creates or replaces the caller's prediction for a pinned
// fixture. Saving is rejected once the fixture has kicked off; stored points
// are preserved since only the scoring pipeline may change them.
func (s *PredictionsService) SavePrediction(c *gin.Context, userID string, fixtureID int, request PredictionRequest) (*Prediction, error) {
	fixtureKey := strconv.Itoa(fixtureID)

	pinnedDoc, err := s.firestoreClient.Collection("predictionFixtures").Doc(fixtureKey).Get(c)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrFixtureNotPinned
		}
		log.Printf("Failed to get pinned fixture %s: %v\n", fixtureKey, err)
		return nil, err
	}

	pinned, err := docToPinnedFixture(pinnedDoc)
	if err != nil {
		return nil, err
	}
	if timehelper.HasKickedOff(pinned.FixtureData.Fixture.Timestamp, time.Now()) {
		return nil, ErrPredictionClosed
	}

	predictionRef := s.firestoreClient.Collection("predictionFixtures").Doc(fixtureKey).Collection("userPredictions").Doc(userID)

	existingPoints := 0
	if existingDoc, err := predictionRef.Get(c); err == nil && existingDoc.Exists() {
		var existing Prediction
		if err := existingDoc.DataTo(&existing); err == nil {
			existingPoints = existing.Points
		}
	}

	prediction := Prediction{
		UserID:    userID,
		FixtureID: fixtureID,
		HomeGoals: *request.HomeGoals,
		AwayGoals: *request.AwayGoals,
		Points:    existingPoints,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := predictionRef.Set(c, prediction); err != nil {
		log.Printf("Failed to save prediction for user %s on fixture %s: %v\n", userID, fixtureKey, err)
		return nil, err
	}
	return &prediction, nil
}

// GetUserPredictions returns the caller's predictions keyed by fixture ID.
func (s *PredictionsService) GetUserPredictions(c *gin.Context, userID string) (map[string]Prediction, error) {
	iter := s.firestoreClient.CollectionGroup("userPredictions").Where("userId", "==", userID).Documents(c)
	defer iter.Stop()

	result := make(map[string]Prediction)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Failed to iterate predictions for user %s: %v\n", userID, err)
			return nil, err
		}

		var prediction Prediction
		if err := doc.DataTo(&prediction); err != nil {
			log.Printf("Failed to decode prediction document: %v\n", err)
			continue
		}
		result[strconv.Itoa(prediction.FixtureID)] = prediction
	}
	return result, nil
}

// GetLeaderboard returns the top of the persisted ranking, rank ascending.
func (s *PredictionsService) GetLeaderboard(c *gin.Context) ([]LeaderboardEntry, error) {
	docs, err := s.firestoreClient.Collection("leaderboard").
		OrderBy("rank", firestore.Asc).
		Limit(s.leaderboardLimit).
		Documents(c).
		GetAll()
	if err != nil {
		log.Printf("Failed to read leaderboard: %v\n", err)
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(docs))
	for _, doc := range docs {
		var entry LeaderboardEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, xerrors.Errorf(
				"consistency error. Converting %+v to leaderboard entry failed: %w",
				doc,
				err,
			)
		}
		entry.UserID = doc.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetUserScore returns the caller's own leaderboard row, or nil when the
// user is unranked.
func (s *PredictionsService) GetUserScore(c *gin.Context, userID string) (*LeaderboardEntry, error) {
	doc, err := s.firestoreClient.Collection("leaderboard").Doc(userID).Get(c)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		log.Printf("Failed to read leaderboard entry for user %s: %v\n", userID, err)
		return nil, err
	}

	var entry LeaderboardEntry
	if err := doc.DataTo(&entry); err != nil {
		return nil, xerrors.Errorf(
			"consistency error. Converting %+v to leaderboard entry failed: %w",
			doc,
			err,
		)
	}
	entry.UserID = userID
	return &entry, nil
}

// PinFixture snapshots a fixture from the football API and opens it for
// predictions.
func (s *PredictionsService) PinFixture(c *gin.Context, fixtureID int) error {
	fixture, err := s.apiFootballService.FixtureByID(c.Request.Context(), fixtureID)
	if err != nil {
		log.Printf("Failed to fetch fixture %d for pinning: %v\n", fixtureID, err)
		return err
	}
	if fixture == nil {
		return ErrFixtureNotFound
	}

	docRef := s.firestoreClient.Collection("predictionFixtures").Doc(strconv.Itoa(fixtureID))
	if _, err := docRef.Set(c, PinnedFixture{FixtureData: *fixture}); err != nil {
		log.Printf("Failed to pin fixture %d: %v\n", fixtureID, err)
		return err
	}
	return nil
}

// UnpinFixture removes a fixture from the prediction pool. Existing
// prediction documents remain and simply stop contributing once the pipeline
// next runs.
func (s *PredictionsService) UnpinFixture(c *gin.Context, fixtureID int) error {
	docRef := s.firestoreClient.Collection("predictionFixtures").Doc(strconv.Itoa(fixtureID))
	if _, err := docRef.Delete(c); err != nil {
		log.Printf("Failed to unpin fixture %d: %v\n", fixtureID, err)
		return err
	}
	return nil
}

func docToPinnedFixture(doc *firestore.DocumentSnapshot) (*PinnedFixture, error) {
	var pinned PinnedFixture
	if err := doc.DataTo(&pinned); err != nil {
		// If this fails, we have an inconsistency error as we control both
		// the data written to Firestore and the shape of our struct.
		return nil, xerrors.Errorf(
			"consistency error. Converting %+v to pinned fixture failed: %w",
			doc,
			err,
		)
	}
	return &pinned, nil
}

package admin

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	inviteCode "github.com/nabdalmalaeb/score-sync/pkg/inviteCode"
	resend "github.com/nabdalmalaeb/score-sync/repos/resend"
	favorites "github.com/nabdalmalaeb/score-sync/services/favorites"
)

var (
	ErrUnknownKind   = errors.New("unknown customization kind")
	ErrInvalidInvite = errors.New("invite code is not valid")
)

const overridesCacheTTL = 5 * time.Minute

type AdminService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
	resendService   *resend.Service

	overridesMu        sync.Mutex
	cachedOverrides    map[string]map[string]string
	overridesFetchedAt time.Time
}

func NewAdminService(firestoreClient *firestore.Client, firebaseApp *firebase.App, resendService *resend.Service) *AdminService {
	return &AdminService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
		resendService:   resendService,
	}
}

// ListCustomizations returns every display-name override, keyed by kind then
// entity ID. Served publicly so clients can localize names on render.
func (s *AdminService) ListCustomizations(c *gin.Context) (map[string]map[string]string, error) {
	return s.loadOverrides(c.Request.Context())
}

// SetCustomization stores an override for one entity.
func (s *AdminService) SetCustomization(c *gin.Context, kind, entityID, customName string) error {
	collection, ok := customizationKinds[kind]
	if !ok {
		return ErrUnknownKind
	}

	_, err := s.firestoreClient.Collection(collection).Doc(entityID).Set(c, customizationDoc{
		CustomName: customName,
	})
	if err != nil {
		log.Printf("Failed to set %s customization for %s: %v\n", kind, entityID, err)
		return err
	}
	s.invalidateOverrides()
	return nil
}

// DeleteCustomization removes an override, restoring the upstream name.
func (s *AdminService) DeleteCustomization(c *gin.Context, kind, entityID string) error {
	collection, ok := customizationKinds[kind]
	if !ok {
		return ErrUnknownKind
	}

	if _, err := s.firestoreClient.Collection(collection).Doc(entityID).Delete(c); err != nil {
		log.Printf("Failed to delete %s customization for %s: %v\n", kind, entityID, err)
		return err
	}
	s.invalidateOverrides()
	return nil
}

// TeamName resolves the display name for a team, falling back to the
// upstream name when no override exists or overrides are unavailable.
func (s *AdminService) TeamName(ctx context.Context, teamID int, fallback string) string {
	return s.resolve(ctx, "team", teamID, fallback)
}

// LeagueName resolves the display name for a league.
func (s *AdminService) LeagueName(ctx context.Context, leagueID int, fallback string) string {
	return s.resolve(ctx, "league", leagueID, fallback)
}

func (s *AdminService) resolve(ctx context.Context, kind string, entityID int, fallback string) string {
	overrides, err := s.loadOverrides(ctx)
	if err != nil {
		return fallback
	}
	if name, ok := overrides[kind][strconv.Itoa(entityID)]; ok && name != "" {
		return name
	}
	return fallback
}

func (s *AdminService) loadOverrides(ctx context.Context) (map[string]map[string]string, error) {
	s.overridesMu.Lock()
	defer s.overridesMu.Unlock()

	if s.cachedOverrides != nil && time.Since(s.overridesFetchedAt) < overridesCacheTTL {
		return s.cachedOverrides, nil
	}

	overrides := make(map[string]map[string]string, len(customizationKinds))
	for kind, collection := range customizationKinds {
		docs, err := s.firestoreClient.Collection(collection).Documents(ctx).GetAll()
		if err != nil {
			log.Printf("Failed to list %s: %v\n", collection, err)
			return nil, err
		}

		kindOverrides := make(map[string]string, len(docs))
		for _, doc := range docs {
			var customization customizationDoc
			if err := doc.DataTo(&customization); err != nil {
				log.Printf("Skipping malformed customization %s: %v\n", doc.Ref.Path, err)
				continue
			}
			kindOverrides[doc.Ref.ID] = customization.CustomName
		}
		overrides[kind] = kindOverrides
	}

	s.cachedOverrides = overrides
	s.overridesFetchedAt = time.Now()
	return overrides, nil
}

func (s *AdminService) invalidateOverrides() {
	s.overridesMu.Lock()
	s.cachedOverrides = nil
	s.overridesMu.Unlock()
}

// GetDashboardStats aggregates the numbers the admin dashboard shows: user
// count, prediction count and follow tallies per team and league.
func (s *AdminService) GetDashboardStats(c *gin.Context) (*DashboardStats, error) {
	usersSnapshot, err := s.firestoreClient.Collection("users").Documents(c).GetAll()
	if err != nil {
		log.Printf("Failed to list users: %v\n", err)
		return nil, err
	}

	teamCounts := map[string]int{}
	leagueCounts := map[string]int{}

	for _, userDoc := range usersSnapshot {
		favoritesDoc, err := userDoc.Ref.Collection("favorites").Doc("data").Get(c)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			log.Printf("Failed to get favorites for user %s: %v\n", userDoc.Ref.ID, err)
			return nil, err
		}

		var favs favorites.Favorites
		if err := favoritesDoc.DataTo(&favs); err != nil {
			log.Printf("Skipping malformed favorites for user %s: %v\n", userDoc.Ref.ID, err)
			continue
		}
		for _, team := range favs.Teams {
			teamCounts[team.Name]++
		}
		for _, league := range favs.Leagues {
			leagueCounts[league.Name]++
		}
	}

	totalPredictions := 0
	iter := s.firestoreClient.CollectionGroup("userPredictions").Documents(c)
	defer iter.Stop()
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Failed to count predictions: %v\n", err)
			return nil, err
		}
		totalPredictions++
	}

	return &DashboardStats{
		TotalUsers:       len(usersSnapshot),
		TotalPredictions: totalPredictions,
		TeamFollows:      toSortedStats(teamCounts),
		LeagueFollows:    toSortedStats(leagueCounts),
	}, nil
}

func toSortedStats(counts map[string]int) []Stat {
	stats := make([]Stat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, Stat{Name: name, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// RequestInvite mails an admin invite to the given address and records the
// pending invite so the code is single-use.
func (s *AdminService) RequestInvite(c *gin.Context, email string) error {
	code := inviteCode.Generate(email)

	_, uniqueID, err := inviteCode.Decode(code)
	if err != nil {
		return err
	}

	_, err = s.firestoreClient.Collection("adminInvites").Doc(uniqueID).Set(c, map[string]interface{}{
		"email":     email,
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("Failed to record admin invite: %v\n", err)
		return err
	}

	return s.resendService.SendAdminInvite(c.Request.Context(), email, code)
}

// RedeemInvite validates an invite code and grants the calling user admin
// access. The pending invite is consumed on success.
func (s *AdminService) RedeemInvite(c *gin.Context, code, userID string) error {
	email, uniqueID, err := inviteCode.Decode(code)
	if err != nil {
		return ErrInvalidInvite
	}

	inviteRef := s.firestoreClient.Collection("adminInvites").Doc(uniqueID)
	doc, err := inviteRef.Get(c)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrInvalidInvite
		}
		log.Printf("Failed to get admin invite: %v\n", err)
		return err
	}

	storedEmail, err := doc.DataAt("email")
	if err != nil || storedEmail != email {
		return ErrInvalidInvite
	}

	if err := s.resendService.GrantAdmin(c.Request.Context(), userID, email); err != nil {
		return err
	}

	if _, err := inviteRef.Delete(c); err != nil {
		log.Printf("Failed to consume admin invite: %v\n", err)
	}
	return nil
}

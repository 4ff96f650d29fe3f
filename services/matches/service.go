package matches

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"

	timehelper "github.com/nabdalmalaeb/score-sync/pkg/timeHelper"
	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
)

// NameResolver maps upstream entity names to their Arabic display names.
type NameResolver interface {
	TeamName(ctx context.Context, teamID int, fallback string) string
	LeagueName(ctx context.Context, leagueID int, fallback string) string
}

// Options configures the matches service cache and live refresh behavior.
type Options struct {
	CacheTTL       time.Duration
	CacheEntries   int
	RefreshEvery   time.Duration
	ActivityWindow time.Duration
}

type MatchesService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
	apiFootball     *apifootball.Service
	names           NameResolver
	cache           *dateCache
	refresher       *liveRefresher
}

func NewMatchesService(firestoreClient *firestore.Client, firebaseApp *firebase.App, apiFootball *apifootball.Service, names NameResolver, opts Options) *MatchesService {
	cache := newDateCache(opts.CacheTTL, opts.CacheEntries)
	return &MatchesService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
		apiFootball:     apiFootball,
		names:           names,
		cache:           cache,
		refresher:       newLiveRefresher(cache, apiFootball, opts.RefreshEvery, opts.ActivityWindow),
	}
}

// StartLiveRefresh begins background polling of live scores for dates
// clients are watching.
func (s *MatchesService) StartLiveRefresh() {
	s.refresher.Start()
}

// StopLiveRefresh tears the poller down.
func (s *MatchesService) StopLiveRefresh() {
	s.refresher.Stop()
}

// FixturesForDate returns the feed for one day, served from the date cache
// when fresh. Display names are localized on the way out so cached entries
// keep the upstream names.
func (s *MatchesService) FixturesForDate(c *gin.Context, dateKey string) ([]apifootball.Fixture, error) {
	if err := timehelper.ValidateDateKey(dateKey); err != nil {
		return nil, err
	}

	if fixtures, ok := s.cache.Get(dateKey); ok {
		return s.localize(c.Request.Context(), fixtures), nil
	}

	fixtures, err := s.apiFootball.FixturesByDate(c.Request.Context(), dateKey)
	if err != nil {
		log.Printf("Failed to fetch fixtures for %s: %v\n", dateKey, err)
		return nil, err
	}

	s.cache.Set(dateKey, fixtures)
	return s.localize(c.Request.Context(), fixtures), nil
}

// FixtureByID returns a single fixture straight from the upstream.
func (s *MatchesService) FixtureByID(c *gin.Context, fixtureID int) (*apifootball.Fixture, error) {
	fixture, err := s.apiFootball.FixtureByID(c.Request.Context(), fixtureID)
	if err != nil {
		log.Printf("Failed to fetch fixture %d: %v\n", fixtureID, err)
		return nil, err
	}
	if fixture == nil {
		return nil, nil
	}
	localized := s.localize(c.Request.Context(), []apifootball.Fixture{*fixture})
	return &localized[0], nil
}

// Standings returns the localized table for a league season.
func (s *MatchesService) Standings(c *gin.Context, leagueID, season int) ([]apifootball.LeagueWrapper, error) {
	wrappers, err := s.apiFootball.Standings(c.Request.Context(), leagueID, season)
	if err != nil {
		log.Printf("Failed to fetch standings for league %d: %v\n", leagueID, err)
		return nil, err
	}

	ctx := c.Request.Context()
	for wi := range wrappers {
		league := &wrappers[wi].League
		league.Name = s.names.LeagueName(ctx, league.ID, league.Name)
		for gi := range league.Standings {
			for ti := range league.Standings[gi] {
				team := &league.Standings[gi][ti].Team
				team.Name = s.names.TeamName(ctx, team.ID, team.Name)
			}
		}
	}
	return wrappers, nil
}

// TeamSquad returns the roster of a team.
func (s *MatchesService) TeamSquad(c *gin.Context, teamID int) ([]apifootball.Squad, error) {
	squads, err := s.apiFootball.TeamSquad(c.Request.Context(), teamID)
	if err != nil {
		log.Printf("Failed to fetch squad for team %d: %v\n", teamID, err)
		return nil, err
	}

	for i := range squads {
		squads[i].Team.Name = s.names.TeamName(c.Request.Context(), squads[i].Team.ID, squads[i].Team.Name)
	}
	return squads, nil
}

// FixtureOdds returns pre-match odds for a fixture.
func (s *MatchesService) FixtureOdds(c *gin.Context, fixtureID int) ([]apifootball.Odds, error) {
	odds, err := s.apiFootball.FixtureOdds(c.Request.Context(), fixtureID)
	if err != nil {
		log.Printf("Failed to fetch odds for fixture %d: %v\n", fixtureID, err)
		return nil, err
	}
	return odds, nil
}

// InvalidateCache drops cached feeds; with a date it drops only that day.
func (s *MatchesService) InvalidateCache(c *gin.Context, dateKey string) error {
	if dateKey == "" {
		s.cache.InvalidateAll()
		return nil
	}
	if err := timehelper.ValidateDateKey(dateKey); err != nil {
		return err
	}
	s.cache.Invalidate(dateKey)
	return nil
}

func (s *MatchesService) localize(ctx context.Context, fixtures []apifootball.Fixture) []apifootball.Fixture {
	localized := make([]apifootball.Fixture, len(fixtures))
	for i, fixture := range fixtures {
		fixture.League.Name = s.names.LeagueName(ctx, fixture.League.ID, fixture.League.Name)
		fixture.Teams.Home.Name = s.names.TeamName(ctx, fixture.Teams.Home.ID, fixture.Teams.Home.Name)
		fixture.Teams.Away.Name = s.names.TeamName(ctx, fixture.Teams.Away.ID, fixture.Teams.Away.Name)
		localized[i] = fixture
	}
	return localized
}

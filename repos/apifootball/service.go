package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"
)

// Service is a thin client for the API-Football v3 REST API. All calls are
// read-only; the upstream is treated as the single source of truth for
// fixture state.
type Service struct {
	httpClient *http.Client
	host       string
	apiKey     string
}

// NewService creates a client for the given API host and key.
func NewService(host, apiKey string) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		host:       host,
		apiKey:     apiKey,
	}
}

// FixturesByDate returns every fixture scheduled on the given day
// (YYYY-MM-DD).
func (s *Service) FixturesByDate(ctx context.Context, dateKey string) ([]Fixture, error) {
	var response FixtureResponse
	if err := s.get(ctx, "fixtures", url.Values{"date": {dateKey}}, &response); err != nil {
		return nil, err
	}
	return response.Response, nil
}

// FixtureByID returns a single fixture, or nil when the upstream does not
// know the ID.
func (s *Service) FixtureByID(ctx context.Context, fixtureID int) (*Fixture, error) {
	var response FixtureResponse
	if err := s.get(ctx, "fixtures", url.Values{"id": {strconv.Itoa(fixtureID)}}, &response); err != nil {
		return nil, err
	}
	if len(response.Response) == 0 {
		return nil, nil
	}
	return &response.Response[0], nil
}

// FixturesByIDs returns the current state of the given fixtures keyed by
// fixture ID. IDs absent from the upstream response are simply missing from
// the map; duplicate IDs are harmless. The vendor accepts at most 20 IDs per
// call, so larger sets are chunked.
func (s *Service) FixturesByIDs(ctx context.Context, fixtureIDs []int) (map[int]Fixture, error) {
	seen := make(map[int]bool, len(fixtureIDs))
	var unique []int
	for _, id := range fixtureIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	fixtures := make(map[int]Fixture, len(unique))
	const chunkSize = 20
	for start := 0; start < len(unique); start += chunkSize {
		end := start + chunkSize
		if end > len(unique) {
			end = len(unique)
		}

		parts := make([]string, 0, end-start)
		for _, id := range unique[start:end] {
			parts = append(parts, strconv.Itoa(id))
		}

		var response FixtureResponse
		if err := s.get(ctx, "fixtures", url.Values{"ids": {strings.Join(parts, "-")}}, &response); err != nil {
			return nil, err
		}
		for _, fixture := range response.Response {
			fixtures[fixture.Fixture.ID] = fixture
		}
	}
	return fixtures, nil
}

// Standings returns the table(s) for a league season.
func (s *Service) Standings(ctx context.Context, leagueID, season int) ([]LeagueWrapper, error) {
	params := url.Values{
		"league": {strconv.Itoa(leagueID)},
		"season": {strconv.Itoa(season)},
	}
	var response StandingsResponse
	if err := s.get(ctx, "standings", params, &response); err != nil {
		return nil, err
	}
	return response.Response, nil
}

// TeamSquad returns the current roster of a team.
func (s *Service) TeamSquad(ctx context.Context, teamID int) ([]Squad, error) {
	var response SquadResponse
	if err := s.get(ctx, "players/squads", url.Values{"team": {strconv.Itoa(teamID)}}, &response); err != nil {
		return nil, err
	}
	return response.Response, nil
}

// FixtureOdds returns pre-match odds for a fixture.
func (s *Service) FixtureOdds(ctx context.Context, fixtureID int) ([]Odds, error) {
	var response OddsResponse
	if err := s.get(ctx, "odds", url.Values{"fixture": {strconv.Itoa(fixtureID)}}, &response); err != nil {
		return nil, err
	}
	return response.Response, nil
}

func (s *Service) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	apiURL := fmt.Sprintf("https://%s/%s?%s", s.host, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return xerrors.Errorf("create request for %s: %w", path, err)
	}
	req.Header.Set("x-rapidapi-host", s.host)
	req.Header.Set("x-rapidapi-key", s.apiKey)

	response, err := s.httpClient.Do(req)
	if err != nil {
		return xerrors.Errorf("api-football request %s failed: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return xerrors.Errorf("api-football request %s returned status %d", path, response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return xerrors.Errorf("parse api-football response for %s: %w", path, err)
	}
	return nil
}

package predictions

import (
	"context"
	"log"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/iterator"

	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
	resend "github.com/nabdalmalaeb/score-sync/repos/resend"
)

// Recalculate runs the full scoring pipeline: snapshot fetch, per-fixture
// prediction rescoring, per-user aggregation, leaderboard replace. It is an
// on-demand batch job triggered by an admin; each stage commits as one
// atomic batch, and a failure aborts the run without touching later stages.
// Only one run may be in flight at a time.
func (s *PredictionsService) Recalculate(c *gin.Context) (*RunSummary, error) {
	if !s.recalcMu.TryLock() {
		return nil, ErrRecalculationInProgress
	}
	defer s.recalcMu.Unlock()

	started := time.Now()
	summary, err := s.runPipeline(c)

	report := resend.RunReport{DurationMillis: time.Since(started).Milliseconds()}
	if summary != nil {
		report.PinnedFixtures = summary.PinnedFixtures
		report.FinishedFixtures = summary.FinishedFixtures
		report.UpdatedPredictions = summary.UpdatedPredictions
		report.RankedUsers = summary.RankedUsers
	}
	if err != nil {
		report.Error = err.Error()
	}
	// The report mail outlives the request; it must not be cancelled with it.
	go s.resendService.SendRunReport(context.Background(), report)

	return summary, err
}

func (s *PredictionsService) runPipeline(c *gin.Context) (*RunSummary, error) {
	summary := &RunSummary{}

	pinnedDocs, err := s.firestoreClient.Collection("predictionFixtures").Documents(c).GetAll()
	if err != nil {
		log.Printf("Failed to list pinned fixtures: %v\n", err)
		return nil, err
	}
	summary.PinnedFixtures = len(pinnedDocs)
	if len(pinnedDocs) == 0 {
		return summary, nil
	}

	var fixtureIDs []int
	for _, doc := range pinnedDocs {
		id, err := strconv.Atoi(doc.Ref.ID)
		if err != nil {
			log.Printf("Skipping pinned fixture with non-numeric ID %q\n", doc.Ref.ID)
			continue
		}
		fixtureIDs = append(fixtureIDs, id)
	}

	// Stage 1: authoritative snapshots. An upstream failure aborts the run
	// before any write happens.
	liveFixtures, err := s.apiFootballService.FixturesByIDs(c.Request.Context(), fixtureIDs)
	if err != nil {
		log.Printf("Snapshot fetch failed, aborting recalculation: %v\n", err)
		return nil, err
	}

	var finished []apifootball.Fixture
	for _, fixture := range liveFixtures {
		if apifootball.IsFinished(fixture.Fixture.Status.Short) {
			finished = append(finished, fixture)
		}
	}
	summary.FinishedFixtures = len(finished)

	// Stage 2: rescore predictions on finished fixtures, staging only the
	// documents whose points actually changed.
	updated, err := s.rescoreFinishedFixtures(c, finished)
	if err != nil {
		return nil, err
	}
	summary.UpdatedPredictions = updated

	// Stage 3: per-user totals over all pinned fixtures.
	totals, err := s.aggregateTotals(c, pinnedDocs)
	if err != nil {
		return nil, err
	}

	// Stage 4: resolve profiles and replace the ranking wholesale.
	profiles, err := s.lookupProfiles(c, totals)
	if err != nil {
		return nil, err
	}

	entries := buildLeaderboard(totals, profiles)
	if err := s.writeLeaderboard(c, entries); err != nil {
		return nil, err
	}
	summary.RankedUsers = len(entries)

	return summary, nil
}

func (s *PredictionsService) rescoreFinishedFixtures(c *gin.Context, finished []apifootball.Fixture) (int, error) {
	batch := s.firestoreClient.Batch()
	updated := 0

	for _, fixture := range finished {
		fixtureKey := strconv.Itoa(fixture.Fixture.ID)
		iter := s.firestoreClient.Collection("predictionFixtures").Doc(fixtureKey).Collection("userPredictions").Documents(c)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				log.Printf("Failed to iterate predictions for fixture %s: %v\n", fixtureKey, err)
				return 0, err
			}

			var prediction Prediction
			if err := doc.DataTo(&prediction); err != nil {
				// A malformed prediction is unscoreable, not fatal.
				log.Printf("Skipping malformed prediction %s: %v\n", doc.Ref.Path, err)
				continue
			}

			newPoints := predictionPoints(prediction, fixture)
			if prediction.Points != newPoints {
				batch.Update(doc.Ref, []firestore.Update{{Path: "points", Value: newPoints}})
				updated++
			}
		}
		iter.Stop()
	}

	if updated == 0 {
		return 0, nil
	}
	if _, err := batch.Commit(c); err != nil {
		log.Printf("Failed to commit point updates: %v\n", err)
		return 0, err
	}
	return updated, nil
}

func (s *PredictionsService) aggregateTotals(c *gin.Context, pinnedDocs []*firestore.DocumentSnapshot) (map[string]int, error) {
	totals := make(map[string]int)

	for _, pinnedDoc := range pinnedDocs {
		iter := pinnedDoc.Ref.Collection("userPredictions").Documents(c)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				log.Printf("Failed to iterate predictions for fixture %s: %v\n", pinnedDoc.Ref.ID, err)
				return nil, err
			}

			var prediction Prediction
			if err := doc.DataTo(&prediction); err != nil {
				log.Printf("Skipping malformed prediction %s: %v\n", doc.Ref.Path, err)
				continue
			}
			if prediction.UserID == "" {
				continue
			}
			totals[prediction.UserID] += prediction.Points
		}
		iter.Stop()
	}

	return totals, nil
}

// lookupProfiles resolves display names and photos for every user with
// points. Firestore caps "in" queries at 30 document IDs, so the lookup is
// chunked. Users without a profile document stay absent from the result.
func (s *PredictionsService) lookupProfiles(c *gin.Context, totals map[string]int) (map[string]UserProfile, error) {
	userIDs := make([]string, 0, len(totals))
	for userID := range totals {
		userIDs = append(userIDs, userID)
	}

	profiles := make(map[string]UserProfile, len(userIDs))
	users := s.firestoreClient.Collection("users")

	const chunkSize = 30
	for start := 0; start < len(userIDs); start += chunkSize {
		end := start + chunkSize
		if end > len(userIDs) {
			end = len(userIDs)
		}

		refs := make([]*firestore.DocumentRef, 0, end-start)
		for _, userID := range userIDs[start:end] {
			refs = append(refs, users.Doc(userID))
		}

		docs, err := users.Where(firestore.DocumentID, "in", refs).Documents(c).GetAll()
		if err != nil {
			log.Printf("Failed to look up user profiles: %v\n", err)
			return nil, err
		}
		for _, doc := range docs {
			var profile UserProfile
			if err := doc.DataTo(&profile); err != nil {
				log.Printf("Skipping malformed user profile %s: %v\n", doc.Ref.ID, err)
				continue
			}
			profiles[doc.Ref.ID] = profile
		}
	}

	return profiles, nil
}

// writeLeaderboard replaces the persisted ranking in one batch: rows for
// users absent from the new ranking are deleted, every ranked entry is
// written. The batch either commits fully or leaves the previous ranking
// intact.
func (s *PredictionsService) writeLeaderboard(c *gin.Context, entries []LeaderboardEntry) error {
	leaderboard := s.firestoreClient.Collection("leaderboard")

	oldDocs, err := leaderboard.Documents(c).GetAll()
	if err != nil {
		log.Printf("Failed to read previous leaderboard: %v\n", err)
		return err
	}

	ranked := make(map[string]bool, len(entries))
	for _, entry := range entries {
		ranked[entry.UserID] = true
	}

	batch := s.firestoreClient.Batch()
	staged := false

	for _, doc := range oldDocs {
		if !ranked[doc.Ref.ID] {
			batch.Delete(doc.Ref)
			staged = true
		}
	}

	for _, entry := range entries {
		batch.Set(leaderboard.Doc(entry.UserID), entry)
		staged = true
	}

	if !staged {
		return nil
	}
	if _, err := batch.Commit(c); err != nil {
		log.Printf("Failed to commit leaderboard: %v\n", err)
		return err
	}
	return nil
}

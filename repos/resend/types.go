package resend

// RunReport summarizes one leaderboard recompute run for the report mail.
type RunReport struct {
	PinnedFixtures     int    `json:"pinnedFixtures"`
	FinishedFixtures   int    `json:"finishedFixtures"`
	UpdatedPredictions int    `json:"updatedPredictions"`
	RankedUsers        int    `json:"rankedUsers"`
	DurationMillis     int64  `json:"durationMillis"`
	Error              string `json:"error,omitempty"`
}

// InviteRequest is the payload for requesting an admin invite mail.
type InviteRequest struct {
	Email string `json:"email"`
}

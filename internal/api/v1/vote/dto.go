package vote

// CastVoteInput is the request body for casting a vote.
type CastVoteInput struct {
	VideoID  uint   `json:"video_id" binding:"required"`
	VoteType string `json:"vote_type" binding:"required"`
}

// CastVoteResponse reports the outcome of a successful vote.
type CastVoteResponse struct {
	RewardAmount    float64 `json:"reward_amount"`
	NewBalance      float64 `json:"new_balance"`
	VotesRemaining  int     `json:"votes_remaining"`
	VotingStreak    int     `json:"voting_streak"`
	VotingDaysCount int     `json:"voting_days_count"`
}

package user

import "time"

// UserResponse defines the response structure for user information.
type UserResponse struct {
	ID              uint       `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Balance         float64    `json:"balance"`
	VotingStreak    int        `json:"voting_streak"`
	VotingDaysCount int        `json:"voting_days_count"`
	LastVotedAt     *time.Time `json:"last_voted_at,omitempty"`
	FirstEarnAt     *time.Time `json:"first_earn_at,omitempty"`
	Token           string     `json:"token,omitempty"`
}

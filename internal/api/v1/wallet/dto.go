package wallet

import (
	"cliprewards-backend/internal/models"
	"time"
)

// WithdrawalSummary is the pending withdrawal embedded in the balance
// response, if any.
type WithdrawalSummary struct {
	ID          uint                    `json:"id"`
	Amount      float64                 `json:"amount"`
	Status      models.WithdrawalStatus `json:"status"`
	RequestedAt time.Time               `json:"requested_at"`
}

type BalanceResponse struct {
	Balance             float64            `json:"balance"`
	Eligible            bool               `json:"eligible"`
	AmountUntilEligible float64            `json:"amount_until_eligible"`
	DaysUntilEligible   int                `json:"days_until_eligible"`
	PendingWithdrawal   *WithdrawalSummary `json:"pending_withdrawal,omitempty"`
}

type TransactionItem struct {
	ID          uint                     `json:"id"`
	CreatedAt   time.Time                `json:"created_at"`
	Type        models.TransactionType   `json:"type"`
	Amount      float64                  `json:"amount"`
	Description string                   `json:"description"`
	Status      models.TransactionStatus `json:"status"`
}

type TransactionListResponse struct {
	Transactions []TransactionItem `json:"transactions"`
}

package withdrawal

import (
	"cliprewards-backend/internal/models"
	"time"
)

type WithdrawalListItem struct {
	ID          uint                    `json:"id"`
	UserID      uint                    `json:"user_id"`
	Amount      float64                 `json:"amount"`
	Status      models.WithdrawalStatus `json:"status"`
	RequestedAt time.Time               `json:"requested_at"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
	BankDetails *models.BankDetails     `json:"bank_details,omitempty"`
}

type WithdrawalListResponse struct {
	Withdrawals []WithdrawalListItem `json:"withdrawals"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}

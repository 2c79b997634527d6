package withdrawal

import (
	"cliprewards-backend/internal/models"
	"time"
)

type CreateWithdrawalInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateWithdrawalResponse struct {
	ID uint `json:"id"`
}

type BankDetailsInput struct {
	HolderName    string `json:"holder_name" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	RoutingNumber string `json:"routing_number" binding:"required"`
}

type WithdrawalItem struct {
	ID          uint                    `json:"id"`
	Amount      float64                 `json:"amount"`
	Status      models.WithdrawalStatus `json:"status"`
	RequestedAt time.Time               `json:"requested_at"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
	BankDetails *models.BankDetails     `json:"bank_details,omitempty"`
}

type WithdrawalListResponse struct {
	Withdrawals []WithdrawalItem `json:"withdrawals"`
}

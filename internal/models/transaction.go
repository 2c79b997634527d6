package models

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type TransactionType string

const (
	// TransactionTypeCredit covers vote rewards and any other balance
	// increase. Amounts are always stored positive; the type carries
	// the sign.
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
	// TransactionTypeWithdrawalDebit marks the debit applied when a
	// withdrawal's fee payment is confirmed.
	TransactionTypeWithdrawalDebit TransactionType = "withdrawal_debit"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// IsDebit reports whether t reduces the balance.
func (t TransactionType) IsDebit() bool {
	return t == TransactionTypeDebit || t == TransactionTypeWithdrawalDebit
}

// Transaction is an append-only ledger entry. The credit/debit sum for a
// user must always reconstruct that user's balance (clamped at zero).
type Transaction struct {
	ID            uint              `gorm:"primarykey"`
	CreatedAt     time.Time         `gorm:"precision:3"` // Millisecond precision
	UserID        uint              `gorm:"index;not null"`
	Type          TransactionType   `gorm:"type:varchar(30);index;not null"`
	Amount        float64           `gorm:"type:decimal(12,2);not null"`
	BalanceBefore float64           `gorm:"type:decimal(12,2);not null"`
	BalanceAfter  float64           `gorm:"type:decimal(12,2);not null"`
	Description   string            `gorm:"type:text"`
	Status        TransactionStatus `gorm:"type:varchar(20);not null;default:'completed'"`
	Hash          string            `gorm:"type:varchar(64);default:''"` // HMAC SHA256
}

// GenerateHash generates a tamper-proof hash for the transaction
func (t *Transaction) GenerateHash(secret string) string {
	data := fmt.Sprintf("%d|%d|%s|%.2f|%.2f|%.2f|%s|%s",
		t.UserID, t.CreatedAt.UnixNano(), t.Type, t.Amount,
		t.BalanceBefore, t.BalanceAfter, t.Description, t.Status)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

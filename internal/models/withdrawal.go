package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusCancelled WithdrawalStatus = "cancelled"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

// Terminal reports whether s permits no further transitions.
func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalStatusCompleted || s == WithdrawalStatusCancelled || s == WithdrawalStatusRejected
}

// BankDetails is the payout destination attached to a withdrawal after
// creation. Stored as a JSON sub-document on the withdrawal row.
type BankDetails struct {
	HolderName    string `json:"holder_name"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number"`
}

// Value implements the driver.Valuer interface
func (b *BankDetails) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}

// Scan implements the sql.Scanner interface
func (b *BankDetails) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal BankDetails value:", value))
	}

	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, b)
}

// Withdrawal tracks one payout request through its lifecycle:
// pending -> completed | cancelled | rejected. The amount is frozen at
// request time and only debited when the fee payment is confirmed.
type Withdrawal struct {
	ID          uint             `gorm:"primarykey"`
	UserID      uint             `gorm:"index;not null"`
	Amount      float64          `gorm:"type:decimal(12,2);not null"`
	Status      WithdrawalStatus `gorm:"type:varchar(20);index;not null;default:'pending'"`
	RequestedAt time.Time        `gorm:"not null"`
	CompletedAt *time.Time
	BankDetails *BankDetails `gorm:"type:jsonb"`
}

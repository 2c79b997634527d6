package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds a row-level FOR UPDATE lock to the query so concurrent
// writers on the same row serialize. The sqlite driver used in tests
// drops the clause; sqlite locks at the database level instead.
func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

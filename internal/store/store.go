// Package store owns all SQL issued by the application. Multi-statement
// mutations (registration, booking creation, property delete with its
// booking cascade) each run inside a single transaction, and ownership
// checks happen inside the same transaction as the mutation they guard.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

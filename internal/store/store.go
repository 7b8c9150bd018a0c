// Package store implements the budget aggregation store.
//
// A Store holds all entities of the organization hierarchy and exposes the
// read, write and aggregation operations that API consumers use. It is
// created once and passed to its consumers explicitly.
package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/orgbudget/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Store is the budget aggregation store.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db. db must have been set up with
// models.Connect.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping verifies that the underlying database is reachable.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Ping()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

// transaction runs fn with a Store bound to a database transaction. The
// transaction is rolled back if fn returns an error.
func (s *Store) transaction(fn func(tx *Store) error) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})

	// Errors when starting the transaction do not pass the callbacks
	if err != nil && err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err.Error())
		return models.ErrGeneral
	}

	return err
}

// get returns the record of type T with the given ID.
func get[T any](db *gorm.DB, id uuid.UUID) (T, error) {
	var record T
	err := db.First(&record, "id = ?", id).Error
	return record, err
}

// list returns all records of type T matching the conditions, in the
// specified order. It never returns a nil slice.
func list[T any](db *gorm.DB, order string, conds ...interface{}) ([]T, error) {
	records := make([]T, 0)
	err := db.Order(order).Find(&records, conds...).Error
	if err != nil {
		return []T{}, err
	}

	return records, nil
}

// Package store is the persistence layer: every read and write against
// the relational schema goes through a Store. Entities in the models
// package stay passive; handlers never touch gorm directly.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

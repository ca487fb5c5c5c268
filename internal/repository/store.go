// Package repository implements the persistence interfaces declared by
// the service layer on top of gorm/postgres.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/internal/services"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// asStoreErr maps gorm's record-not-found onto the service-level
// sentinel so callers never import gorm to classify errors.
func asStoreErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}

package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DisplayOrdered sorts ascending by the explicit order column; ties fall back
// to id so repeated reads are deterministic.
func DisplayOrdered(db *gorm.DB) *gorm.DB {
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order("id")
}

// ResolveImage picks the entity image: a locally managed file wins over an
// external URL.
func ResolveImage(local, external *string) *string {
	if local != nil && *local != "" {
		return local
	}
	if external != nil && *external != "" {
		return external
	}
	return nil
}

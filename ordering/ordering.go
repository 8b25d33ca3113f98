// Package ordering implements the bulk "set order" operation shared by every
// orderable catalog entity.
package ordering

import (
	"fmt"

	"gorm.io/gorm"
)

// UnknownIDError reports the first id in a reorder request that matched no
// row. The whole operation is rolled back when it occurs.
type UnknownIDError struct {
	ID uint
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown id %d in reorder request", e.ID)
}

// Apply sets each row's order column to its zero-based position in ids,
// inside a single transaction. Rows not mentioned keep their previous order.
// Applying the same list twice yields the same final state.
func Apply(db *gorm.DB, model any, ids []uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			res := tx.Model(model).Where("id = ?", id).Update("order", index)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &UnknownIDError{ID: id}
			}
		}
		return nil
	})
}

// Package repository persists entities with gorm. Lookups return (nil, nil) when the
// record does not exist; callers decide whether absence is an error.
package repository

import (
	"errors"

	"ordereat-api/query"

	"gorm.io/gorm"
)

func firstOrNil[T any](tx *gorm.DB, conds ...any) (*T, error) {
	var out T
	err := tx.First(&out, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// applyPhrase filters name/description by a case-insensitive substring.
func applyPhrase(tx *gorm.DB, table string, spec query.Spec) *gorm.DB {
	if spec.Phrase == "" {
		return tx
	}
	pattern := spec.LikePattern()
	escape := " ESCAPE '" + query.LikeEscape + "'"
	return tx.Where(
		"(LOWER("+table+".name) LIKE ?"+escape+" OR LOWER("+table+".description) LIKE ?"+escape+")",
		pattern, pattern,
	)
}

func applyWindow(tx *gorm.DB, table string, spec query.Spec) *gorm.DB {
	tx = tx.Order(spec.OrderClause(table + "."))
	if spec.Limit > 0 {
		tx = tx.Offset(spec.Offset).Limit(spec.Limit)
	}
	return tx
}

package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// storeOrder is the order records were written in. Read helpers never sort
// by anything else.
const storeOrder = "created_at ASC, id ASC"

func listAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).Order(storeOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere in a column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

const insertBatchSize = 100

func insertAll[T any](ctx context.Context, db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error
}

// deleteAll hard-deletes every row of T, soft-deleted ones included.
func deleteAll[T any](ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(new(T)).Error
}

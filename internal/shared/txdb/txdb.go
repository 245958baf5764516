// Package txdb lets gorm repositories join a transaction opened by a service
// through database/sql.
package txdb

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a gorm session bound to ctx. When tx is non-nil every statement
// issued through the session runs on tx, so commit and rollback stay with the
// caller that opened it.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.WithContext(ctx)
	if tx != nil {
		session.Statement.ConnPool = tx
	}
	return session
}

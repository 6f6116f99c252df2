package service

import (
	"database/sql"

	"gorm.io/gorm"
)

// txRunner runs a function inside a database transaction.
// *gorm.DB satisfies it directly.
type txRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

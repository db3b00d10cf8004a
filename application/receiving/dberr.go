package receiving

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isLockWaitTimeout reports whether err is MySQL's lock-wait-timeout
// (error 1205): another submission held the row lock past
// innodb_lock_wait_timeout. Retryable by the caller, unlike a plain
// internal failure.
func isLockWaitTimeout(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1205
}

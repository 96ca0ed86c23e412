package repositories

import (
	"errors"

	sqldriver "github.com/go-sql-driver/mysql"
)

// ErrEntryNotFound is returned when a room booking references an entry id
// that is not in the Entries table.
var ErrEntryNotFound = errors.New("entry not found")

// MySQL ER_NO_REFERENCED_ROW_2: insert violates a foreign key constraint.
const mysqlErrForeignKey = 1452

func isForeignKeyViolation(err error) bool {
	var myErr *sqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlErrForeignKey
}

package mysql

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	errNumDuplicateEntry   = 1062
	errNumNoReferencedRow  = 1452
	errNumNoReferencedRow2 = 1216
)

// classifyError maps storage errors onto domain kinds.
// A unique violation becomes domain.ErrConflict, a missing parent row becomes a not found
// error carrying notFoundMessage. Anything else is returned unchanged.
func classifyError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &domain.Error{Kind: domain.ErrConflict}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewNotFoundError(notFoundMessage)
	}

	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case errNumDuplicateEntry:
			return &domain.Error{Kind: domain.ErrConflict}
		case errNumNoReferencedRow, errNumNoReferencedRow2:
			return domain.NewNotFoundError(notFoundMessage)
		}
	}
	return err
}

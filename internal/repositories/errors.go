package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/promco/backend/internal/models"
)

// mysqlDuplicateEntry is the server error number for a unique key violation
const mysqlDuplicateEntry = 1062

// mapDBError translates driver level failures into the shared error kinds.
// An expired ctx makes any failure unavailable since drivers report cancellation differently.
func mapDBError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%w: %w", models.ErrAlreadyExists, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", models.ErrUnavailable, err)
	}

	return err
}

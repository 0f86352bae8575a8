package repo

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
	"gorm.io/gorm"
)

// translateGormError maps a foreign key failure onto fkErr and a missing row onto
// notFound. Anything else is returned untouched.
func translateGormError(err, fkErr, notFound error) error {
	switch {
	case err == nil:
		return nil
	case fkErr != nil && errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", fkErr, err)
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	}
	return err
}

func isSpannerNotFound(err error) bool {
	return spanner.ErrCode(err) == codes.NotFound
}

// isSpannerForeignKeyViolation reports whether the commit was rejected by a
// foreign key constraint. Spanner signals these as FailedPrecondition.
func isSpannerForeignKeyViolation(err error) bool {
	if spanner.ErrCode(err) != codes.FailedPrecondition {
		return false
	}
	return strings.Contains(strings.ToLower(spanner.ErrDesc(err)), "foreign key")
}

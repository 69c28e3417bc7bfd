// Package pgerr translates Postgres integrity violations into domain errors.
package pgerr

import (
	"errors"
	"strings"

	"parceltracker/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// Rule binds a constraint to the field it guards. A rule applies when the
// violated constraint name contains Column.
type Rule struct {
	Column string
	Kind   string
	Field  string
	Value  any
}

// Translate maps unique violations to errs.DuplicateError and foreign key
// violations to errs.ObjectNotFoundError. Errors without a matching rule are
// returned unchanged.
func Translate(err error, rules ...Rule) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	constraint := strings.ToLower(pgErr.ConstraintName)
	for _, rule := range rules {
		if !strings.Contains(constraint, strings.ToLower(rule.Column)) {
			continue
		}
		switch pgErr.Code {
		case UniqueViolation:
			return errs.NewDuplicateErrorWithCause(rule.Kind, rule.Field, rule.Value, err)
		case ForeignKeyViolation:
			return errs.NewObjectNotFoundErrorWithCause(rule.Kind, rule.Field, rule.Value, err)
		}
	}
	return err
}

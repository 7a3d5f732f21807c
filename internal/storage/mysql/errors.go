package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"bizreviews/internal/adapters/observability"
	"bizreviews/internal/domain"
)

// MySQL server error numbers for the constraints declared in sql.go.
// NB: ck_stars enforces 0-5 inclusive (not the 1-5 a star rating suggests);
// handlers rely on the CHECK as the contract.
const (
	errDupEntry        = 1062 // uq_user_business
	errNoReferencedRow = 1452 // fk_reviews_business
	errCheckViolated   = 3819 // ck_stars
)

// classify wraps driver constraint failures in *domain.ConstraintError so
// handlers never inspect driver error numbers or text themselves. Anything
// that is not a recognized constraint failure passes through unchanged.
func classify(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	var kind domain.ConstraintKind
	switch me.Number {
	case errDupEntry:
		kind = domain.ConstraintUnique
	case errNoReferencedRow:
		kind = domain.ConstraintForeignKey
	case errCheckViolated:
		kind = domain.ConstraintCheck
	default:
		return err
	}
	observability.ObserveConstraint(kind.String())
	return &domain.ConstraintError{Kind: kind, Err: err}
}

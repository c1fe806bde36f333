//go:build unit

package commands_test

import (
	"swim-academy-api/internal/infra"
)

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
}

func dbFailureErr() error {
	return infra.WrapRepoErr("db failure", nil, infra.KindDBFailure)
}

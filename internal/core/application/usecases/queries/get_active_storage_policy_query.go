package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/pkg/guard"
)

var (
	ErrGetActiveStoragePolicyQueryIsNotConstructed = errors.New(
		"GetActiveStoragePolicyQuery must be created via NewGetActiveStoragePolicyQuery constructor",
	)
)

// GetActiveStoragePolicyQuery reads the storage policy currently in force.
type GetActiveStoragePolicyQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveStoragePolicyQuery() GetActiveStoragePolicyQuery {
	return GetActiveStoragePolicyQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveStoragePolicyQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveStoragePolicyQueryIsNotConstructed)
}

type GetActiveStoragePolicyQueryResponse struct {
	ID        kernel.UUID
	Version   int
	Terms     storagepolicy.Terms
	CreatedAt time.Time
}

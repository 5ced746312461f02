package commands

import (
	"context"
	"time"

	"forwarding/internal/core/domain/model/storagepolicy"
	"forwarding/internal/core/ports"
)

// CreateStoragePolicyCommandHandler stores the next policy version.
type CreateStoragePolicyCommandHandler struct {
	uowFactory StoragePolicyUoWFactory
}

func NewCreateStoragePolicyCommandHandler(uowFactory StoragePolicyUoWFactory) CreateStoragePolicyCommandHandler {
	return CreateStoragePolicyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the version number assigned to the new policy.
func (h *CreateStoragePolicyCommandHandler) Handle(ctx context.Context, cmd CreateStoragePolicyCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	policyRepo := uow.StoragePolicyRepository()

	if err := policyRepo.LockForAdministration(ctx); err != nil {
		return 0, err
	}

	latest, err := policyRepo.LatestVersion(ctx)
	if err != nil {
		return 0, err
	}

	policy, err := storagepolicy.NewStoragePolicy(cmd.PolicyID(), latest+1, cmd.Terms(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if cmd.Activate() {
		if err = retireActivePolicies(ctx, policyRepo, policy); err != nil {
			return 0, err
		}
		policy.Activate()
	}

	if err = policyRepo.Add(ctx, policy); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return policy.Version(), nil
}

// retireActivePolicies deactivates every active policy other than next, so
// that exactly one policy is active once next is activated.
func retireActivePolicies(
	ctx context.Context,
	repo ports.StoragePolicyRepository,
	next *storagepolicy.StoragePolicy,
) error {
	active, err := repo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, p := range active {
		if p.ID().IsEqual(next.ID()) {
			continue
		}
		p.Deactivate()
		if err = repo.Update(ctx, p); err != nil {
			return err
		}
	}

	return nil
}

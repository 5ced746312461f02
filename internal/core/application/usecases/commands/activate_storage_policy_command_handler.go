package commands

import (
	"context"
)

// ActivateStoragePolicyCommandHandler switches the active policy. The
// previous policy is deactivated in the same transaction, so readers never
// observe zero or two active policies. Writers hold the administration lock,
// so concurrent activations apply one after another.
type ActivateStoragePolicyCommandHandler struct {
	uowFactory StoragePolicyUoWFactory
}

func NewActivateStoragePolicyCommandHandler(uowFactory StoragePolicyUoWFactory) ActivateStoragePolicyCommandHandler {
	return ActivateStoragePolicyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ActivateStoragePolicyCommandHandler) Handle(ctx context.Context, cmd ActivateStoragePolicyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	policyRepo := uow.StoragePolicyRepository()

	if err := policyRepo.LockForAdministration(ctx); err != nil {
		return err
	}

	policy, err := policyRepo.Get(ctx, cmd.PolicyID())
	if err != nil {
		return err
	}

	if err = retireActivePolicies(ctx, policyRepo, policy); err != nil {
		return err
	}

	if !policy.IsActive() {
		policy.Activate()
		if err = policyRepo.Update(ctx, policy); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

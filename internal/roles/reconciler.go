package roles

import (
	"context"

	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/providers/discord"
)

// Delta is the role change computed by one reconciliation.
// Added and Removed hold the whole computed delta; Failed holds the mutations that did not apply.
type Delta struct {
	Added   domain.RoleSet `json:"added"`
	Removed domain.RoleSet `json:"removed"`
	Failed  domain.RoleSet `json:"failed"`
}

// Empty reports whether nothing had to change
func (d *Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Reconciler converges the live roles of a user to the roles targeted by their holdings
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// Reconcile diffs live and target roles, restricted to the managed roles, and applies the delta
	// with one call per role. Mutation failures are logged and reported in Delta.Failed.
	Reconcile(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot) (*Delta, error)

	// Grant applies only the additions of the delta. It is used when the snapshot may be
	// missing holdings, so an unread wallet never costs the user a role.
	Grant(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot) (*Delta, error)
}

type reconciler struct {
	policy   *Policy
	identity discord.IdentityService
}

// NewReconciler creates a reconciler
func NewReconciler(policy *Policy, identity discord.IdentityService) Reconciler {
	return &reconciler{policy: policy, identity: identity}
}

// Reconcile converges the live roles of userID
func (r *reconciler) Reconcile(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot) (*Delta, error) {
	return r.reconcile(ctx, userID, snapshot, true)
}

// Grant adds the missing target roles of userID and leaves every other role in place
func (r *reconciler) Grant(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot) (*Delta, error) {
	return r.reconcile(ctx, userID, snapshot, false)
}

func (r *reconciler) reconcile(ctx context.Context, userID domain.UserID, snapshot *domain.HoldingsSnapshot, withRemovals bool) (*Delta, error) {
	live, err := r.identity.GetMemberRoles(ctx, userID)
	if err != nil {
		return nil, err
	}

	var balance uint64
	if snapshot != nil {
		balance = snapshot.FungibleBalance
	}

	managed := r.policy.ManagedRoles()
	target := r.policy.TargetRoles(snapshot, balance).Intersect(managed)
	liveManaged := live.Intersect(managed)

	delta := &Delta{
		Added:   target.Minus(liveManaged),
		Removed: domain.NewRoleSet(),
		Failed:  domain.NewRoleSet(),
	}
	if withRemovals {
		delta.Removed = liveManaged.Minus(target)
	}
	if delta.Empty() {
		return delta, nil
	}

	for _, roleID := range delta.Removed.Sorted() {
		if err := r.identity.RemoveRole(ctx, userID, roleID); err != nil {
			logger.WarnCtx(ctx, "Failed to remove role", logger.User(userID), logger.Role(roleID), zap.Error(err))
			delta.Failed.Add(roleID)
		}
	}
	for _, roleID := range delta.Added.Sorted() {
		if err := r.identity.AddRole(ctx, userID, roleID); err != nil {
			logger.WarnCtx(ctx, "Failed to add role", logger.User(userID), logger.Role(roleID), zap.Error(err))
			delta.Failed.Add(roleID)
		}
	}

	logger.InfoCtx(ctx, "Roles reconciled",
		logger.User(userID),
		zap.String("added", delta.Added.String()),
		zap.String("removed", delta.Removed.String()),
		zap.String("failed", delta.Failed.String()),
		zap.Bool("additions_only", !withRemovals))

	return delta, nil
}

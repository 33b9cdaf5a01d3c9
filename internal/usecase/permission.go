package usecase

import (
	"context"

	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"
)

// requirePermission is the gate in front of every mutating operation: the
// request must carry a resolved user, and its role must be allowed for the
// operation. Missing context values fail safe.
func requirePermission(ctx context.Context, op domain.Operation) error {
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || userID == 0 {
		return apperror.Unauthorized("Non authentifié")
	}

	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if !domain.Allowed(op, role) {
		return apperror.Forbidden("Permission refusée. Seuls les Admin et RH peuvent effectuer cette action.")
	}

	return nil
}

// requireSession only checks that a user is authenticated, without any role
// restriction.
func requireSession(ctx context.Context) error {
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || userID == 0 {
		return apperror.Unauthorized("Non authentifié")
	}
	return nil
}

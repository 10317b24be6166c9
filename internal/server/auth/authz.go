package auth

import "github.com/akondrashov/stash/internal/common"

// AuthorizeOwner is the single mutation rule: an actor may mutate a
// resource only if it is the recorded owner. Callers must handle missing
// resources before this check, so "not found" never degrades into
// "forbidden". Returns common.ErrorForbidden on mismatch.
func AuthorizeOwner(actorID, ownerID string) error {
	if actorID != ownerID {
		return common.ErrorForbidden
	}
	return nil
}

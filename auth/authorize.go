package auth

import (
	"slices"

	"huddle/errors"
)

// RequireTeamMember rejects callers whose token does not list the team.
// Mutations call this before touching any document.
func RequireTeamMember(claims *CustomClaims, teamID string) error {
	if claims == nil || !slices.Contains(claims.TeamIDs, teamID) {
		return errors.ErrNotTeamMember
	}
	return nil
}

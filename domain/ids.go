package domain

import "strings"

// idSeparator joins the parts of composite identifiers such as
// "userId::teamId" (team members) and "meetingId::projectId" (snapshots).
const idSeparator = "::"

func CompositeID(left, right string) string {
	return left + idSeparator + right
}

// SplitCompositeID returns both halves of a composite id. A plain id comes
// back unchanged with an empty second half.
func SplitCompositeID(id string) (string, string) {
	left, right, _ := strings.Cut(id, idSeparator)
	return left, right
}

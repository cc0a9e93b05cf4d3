package service

import (
	"strings"

	apperrors "skillswap/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID converts a hex string from a path or body parameter.
func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	return objectID, nil
}

// normalizeSkill lower-cases and trims a skill name so lookups and the
// pending-duplicate index compare consistently.
func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// normalizeSkills normalizes a skill list, dropping empties.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := normalizeSkill(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// containsSkill reports whether any listed skill contains the normalized
// skill as a case-insensitive substring, so a provider offering
// "python programming" matches a request for "python".
func containsSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if strings.Contains(normalizeSkill(s), skill) {
			return true
		}
	}
	return false
}

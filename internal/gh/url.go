package gh

import (
	"strings"

	apperrors "github.com/Rejzi-dich/RytonStore/internal/errors"
)

// ParseRepoURL extracts the owner and repository name from a GitHub URL.
// It splits the URL on "/", locates the "github.com" segment and takes the
// two following segments. Anything else cannot be resolved.
func ParseRepoURL(raw string) (owner, repo string, err error) {
	parts := strings.Split(strings.Trim(raw, "/"), "/")

	idx := -1
	for i, part := range parts {
		if part == "github.com" {
			idx = i
			break
		}
	}
	if idx == -1 || idx+2 >= len(parts) {
		return "", "", apperrors.NewCannotResolveError(raw)
	}

	owner = parts[idx+1]
	repo = parts[idx+2]
	if owner == "" || repo == "" {
		return "", "", apperrors.NewCannotResolveError(raw)
	}
	return owner, repo, nil
}

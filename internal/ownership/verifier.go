package ownership

import (
	"context"
	"strings"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
	"github.com/Rejzi-dich/RytonStore/internal/gh"
)

// OrgLister is the slice of the GitHub client the verifier depends on
type OrgLister interface {
	ListUserOrgs(ctx context.Context, token string) ([]string, error)
}

// Verifier decides whether an authenticated identity may claim a repository
type Verifier struct {
	github OrgLister
}

// NewVerifier creates a new ownership verifier
func NewVerifier(github OrgLister) *Verifier {
	return &Verifier{github: github}
}

// Owns reports whether the identity owns the repository behind the URL,
// either directly or through organization membership. An unresolvable URL or
// a missing identity is never owned. Organization membership is re-fetched on
// every call; nothing is cached.
func (v *Verifier) Owns(ctx context.Context, identity *domain.Identity, repoURL string) (bool, error) {
	if identity == nil || identity.AccessToken == "" {
		return false, nil
	}

	owner, _, err := gh.ParseRepoURL(repoURL)
	if err != nil {
		return false, nil
	}

	if strings.EqualFold(owner, identity.Login) {
		return true, nil
	}

	orgs, err := v.github.ListUserOrgs(ctx, identity.AccessToken)
	if err != nil {
		return false, err
	}
	for _, org := range orgs {
		if strings.EqualFold(org, owner) {
			return true, nil
		}
	}
	return false, nil
}

package gh

import (
	"context"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
)

// DefaultReviewLimit caps the number of review issues fetched per repository
const DefaultReviewLimit = 10

// Client defines the interface for reading catalog data from GitHub
type Client interface {
	// FetchRepoInfo resolves a repository URL into normalized metadata.
	// The repository metadata call must succeed; release, owner profile and
	// topics are independent lookups that degrade to empty values.
	FetchRepoInfo(ctx context.Context, repoURL string) (*domain.RepoInfo, error)

	// FetchReviews lists issues labeled "review" on the repository, newest
	// first, capped at limit (DefaultReviewLimit when limit <= 0). Any
	// transport or status failure yields an empty list, never an error.
	FetchReviews(ctx context.Context, owner, repo string, limit int) []domain.Review

	// ListAccessibleRepos returns the token holder's repositories plus the
	// repositories of every organization they belong to, sorted by stars
	ListAccessibleRepos(ctx context.Context, token string) ([]domain.RepoSummary, error)

	// ListUserOrgs returns the logins of the token holder's organizations
	ListUserOrgs(ctx context.Context, token string) ([]string, error)

	// FetchAuthenticatedUser returns the profile behind an access token
	FetchAuthenticatedUser(ctx context.Context, token string) (*domain.Identity, error)
}

package gh

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
	apperrors "github.com/Rejzi-dich/RytonStore/internal/errors"
)

// displayDateFormat is the day/month/year form used for all stored dates
const displayDateFormat = "02 Jan 2006"

// githubClient implements Client using the GitHub REST API
type githubClient struct {
	// serverToken raises the rate limit on unauthenticated catalog reads.
	// Empty means the default unauthenticated limit applies.
	serverToken string

	// baseURL overrides the GitHub API endpoint in tests. Must end in "/".
	baseURL string
}

// NewClient creates a new GitHub client. token may be empty.
func NewClient(token string) Client {
	return &githubClient{serverToken: token}
}

// api builds a go-github client authenticated with the given token,
// or an anonymous one when the token is empty.
func (c *githubClient) api(ctx context.Context, token string) *github.Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}
	client := github.NewClient(hc)
	if c.baseURL != "" {
		if u, err := url.Parse(c.baseURL); err == nil {
			client.BaseURL = u
		}
	}
	return client
}

// FetchRepoInfo resolves a repository URL into normalized metadata
func (c *githubClient) FetchRepoInfo(ctx context.Context, repoURL string) (*domain.RepoInfo, error) {
	owner, name, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	client := c.api(ctx, c.serverToken)

	repo, resp, err := client.Repositories.Get(ctx, owner, name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("repository %s/%s", owner, name))
		}
		return nil, apperrors.NewUnavailableError(fmt.Sprintf("failed to fetch repository %s/%s", owner, name), err)
	}

	info := &domain.RepoInfo{
		Name:        repo.GetName(),
		Description: repo.GetDescription(),
		GitHubURL:   repoURL,
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Watchers:    repo.GetWatchersCount(),
		Language:    repo.GetLanguage(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		CreatedAt:   formatTimestamp(repo.GetCreatedAt()),
		UpdatedAt:   formatTimestamp(repo.GetUpdatedAt()),
	}
	if info.Name == "" {
		info.Name = name
	}

	info.Release = c.latestRelease(ctx, client, owner, name)
	info.Owner = c.ownerProfile(ctx, client, repo, owner)

	// Separate topics call; absent or failing topics degrade to none
	if topics, _, err := client.Repositories.ListAllTopics(ctx, owner, name); err == nil {
		info.AllTopics = topics
		info.Topics = domain.FilterTopics(topics)
	}

	return info, nil
}

// latestRelease fetches the latest release, degrading to empty fields when
// the repository has none or the call fails
func (c *githubClient) latestRelease(ctx context.Context, client *github.Client, owner, name string) domain.Release {
	release, _, err := client.Repositories.GetLatestRelease(ctx, owner, name)
	if err != nil {
		return domain.Release{PublishedAt: "N/A"}
	}

	return domain.Release{
		Version:     release.GetTagName(),
		PublishedAt: formatTimestamp(release.GetPublishedAt()),
		DownloadURL: selectPackageAsset(release.Assets),
		Notes:       release.GetBody(),
	}
}

// ownerProfile fetches the repo owner's profile, falling back to the avatar
// embedded in the repository payload when the user lookup fails
func (c *githubClient) ownerProfile(ctx context.Context, client *github.Client, repo *github.Repository, owner string) domain.Owner {
	profile := domain.Owner{
		Login:  owner,
		Status: domain.DeveloperStatus(owner),
	}

	user, _, err := client.Users.Get(ctx, owner)
	if err == nil {
		profile.AvatarURL = user.GetAvatarURL()
		profile.Name = user.GetName()
		profile.Bio = user.GetBio()
		return profile
	}
	if repo.GetOwner() != nil {
		profile.AvatarURL = repo.GetOwner().GetAvatarURL()
	}
	return profile
}

// selectPackageAsset picks the first release asset carrying a Ryton package
// archive (.ryx). No such asset means no download URL.
func selectPackageAsset(assets []*github.ReleaseAsset) string {
	for _, asset := range assets {
		if strings.HasSuffix(asset.GetName(), ".ryx") {
			return asset.GetBrowserDownloadURL()
		}
	}
	return ""
}

// FetchReviews lists review issues for a repository, newest first
func (c *githubClient) FetchReviews(ctx context.Context, owner, repo string, limit int) []domain.Review {
	if limit <= 0 {
		limit = DefaultReviewLimit
	}

	client := c.api(ctx, c.serverToken)
	opts := &github.IssueListByRepoOptions{
		Labels:    []string{"review"},
		State:     "all",
		Sort:      "created",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: limit,
		},
	}

	issues, _, err := client.Issues.ListByRepo(ctx, owner, repo, opts)
	if err != nil {
		return nil
	}

	reviews := make([]domain.Review, 0, len(issues))
	for _, issue := range issues {
		if len(reviews) == limit {
			break
		}

		created := ""
		if ts := issue.GetCreatedAt(); !ts.IsZero() {
			created = ts.Format(displayDateFormat)
		}

		state := issue.GetState()
		if state == "" {
			state = "open"
		}

		reviews = append(reviews, domain.Review{
			Title:        strings.TrimPrefix(issue.GetTitle(), "Review: "),
			Body:         issue.GetBody(),
			Author:       issue.GetUser().GetLogin(),
			AuthorAvatar: issue.GetUser().GetAvatarURL(),
			CreatedAt:    created,
			URL:          issue.GetHTMLURL(),
			State:        state,
		})
	}
	return reviews
}

// ListAccessibleRepos returns the token holder's repositories plus org repos
func (c *githubClient) ListAccessibleRepos(ctx context.Context, token string) ([]domain.RepoSummary, error) {
	client := c.api(ctx, token)

	opts := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	repos, _, err := client.Repositories.List(ctx, "", opts)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to list user repositories", err)
	}

	// Org repos are additive; a failing org lookup only narrows the result
	if orgs, _, err := client.Organizations.List(ctx, "", nil); err == nil {
		for _, org := range orgs {
			orgOpts := &github.RepositoryListByOrgOptions{
				ListOptions: github.ListOptions{PerPage: 100},
			}
			orgRepos, _, err := client.Repositories.ListByOrg(ctx, org.GetLogin(), orgOpts)
			if err != nil {
				continue
			}
			repos = append(repos, orgRepos...)
		}
	}

	summaries := make([]domain.RepoSummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, domain.RepoSummary{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			HTMLURL:     repo.GetHTMLURL(),
			Stars:       repo.GetStargazersCount(),
			Language:    repo.GetLanguage(),
			Owner:       repo.GetOwner().GetLogin(),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Stars > summaries[j].Stars
	})
	return summaries, nil
}

// ListUserOrgs returns the logins of the token holder's organizations
func (c *githubClient) ListUserOrgs(ctx context.Context, token string) ([]string, error) {
	client := c.api(ctx, token)

	orgs, _, err := client.Organizations.List(ctx, "", nil)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to list organizations", err)
	}

	logins := make([]string, 0, len(orgs))
	for _, org := range orgs {
		logins = append(logins, org.GetLogin())
	}
	return logins, nil
}

// FetchAuthenticatedUser returns the profile behind an access token
func (c *githubClient) FetchAuthenticatedUser(ctx context.Context, token string) (*domain.Identity, error) {
	client := c.api(ctx, token)

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("failed to fetch GitHub profile")
	}

	return &domain.Identity{
		GitHubID:    user.GetID(),
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		AccessToken: token,
	}, nil
}

// formatTimestamp renders a GitHub timestamp in the display form used across
// the catalog. Missing timestamps become "N/A".
func formatTimestamp(ts github.Timestamp) string {
	if ts.IsZero() {
		return "N/A"
	}
	return ts.Format(displayDateFormat)
}

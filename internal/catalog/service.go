package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
	apperrors "github.com/Rejzi-dich/RytonStore/internal/errors"
	"github.com/Rejzi-dich/RytonStore/internal/gh"
	"github.com/Rejzi-dich/RytonStore/internal/storage"
)

// OwnershipVerifier decides whether an identity may claim a repository URL
type OwnershipVerifier interface {
	Owns(ctx context.Context, identity *domain.Identity, repoURL string) (bool, error)
}

// Service orchestrates the package catalog: submissions, metadata refreshes,
// search and per-tag aggregation
type Service struct {
	store    storage.Store
	github   gh.Client
	verifier OwnershipVerifier
}

// NewService creates a new catalog service
func NewService(store storage.Store, github gh.Client, verifier OwnershipVerifier) *Service {
	return &Service{
		store:    store,
		github:   github,
		verifier: verifier,
	}
}

// Add verifies ownership of the submitted repository, fetches its metadata
// and appends a new record to the catalog
func (s *Service) Add(ctx context.Context, identity *domain.Identity, githubURL string) (*domain.Package, error) {
	if identity == nil {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	owned, err := s.verifier.Owns(ctx, identity, githubURL)
	if err != nil || !owned {
		return nil, apperrors.NewForbiddenError("you can only add repositories that belong to you or your organizations")
	}

	info, err := s.github.FetchRepoInfo(ctx, githubURL)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid GitHub repository")
	}

	pkg := domain.Package{
		ID:           uuid.New().String(),
		Name:         info.Name,
		Description:  info.Description,
		GitHubURL:    githubURL,
		Stars:        info.Stars,
		Forks:        info.Forks,
		Watchers:     info.Watchers,
		Language:     info.Language,
		OpenIssues:   info.OpenIssues,
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
		Topics:       info.Topics,
		AllTopics:    info.AllTopics,
		Owner:        info.Owner,
		Version:      info.Release.Version,
		DownloadURL:  info.Release.DownloadURL,
		PublishedAt:  info.Release.PublishedAt,
		ReleaseNotes: info.Release.Notes,
		SubmittedBy:  identity.Login,
	}

	packages, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load catalog", err)
	}

	packages = append(packages, pkg)
	if err := s.store.SaveAll(ctx, packages); err != nil {
		return nil, apperrors.NewInternalError("failed to persist catalog", err)
	}
	return &pkg, nil
}

// Search returns packages whose name or description contains the query,
// case-insensitively. An empty query returns the whole catalog in store order.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Package, error) {
	packages, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load catalog", err)
	}
	if query == "" {
		return packages, nil
	}

	q := strings.ToLower(query)
	matched := make([]domain.Package, 0, len(packages))
	for _, pkg := range packages {
		if strings.Contains(strings.ToLower(pkg.Name), q) ||
			strings.Contains(strings.ToLower(pkg.Description), q) {
			matched = append(matched, pkg)
		}
	}
	return matched, nil
}

// Get returns the package at the given catalog index
func (s *Service) Get(ctx context.Context, index int) (*domain.Package, error) {
	packages, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load catalog", err)
	}
	if index < 0 || index >= len(packages) {
		return nil, apperrors.NewNotFoundError("package")
	}
	pkg := packages[index]
	return &pkg, nil
}

// GetFresh returns the package at the given index after a blocking refetch
// of its GitHub metadata, together with its review issues. The refreshed
// record is persisted before returning.
func (s *Service) GetFresh(ctx context.Context, index int) (*domain.Package, []domain.Review, error) {
	packages, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, nil, apperrors.NewInternalError("failed to load catalog", err)
	}
	if index < 0 || index >= len(packages) {
		return nil, nil, apperrors.NewNotFoundError("package")
	}

	packages[index], _ = s.refreshFromGitHub(ctx, packages[index])
	if err := s.store.SaveAll(ctx, packages); err != nil {
		return nil, nil, apperrors.NewInternalError("failed to persist catalog", err)
	}

	pkg := packages[index]
	var reviews []domain.Review
	if owner, repo, err := gh.ParseRepoURL(pkg.GitHubURL); err == nil {
		reviews = s.github.FetchReviews(ctx, owner, repo, gh.DefaultReviewLimit)
	}
	return &pkg, reviews, nil
}

// Refresh re-fetches one package on behalf of a caller, enforcing the update
// permission: only the repo owner or the original submitter may refresh
func (s *Service) Refresh(ctx context.Context, index int, identity *domain.Identity) (*domain.Package, error) {
	if identity == nil {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	packages, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load catalog", err)
	}
	if index < 0 || index >= len(packages) {
		return nil, apperrors.NewNotFoundError("package")
	}

	if !s.CanUpdate(&packages[index], identity) {
		return nil, apperrors.NewForbiddenError("you don't have permission to update this package")
	}

	packages[index], _ = s.refreshFromGitHub(ctx, packages[index])
	if err := s.store.SaveAll(ctx, packages); err != nil {
		return nil, apperrors.NewInternalError("failed to persist catalog", err)
	}

	pkg := packages[index]
	return &pkg, nil
}

// RefreshAll re-fetches every package in index order, persists once, and
// reports how many records actually changed
func (s *Service) RefreshAll(ctx context.Context) (int, error) {
	packages, err := s.store.LoadAll(ctx)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to load catalog", err)
	}

	updated := 0
	for i := range packages {
		refreshed, changed := s.refreshFromGitHub(ctx, packages[i])
		packages[i] = refreshed
		if changed {
			updated++
		}
	}

	if err := s.store.SaveAll(ctx, packages); err != nil {
		return 0, apperrors.NewInternalError("failed to persist catalog", err)
	}
	return updated, nil
}

// TagCounts aggregates topic occurrences across the catalog, ordered by
// descending count. Ties keep the order in which tags were first seen.
func (s *Service) TagCounts(ctx context.Context) ([]domain.TagCount, error) {
	packages, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load catalog", err)
	}

	counts := make(map[string]int)
	var order []string
	for _, pkg := range packages {
		for _, topic := range pkg.Topics {
			if counts[topic] == 0 {
				order = append(order, topic)
			}
			counts[topic]++
		}
	}

	tags := make([]domain.TagCount, 0, len(order))
	for _, tag := range order {
		tags = append(tags, domain.TagCount{Tag: tag, Count: counts[tag]})
	}
	sortTagsByCount(tags)
	return tags, nil
}

// BySubmitter returns the caller's packages (owned or submitted), each
// annotated with its catalog index
func (s *Service) BySubmitter(ctx context.Context, identity *domain.Identity) ([]domain.IndexedPackage, error) {
	if identity == nil {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	packages, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load catalog", err)
	}

	var mine []domain.IndexedPackage
	for i, pkg := range packages {
		if pkg.Owner.Login == identity.Login || pkg.SubmittedBy == identity.Login {
			mine = append(mine, domain.IndexedPackage{Index: i, Package: pkg})
		}
	}
	return mine, nil
}

// CanUpdate reports whether the identity may refresh the given package
func (s *Service) CanUpdate(pkg *domain.Package, identity *domain.Identity) bool {
	if identity == nil {
		return false
	}
	return pkg.Owner.Login == identity.Login || pkg.SubmittedBy == identity.Login
}

// refreshFromGitHub re-fetches a package's repository and overwrites only the
// GitHub-derived fields, leaving ID, name, description, topics and
// submitted_by untouched. A failed fetch passes the record through unchanged.
// The changed flag comes from a per-field diff of the overwritten fields.
func (s *Service) refreshFromGitHub(ctx context.Context, pkg domain.Package) (domain.Package, bool) {
	if pkg.GitHubURL == "" {
		return pkg, false
	}

	info, err := s.github.FetchRepoInfo(ctx, pkg.GitHubURL)
	if err != nil {
		return pkg, false
	}

	refreshed := pkg
	refreshed.Owner = info.Owner
	refreshed.Stars = info.Stars
	refreshed.Forks = info.Forks
	refreshed.Watchers = info.Watchers
	refreshed.Language = info.Language
	refreshed.OpenIssues = info.OpenIssues
	refreshed.CreatedAt = info.CreatedAt
	refreshed.UpdatedAt = info.UpdatedAt
	refreshed.Version = info.Release.Version
	refreshed.DownloadURL = info.Release.DownloadURL
	refreshed.PublishedAt = info.Release.PublishedAt
	refreshed.ReleaseNotes = info.Release.Notes

	return refreshed, githubFieldsChanged(pkg, refreshed)
}

// githubFieldsChanged diffs exactly the fields a refresh overwrites
func githubFieldsChanged(old, refreshed domain.Package) bool {
	return old.Owner != refreshed.Owner ||
		old.Stars != refreshed.Stars ||
		old.Forks != refreshed.Forks ||
		old.Watchers != refreshed.Watchers ||
		old.Language != refreshed.Language ||
		old.OpenIssues != refreshed.OpenIssues ||
		old.CreatedAt != refreshed.CreatedAt ||
		old.UpdatedAt != refreshed.UpdatedAt ||
		old.Version != refreshed.Version ||
		old.DownloadURL != refreshed.DownloadURL ||
		old.PublishedAt != refreshed.PublishedAt ||
		old.ReleaseNotes != refreshed.ReleaseNotes
}

// sortTagsByCount orders tags by descending count with a stable sort so that
// equal counts keep first-seen order
func sortTagsByCount(tags []domain.TagCount) {
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})
}

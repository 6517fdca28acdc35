package domain

// Owner represents the GitHub account that owns a cataloged repository
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Status    string `json:"status,omitempty"`
}

// Package represents one catalog entry backed by a GitHub repository.
// GitHub-derived fields are overwritten wholesale on every refresh;
// ID and SubmittedBy are set locally at submission time and preserved.
type Package struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	GitHubURL    string   `json:"github_url"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
	Watchers     int      `json:"watchers"`
	Language     string   `json:"language"`
	OpenIssues   int      `json:"open_issues"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	Topics       []string `json:"topics"`
	AllTopics    []string `json:"all_topics"`
	Owner        Owner    `json:"owner"`
	Version      string   `json:"version"`
	DownloadURL  string   `json:"download_url"`
	PublishedAt  string   `json:"published_at"`
	ReleaseNotes string   `json:"release_notes"`
	SubmittedBy  string   `json:"submitted_by"`
}

// IndexedPackage pairs a package with its position in the catalog list,
// which doubles as its lookup key on the API.
type IndexedPackage struct {
	Index int `json:"index"`
	Package
}

// Release holds the latest-release fields extracted from GitHub
type Release struct {
	Version     string `json:"version"`
	PublishedAt string `json:"published_at"`
	DownloadURL string `json:"download_url"`
	Notes       string `json:"notes"`
}

// RepoInfo is the normalized result of a repository metadata fetch
type RepoInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	GitHubURL   string   `json:"github_url"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Watchers    int      `json:"watchers"`
	Language    string   `json:"language"`
	OpenIssues  int      `json:"open_issues"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Topics      []string `json:"topics"`
	AllTopics   []string `json:"all_topics"`
	Owner       Owner    `json:"owner"`
	Release     Release  `json:"release"`
}

// RepoSummary is a condensed view of a repository the caller can submit
type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
	Owner       string `json:"owner"`
}

// TagCount is one entry of the per-tag aggregation
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

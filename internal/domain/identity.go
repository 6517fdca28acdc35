package domain

// Identity is the session-scoped view of an authenticated GitHub user.
// It is carried in a signed cookie and never persisted.
type Identity struct {
	GitHubID    int64  `json:"github_id"`
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	AccessToken string `json:"access_token"`
}

package domain

// Review represents a review-like entry sourced from a GitHub issue
// labeled "review" on the package repository.
type Review struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	Author       string `json:"author"`
	AuthorAvatar string `json:"author_avatar"`
	CreatedAt    string `json:"created_at"`
	URL          string `json:"url"`
	State        string `json:"state"`
}

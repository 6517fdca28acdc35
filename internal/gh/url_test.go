package gh

import "testing"

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "https URL",
			url:       "https://github.com/rejzi/ryton-http",
			wantOwner: "rejzi",
			wantRepo:  "ryton-http",
		},
		{
			name:      "trailing slash",
			url:       "https://github.com/rejzi/ryton-http/",
			wantOwner: "rejzi",
			wantRepo:  "ryton-http",
		},
		{
			name:      "extra path segments",
			url:       "https://github.com/rejzi/ryton-http/tree/main",
			wantOwner: "rejzi",
			wantRepo:  "ryton-http",
		},
		{
			name:      "no scheme",
			url:       "github.com/rejzi/ryton-http",
			wantOwner: "rejzi",
			wantRepo:  "ryton-http",
		},
		{
			name:    "missing repo segment",
			url:     "https://github.com/rejzi",
			wantErr: true,
		},
		{
			name:    "owner only with trailing slash",
			url:     "https://github.com/rejzi/",
			wantErr: true,
		},
		{
			name:    "not a github URL",
			url:     "https://gitlab.com/rejzi/ryton-http",
			wantErr: true,
		},
		{
			name:    "bare host",
			url:     "https://github.com",
			wantErr: true,
		},
		{
			name:    "empty string",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepoURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRepoURL(%q) expected error, got %q/%q", tt.url, owner, repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepoURL(%q) error = %v", tt.url, err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("ParseRepoURL(%q) = %q/%q, want %q/%q", tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

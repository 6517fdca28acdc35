package domain

import (
	"reflect"
	"testing"
)

func TestFilterTopics(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "keeps allowed topics in order",
			raw:  []string{"network", "ryton-lang", "library"},
			want: []string{"network", "library"},
		},
		{
			name: "all allowed",
			raw:  []string{"cli", "tool"},
			want: []string{"cli", "tool"},
		},
		{
			name: "none allowed falls back to other",
			raw:  []string{"ryton-lang", "hacktoberfest"},
			want: []string{"other"},
		},
		{
			name: "no topics stays empty",
			raw:  nil,
			want: nil,
		},
		{
			name: "empty slice stays empty",
			raw:  []string{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTopics(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterTopics(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFilterTopics_ResultIsSubsetOfVocabulary(t *testing.T) {
	allowed := make(map[string]bool, len(AllowedTags))
	for _, tag := range AllowedTags {
		allowed[tag] = true
	}

	raw := []string{"library", "weird-topic", "web", "another", "testing"}
	for _, tag := range FilterTopics(raw) {
		if !allowed[tag] {
			t.Errorf("FilterTopics produced %q, not in the allowed vocabulary", tag)
		}
	}
}

func TestDeveloperStatus(t *testing.T) {
	tests := []struct {
		login string
		want  string
	}{
		{"Rejzi-dich", StatusCLTeamMember},
		{"CodeLibraty", StatusCLTeamMember},
		{"trusted_dev2", StatusTrustedDeveloper},
		{"rejzi-dich", ""}, // matching is exact, not case-folded
		{"random-user", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DeveloperStatus(tt.login); got != tt.want {
			t.Errorf("DeveloperStatus(%q) = %q, want %q", tt.login, got, tt.want)
		}
	}
}

package ownership

import (
	"context"
	"errors"
	"testing"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
)

type stubOrgLister struct {
	orgs  []string
	err   error
	calls int
}

func (s *stubOrgLister) ListUserOrgs(ctx context.Context, token string) ([]string, error) {
	s.calls++
	return s.orgs, s.err
}

func identity(login string) *domain.Identity {
	return &domain.Identity{Login: login, AccessToken: "token"}
}

func TestOwns_DirectOwner(t *testing.T) {
	lister := &stubOrgLister{}
	v := NewVerifier(lister)

	owned, err := v.Owns(context.Background(), identity("Rejzi"), "https://github.com/rejzi/ryton-http")
	if err != nil {
		t.Fatalf("Owns() error = %v", err)
	}
	if !owned {
		t.Error("Owns() = false, want true for case-insensitive owner match")
	}
	if lister.calls != 0 {
		t.Errorf("ListUserOrgs called %d times, want 0 for direct owner", lister.calls)
	}
}

func TestOwns_OrgMember(t *testing.T) {
	lister := &stubOrgLister{orgs: []string{"SomeOrg", "codelibraty"}}
	v := NewVerifier(lister)

	owned, err := v.Owns(context.Background(), identity("rejzi"), "https://github.com/CodeLibraty/ryton-core")
	if err != nil {
		t.Fatalf("Owns() error = %v", err)
	}
	if !owned {
		t.Error("Owns() = false, want true for org membership")
	}
}

func TestOwns_NotOwned(t *testing.T) {
	lister := &stubOrgLister{orgs: []string{"SomeOrg"}}
	v := NewVerifier(lister)

	owned, err := v.Owns(context.Background(), identity("rejzi"), "https://github.com/stranger/repo")
	if err != nil {
		t.Fatalf("Owns() error = %v", err)
	}
	if owned {
		t.Error("Owns() = true, want false")
	}
}

func TestOwns_MissingIdentity(t *testing.T) {
	v := NewVerifier(&stubOrgLister{})

	owned, err := v.Owns(context.Background(), nil, "https://github.com/rejzi/ryton-http")
	if err != nil || owned {
		t.Errorf("Owns(nil identity) = %v, %v, want false, nil", owned, err)
	}

	owned, err = v.Owns(context.Background(), &domain.Identity{Login: "rejzi"}, "https://github.com/rejzi/ryton-http")
	if err != nil || owned {
		t.Errorf("Owns(no token) = %v, %v, want false, nil", owned, err)
	}
}

func TestOwns_UnresolvableURL(t *testing.T) {
	lister := &stubOrgLister{}
	v := NewVerifier(lister)

	owned, err := v.Owns(context.Background(), identity("rejzi"), "https://gitlab.com/rejzi/repo")
	if err != nil || owned {
		t.Errorf("Owns(bad URL) = %v, %v, want false, nil", owned, err)
	}
	if lister.calls != 0 {
		t.Errorf("ListUserOrgs called %d times, want 0 for bad URL", lister.calls)
	}
}

func TestOwns_OrgLookupFailure(t *testing.T) {
	lister := &stubOrgLister{err: errors.New("upstream down")}
	v := NewVerifier(lister)

	owned, err := v.Owns(context.Background(), identity("rejzi"), "https://github.com/CodeLibraty/repo")
	if err == nil {
		t.Error("Owns() error = nil, want the lookup failure")
	}
	if owned {
		t.Error("Owns() = true on lookup failure, want false")
	}
}

package controllers

import (
	"strings"
	"testing"

	"github.com/visioncraft/agencybackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestFAQSlug(t *testing.T) {
	t.Parallel()

	if got := faqSlug("How long does a revision take?"); got != "how-long-does-a-revision-take" {
		t.Fatalf("faqSlug = %q", got)
	}

	long := strings.Repeat("what about turnaround ", 10)
	slug := faqSlug(long)
	if len(slug) > 50 {
		t.Fatalf("slug length %d exceeds cap", len(slug))
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		t.Fatalf("slug has dangling hyphen: %q", slug)
	}
}

func TestValidSocialLinks(t *testing.T) {
	t.Parallel()

	ok := []models.SocialLink{
		{Platform: "linkedin", URL: "https://linkedin.com/in/editor"},
		{Platform: "behance", URL: "https://behance.net/editor"},
	}
	if !validSocialLinks(ok) {
		t.Fatalf("expected valid platforms to pass")
	}

	bad := []models.SocialLink{{Platform: "myspace", URL: "https://example.com"}}
	if validSocialLinks(bad) {
		t.Fatalf("expected unknown platform to fail")
	}

	if !validSocialLinks(nil) {
		t.Fatalf("empty link list is valid")
	}
}

func TestActiveTeamMembers_FiltersAndSorts(t *testing.T) {
	t.Parallel()

	page := models.AboutPage{
		TeamMembers: []models.TeamMember{
			{Name: "Colorist", Order: 2, IsActive: true},
			{Name: "Retired", Order: 0, IsActive: false},
			{Name: "Editor", Order: 1, IsActive: true},
		},
	}

	got := activeTeamMembers(page)
	if len(got) != 2 {
		t.Fatalf("expected 2 active members, got %d", len(got))
	}
	if got[0].Name != "Editor" || got[1].Name != "Colorist" {
		t.Fatalf("order wrong: %q then %q", got[0].Name, got[1].Name)
	}
}

func TestEnsureItemIDs(t *testing.T) {
	t.Parallel()

	existing := bson.NewObjectID()
	members := ensureItemIDs([]models.TeamMember{
		{Id: existing, Name: "kept"},
		{Name: "fresh"},
	})

	if members[0].Id != existing {
		t.Fatalf("existing id must be preserved")
	}
	if members[1].Id.IsZero() {
		t.Fatalf("missing id must be assigned")
	}
}

func TestReissueTeamMemberIDs(t *testing.T) {
	t.Parallel()

	src := []models.TeamMember{{Id: bson.NewObjectID(), Name: "Editor"}}
	out := reissueTeamMemberIDs(src)

	if len(out) != 1 || out[0].Name != "Editor" {
		t.Fatalf("content must survive the copy: %v", out)
	}
	if out[0].Id == src[0].Id {
		t.Fatalf("duplicated items must get fresh ids")
	}
	if src[0].Id.IsZero() {
		t.Fatalf("source slice must not be mutated")
	}
}

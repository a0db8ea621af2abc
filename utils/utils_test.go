package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Video Editing", "video-editing"},
		{"accents", "Café Créme", "cafe-creme"},
		{"punctuation", "What's included?!", "what-s-included"},
		{"collapse runs", "a   --  b", "a-b"},
		{"trim hyphens", "  hello  ", "hello"},
		{"already slug", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.in); got != tt.want {
				t.Fatalf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBoolQuery(t *testing.T) {
	t.Parallel()

	got, err := ParseBoolQuery("")
	if err != nil || got != nil {
		t.Fatalf("empty value: got (%v, %v), want (nil, nil)", got, err)
	}

	got, err = ParseBoolQuery("true")
	if err != nil || got == nil || !*got {
		t.Fatalf("true: got (%v, %v)", got, err)
	}

	got, err = ParseBoolQuery("false")
	if err != nil || got == nil || *got {
		t.Fatalf("false: got (%v, %v)", got, err)
	}

	if _, err = ParseBoolQuery("banana"); err == nil {
		t.Fatalf("expected error for non-boolean value")
	}
}

func TestParseIntDefault(t *testing.T) {
	t.Parallel()

	if got := ParseIntDefault("", 7); got != 7 {
		t.Fatalf("empty: got %d want 7", got)
	}
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Fatalf("valid: got %d want 42", got)
	}
	if got := ParseIntDefault("nope", 7); got != 7 {
		t.Fatalf("invalid: got %d want 7", got)
	}
}

func TestPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pageStr   string
		limitStr  string
		wantPage  int
		wantLimit int
		wantSkip  int64
	}{
		{"defaults", "", "", 1, 10, 0},
		{"second page", "2", "20", 2, 20, 20},
		{"clamped limit", "1", "1000", 1, 100, 0},
		{"negative page", "-3", "10", 1, 10, 0},
		{"zero limit", "1", "0", 1, 10, 0},
		{"garbage", "x", "y", 1, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, skip := Pagination(tt.pageStr, tt.limitStr, 10, 100)
			if page != tt.wantPage || limit != tt.wantLimit || skip != tt.wantSkip {
				t.Fatalf("Pagination(%q, %q) = (%d, %d, %d), want (%d, %d, %d)",
					tt.pageStr, tt.limitStr, page, limit, skip,
					tt.wantPage, tt.wantLimit, tt.wantSkip)
			}
		})
	}
}

func TestStringsToObjectIDs(t *testing.T) {
	t.Parallel()

	ids, err := StringsToObjectIDs([]string{"656a1b2c3d4e5f6a7b8c9d0e"})
	if err != nil {
		t.Fatalf("StringsToObjectIDs error: %v", err)
	}
	if len(ids) != 1 || ids[0].Hex() != "656a1b2c3d4e5f6a7b8c9d0e" {
		t.Fatalf("roundtrip mismatch: %v", ids)
	}

	if _, err := StringsToObjectIDs([]string{"not-an-id"}); err == nil {
		t.Fatalf("expected error for malformed id")
	}
}

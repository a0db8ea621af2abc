package auth

import "testing"

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := BcryptHasher{}

	hash, err := hasher.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if err := hasher.Compare(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("Compare error for matching password: %v", err)
	}
	if err := hasher.Compare(hash, "wrong password"); err == nil {
		t.Fatalf("expected error for mismatched password, got nil")
	}
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	t.Parallel()

	hasher := BcryptHasher{}

	h1, err := hasher.Hash("same input")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := hasher.Hash("same input")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ")
	}
}

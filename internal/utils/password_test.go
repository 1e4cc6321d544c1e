package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("super-secret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "super-secret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !VerifyPassword("super-secret", hash) {
		t.Error("original password must verify against its own hash")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("a different password must not verify")
	}
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hash, err := HashPassword("pw", cost)
		if err != nil {
			t.Fatalf("cost %d: unexpected error: %v", cost, err)
		}

		actual, err := bcrypt.Cost([]byte(hash))
		if err != nil {
			t.Fatalf("cost %d: failed to read hash cost: %v", cost, err)
		}
		if actual != DefaultBcryptCost {
			t.Errorf("cost %d: expected fallback to %d, got %d", cost, DefaultBcryptCost, actual)
		}
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("pw", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("pw", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ by salt")
	}
}

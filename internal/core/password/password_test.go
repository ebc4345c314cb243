package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("s3cret-pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", encoded)
	}
	if strings.Contains(encoded, "s3cret-pw") {
		t.Fatalf("plaintext leaked into hash")
	}

	ok, err := Verify(encoded, "s3cret-pw")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	encoded, err := Hash("correct")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := Verify(encoded, "incorrect")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestHash_RandomSalt(t *testing.T) {
	h1, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same password")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
	}
	for _, c := range cases {
		if _, err := Verify(c, "pw"); err != ErrInvalidHash {
			t.Fatalf("hash %q: expected ErrInvalidHash, got %v", c, err)
		}
	}
}

package crypto

import (
	"strings"
	"testing"
)

// newFastHasher keeps tests quick; the parameters do not change behaviour.
func newFastHasher() *argon2Hasher {
	return &argon2Hasher{argonTime: 1, argonMemory: 1024, argonThreads: 1, argonKeyLen: 32, saltLen: 16}
}

func TestHash_Format(t *testing.T) {
	h := newFastHasher()

	encoded, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		t.Fatalf("encoded hash has %d parts, want 3: %q", len(parts), encoded)
	}
	if parts[0] != "argon2id" {
		t.Fatalf("scheme = %q, want argon2id", parts[0])
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := newFastHasher()

	first, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if first == second {
		t.Fatalf("expected different hashes for equal passwords")
	}
}

func TestVerify(t *testing.T) {
	h := newFastHasher()
	encoded, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("s3cret-pass", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify(correct) = %v, %v; want true, nil", ok, err)
	}

	ok, err = h.Verify("wrong-pass", encoded)
	if err != nil || ok {
		t.Fatalf("Verify(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	h := newFastHasher()

	for _, encoded := range []string{
		"",
		"argon2id$only-two",
		"bcrypt$c2FsdA$a2V5",
		"argon2id$!!!$a2V5",
		"argon2id$c2FsdA$!!!",
	} {
		if _, err := h.Verify("x", encoded); err == nil {
			t.Fatalf("Verify(%q) expected error", encoded)
		}
	}
}

func TestNewPasswordHasher_Parameters(t *testing.T) {
	h, ok := NewPasswordHasher().(*argon2Hasher)
	if !ok {
		t.Fatalf("unexpected implementation %T", NewPasswordHasher())
	}
	if h.argonMemory != 64*1024 || h.argonKeyLen != 32 || h.saltLen != 16 {
		t.Fatalf("unexpected parameters: %+v", h)
	}
}

package password

import (
	"strings"
	"testing"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	phc, err := Hash(Default, "S3cure!pass")
	if err != nil {
		t.Fatalf("Hash err: %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$") {
		t.Fatalf("unexpected PHC prefix: %q", phc)
	}
	if !Verify("S3cure!pass", phc) {
		t.Fatal("Verify rejected the original password")
	}
	if Verify("wrong-password", phc) {
		t.Fatal("Verify accepted a wrong password")
	}
}

func TestHash_SaltsDiffer(t *testing.T) {
	a, err := Hash(Default, "same-password")
	if err != nil {
		t.Fatalf("Hash err: %v", err)
	}
	b, err := Hash(Default, "same-password")
	if err != nil {
		t.Fatalf("Hash err: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password should differ (random salt)")
	}
}

func TestVerify_RejectsMalformed(t *testing.T) {
	for _, phc := range []string{"", "plain", "$argon2id$v=19$garbage"} {
		if Verify("whatever", phc) {
			t.Fatalf("Verify accepted malformed hash %q", phc)
		}
	}
}

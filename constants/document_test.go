package constants

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want DocumentCategory
		ok   bool
	}{
		{"identity", CategoryIdentity, true},
		{"INVOICE", CategoryInvoice, true},
		{" supporting ", CategorySupporting, true},
		{"receipt", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestVerificationStatusesAsStrings(t *testing.T) {
	got := VerificationStatusesAsStrings()
	want := []string{"PENDING", "VERIFIED", "NEEDS_REVIEW", "REJECTED"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("statuses[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

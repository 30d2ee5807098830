package phone

import "testing"

func TestMatchKey(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0400123456", "0400123456"},
		{"0400 123-456", "0400123456"},
		{"(0400) 123.456", "0400123456"},
		{"+61 400 123 456", "61400123456"},
		{"  ", ""},
		{"ext", ""},
	}
	for _, tc := range cases {
		if got := MatchKey(tc.input); got != tc.want {
			t.Fatalf("MatchKey(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeE164(t *testing.T) {
	if got := NormalizeE164("0400 123 456"); got != "+61400123456" {
		t.Fatalf("expected E.164 form, got %q", got)
	}
	if got := NormalizeE164("not a number"); got != "not a number" {
		t.Fatalf("expected unparseable input returned as-is, got %q", got)
	}
	if got := NormalizeE164("  "); got != "" {
		t.Fatalf("expected empty result for blank input, got %q", got)
	}
}

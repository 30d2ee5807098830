package sanitize

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> text", "bold text"},
		{"<script>alert(1)</script>hello", "alert(1)hello"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;safe", "alert(1)safe"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := StripHTML(tc.input); got != tc.want {
			t.Fatalf("StripHTML(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTextKeepsEntityCharacters(t *testing.T) {
	if got := Text("fish &amp; chips"); got != "fish & chips" {
		t.Fatalf("expected entity decoded, got %q", got)
	}
}

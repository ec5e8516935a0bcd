package language

import "testing"

func TestDisplayName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"en", "English"},
		{"eng", "English"},
		{"ja", "Japanese"},
		{"", "Unknown"},
		{"xx", "XX"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.input); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestIsEnglish(t *testing.T) {
	if !IsEnglish("en") || !IsEnglish("ENG") {
		t.Fatal("expected english codes to resolve")
	}
	if IsEnglish("fr") || IsEnglish("") || IsEnglish("xx") {
		t.Fatal("expected non-english codes to report false")
	}
}

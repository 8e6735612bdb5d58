package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"resume.pdf", "resume.pdf", false},
		{"  resume.pdf  ", "resume.pdf", false},
		{"a/b\\c.pdf", "a_b_c.pdf", false},
		{"../etc/passwd", "", true},
		{"   ", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("SanitizeFileName(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

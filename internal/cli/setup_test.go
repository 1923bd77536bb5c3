package cli

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"State of renewable energy in 2024", "state-of-renewable-energy-in-2024"},
		{"  What's next for AI?  ", "what-s-next-for-ai"},
		{"UPPER case", "upper-case"},
		{"---", "research"},
		{"", "research"},
	}

	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFilename_Caps(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "verylongword "
	}

	got := sanitizeFilename(long)
	if len(got) > 80 {
		t.Errorf("expected slug capped at 80 chars, got %d", len(got))
	}
}

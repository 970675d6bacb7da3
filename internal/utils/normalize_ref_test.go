package utils

import "testing"

func TestNormalizeCadastralRef(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123/4", "123/4"},
		{" 123 / 4a ", "123/4A"},
		{"123-4", "123/4"},
		{"123/4A", "123/4A"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeCadastralRef(tc.in); got != tc.want {
			t.Errorf("NormalizeCadastralRef(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

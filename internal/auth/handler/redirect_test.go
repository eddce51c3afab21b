package handler

import "testing"

func TestValidRedirectPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/settings", true},
		{"/settings/profile", true},
		{"", false},
		{"relative", false},
		{"https://evil.example.com", false},
		{"//evil.example.com", false},
		{"/signin", false},
		{"/signup", false},
		{"/signout", false},
	}

	for _, tc := range cases {
		if got := validRedirectPath(tc.path); got != tc.want {
			t.Fatalf("validRedirectPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

package edit

import "testing"

func TestIsValidURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path?q=1",
		"ftp://files.example.com",
	}
	for _, s := range valid {
		if !IsValidURL(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{
		"",
		"hello",
		"example.com",
		"https://",
		"https://example.com with spaces",
		"/relative/path",
	}
	for _, s := range invalid {
		if IsValidURL(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

package version

import "testing"

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		build    string
		expected string
	}{
		{build: "", expected: "0.1.0"},
		{build: "rc1", expected: "0.1.0-rc1"},
		{build: "dirty-3f2a", expected: "0.1.0-dirty-3f2a"},
		{build: "bad build!", expected: "0.1.0"},
	}
	for _, test := range tests {
		actual := formatVersion(test.build)
		if actual != test.expected {
			t.Fatalf("formatVersion(%q): expected %s, got %s", test.build, test.expected, actual)
		}
	}
}

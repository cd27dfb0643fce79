package buildinfo

import "testing"

func set(t *testing.T, v, c, d string) {
	t.Helper()
	ov, oc, od := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = ov, oc, od })
	Version, Commit, Date = v, c, d
}

func TestShort(t *testing.T) {
	tests := []struct {
		version, commit string
		want            string
	}{
		{"dev", "unknown", "dev"},
		{"v1.2.0", "0123456789abcdef", "v1.2.0"},
		{"dev", "0123456789abcdef", "0123456"},
		{"", "abc", "abc"},
	}
	for _, tt := range tests {
		set(t, tt.version, tt.commit, "unknown")
		if got := Short(); got != tt.want {
			t.Fatalf("Short() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestLong(t *testing.T) {
	set(t, "v1.2.0", "0123456789abcdef", "2024-05-01")
	if got, want := Long(), "v1.2.0 (0123456789abcdef, 2024-05-01)"; got != want {
		t.Fatalf("Long() = %q, want %q", got, want)
	}
	set(t, "dev", "0123456789abcdef", "unknown")
	if got, want := Long(), "0123456"; got != want {
		t.Fatalf("Long() = %q, want %q", got, want)
	}
	set(t, "dev", "unknown", "2024-05-01")
	if got, want := Long(), "dev (2024-05-01)"; got != want {
		t.Fatalf("Long() = %q, want %q", got, want)
	}
}

package buildinfo

// Version is set at build time via -ldflags "-X litclock/internal/buildinfo.Version=...".
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and the
// start-up log line.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long adds the commit and build date to Short.
func Long() string {
	s := Short()
	if Commit != "" && Commit != "unknown" && s != Commit && !isPrefix(s, Commit) {
		s += " (" + Commit
		if Date != "" && Date != "unknown" {
			s += ", " + Date
		}
		s += ")"
	} else if Date != "" && Date != "unknown" {
		s += " (" + Date + ")"
	}
	return s
}

func isPrefix(p, s string) bool { return len(p) <= len(s) && s[:len(p)] == p }

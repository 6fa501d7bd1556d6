package buildinfo

// Name is the firmware name shown in the window title and boot log.
const Name = "dhtconsole"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Banner is the one-line boot identification.
func Banner() string {
	return Name + " (" + Short() + ")"
}

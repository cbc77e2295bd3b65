// Package version reports the animatedpager build.
package version

import "runtime/debug"

// Version and Commit are set at build time with
// -ldflags "-X .../internal/version.Version=v1.2.3 -X .../internal/version.Commit=abc1234".
var (
	Version = "development"
	Commit  = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the version, followed by "+commit" when the commit is known.
// Without ldflags it falls back to the module version and VCS revision that
// the Go toolchain embeds.
func String() string {
	v, c := Version, Commit
	if info, ok := readBuildInfo(); ok {
		if v == "development" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
		if c == "unknown" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					c = s.Value[:7]
				}
			}
		}
	}
	if c != "unknown" {
		return v + "+" + c
	}
	return v
}

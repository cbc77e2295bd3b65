package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		info     *debug.BuildInfo
		expected string
	}{
		{
			name:     "development version without commit",
			version:  "development",
			commit:   "unknown",
			expected: "development",
		},
		{
			name:     "release version with commit",
			version:  "1.0.0",
			commit:   "abc1234",
			expected: "1.0.0+abc1234",
		},
		{
			name:    "build info fills the gaps",
			version: "development",
			commit:  "unknown",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			},
			expected: "v0.3.0+0123456",
		},
		{
			name:     "devel build keeps development",
			version:  "development",
			commit:   "unknown",
			info:     &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected: "development",
		},
		{
			name:     "ldflags win over build info",
			version:  "2.0.0",
			commit:   "feedbee",
			info:     &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}},
			expected: "2.0.0+feedbee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit, origRead := Version, Commit, readBuildInfo
			defer func() {
				Version, Commit, readBuildInfo = origVersion, origCommit, origRead
			}()

			Version = tt.version
			Commit = tt.commit
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return tt.info, tt.info != nil
			}

			assert.Equal(t, tt.expected, String())
		})
	}
}

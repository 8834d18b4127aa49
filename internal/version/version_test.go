package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestString ensures the version string follows semantic versioning and is
// the one sent as User-Agent.
func TestString(t *testing.T) {
	require.Regexp(t, `^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`, String())
	require.Equal(t, "0.1.0-beta", String())
	require.Equal(t, "corejson/0.1.0-beta", UserAgent())
}

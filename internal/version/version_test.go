package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	originalVersion := Version
	originalBuildDate := BuildDate
	defer func() {
		Version = originalVersion
		BuildDate = originalBuildDate
	}()

	t.Run("default values", func(t *testing.T) {
		Version = "DEV"
		BuildDate = ""
		assert.Equal(t, "DEV, Go Version: "+runtime.Version(), Info())
	})

	t.Run("with version and build date", func(t *testing.T) {
		Version = "1.2.0"
		BuildDate = "2026-08-28"
		assert.Equal(t, "1.2.0 (2026-08-28), Go Version: "+runtime.Version(), Info())
	})
}

package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/julien-sobczak/the-moodwriter/pkg/clock"
	"github.com/julien-sobczak/the-moodwriter/pkg/oid"
)

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	configOnce.Reset()
	loggerOnce.Reset()
	storeOnce.Reset()
}

/* Fixtures */

// SetUpHomeFromTempDir populates a temp directory containing a valid .mw directory.
func SetUpHomeFromTempDir(t *testing.T) string {
	return SetUpHomeFromTempDirWithConfig(t, "")
}

// SetUpHomeFromTempDirWithConfig populates a temp directory using the given configuration file content.
// The default configuration is used when the content is empty.
func SetUpHomeFromTempDirWithConfig(t *testing.T, configContent string) string {
	dirname := t.TempDir()
	if _, err := InitHome(dirname); err != nil {
		t.Fatal(err)
	}
	if configContent != "" {
		if err := os.WriteFile(filepath.Join(dirname, HomeDirName, "config"), []byte(configContent), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Force the application to consider the temporary directory as the home
	t.Setenv("MW_HOME", dirname)
	t.Cleanup(Reset)
	Reset()

	// Force debug level in tests to diagnose more easily
	CurrentLogger().SetVerboseLevel(VerboseDebug)
	CurrentLogger().Debugf("✨ Set up directory %q", dirname)
	return dirname
}

/* Reproducible Tests */

// FreezeNow wraps the clock API to register the cleanup function at the end of the test.
func FreezeNow(t *testing.T) *clock.TestClock {
	testClock := clock.Freeze()
	t.Cleanup(clock.Unfreeze)
	return testClock
}

// FreezeAt wraps the clock API to register the cleanup function at the end of the test.
func FreezeAt(t *testing.T, point time.Time) *clock.TestClock {
	testClock := clock.FreezeAt(point)
	t.Cleanup(clock.Unfreeze)
	return testClock
}

// UseSequenceOID generates predictable OIDs until the end of the test.
func UseSequenceOID(t *testing.T) {
	oid.UseGenerator(oid.NewSequenceGenerator())
	t.Cleanup(oid.Reset)
}

/* Test Helpers */

// DumpState returns a readable representation of the state for failure messages.
func DumpState(state AppState) string {
	return spew.Sdump(state)
}

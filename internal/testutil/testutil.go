// Package testutil holds helpers shared by package tests
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/exerun/exerun/internal/osutil"
)

// Snapshot is output checked against testdata/<name>.golden.
type Snapshot interface {
	Output() (out []byte, name string)
}

// CompareGoldenFile checks a snapshot against its golden file. Nil output
// means no golden file may exist for it. Run tests with -update to rewrite
// the golden files.
func CompareGoldenFile(t *testing.T, snap Snapshot) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		t.Skip("golden files use unix line endings")
	}

	out, name := snap.Output()

	if out == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); err == nil {
			t.Fatalf("%s produced no output but its golden file exists", name)
		}

		return
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, name, out)
}

// CopyFile copies a fixture, e.g. into a test's temp dir.
func CopyFile(src, dst string) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, b, osutil.FilePermission)
}

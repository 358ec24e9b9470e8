package collab

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cwbudde/fnswitch/internal/value"
)

// OSFileSystem is the real FileSystem, backed by the local disk.
type OSFileSystem struct{}

func (OSFileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (OSFileSystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (fs OSFileSystem) PathOfFileAbove(fileName, startingDirectory string) (string, bool) {
	dir, ok := fs.DirectoryNameOfFileAbove(fileName, startingDirectory)
	if !ok {
		return "", false
	}
	return filepath.Join(dir, fileName), true
}

func (fs OSFileSystem) DirectoryNameOfFileAbove(fileName, startingDirectory string) (string, bool) {
	dir := startingDirectory
	for {
		candidate := filepath.Join(dir, fileName)
		if fs.FileExists(candidate) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// RealOSPlatform answers platform queries from the Go runtime, the same
// shape as System.OperatingSystem.IsOSPlatform/IsLinux on the platform the
// dispatcher actually runs on.
type RealOSPlatform struct{}

func (RealOSPlatform) IsOSPlatform(id string) bool {
	switch id {
	case "WINDOWS":
		return runtime.GOOS == "windows"
	case "OSX":
		return runtime.GOOS == "darwin"
	case "LINUX":
		return runtime.GOOS == "linux"
	case "FREEBSD":
		return runtime.GOOS == "freebsd"
	default:
		return false
	}
}

func (RealOSPlatform) IsUnixLike() bool {
	return runtime.GOOS != "windows"
}

// NoopRegistry answers every lookup with the caller-supplied default,
// matching the behavior MSBuild itself falls back to on non-Windows
// platforms where there is no registry to consult.
type NoopRegistry struct{}

func (NoopRegistry) GetValue(_ string, _ string, defaultValue value.V, _ []RegistryView) value.V {
	return defaultValue
}

// StaticFeatureWave gates on a single configured wave: features are
// enabled iff the requested wave is <= the configured one.
type StaticFeatureWave struct {
	Current value.Ver
}

func (f StaticFeatureWave) AreFeaturesEnabled(wave value.Ver) bool {
	return f.Current.Compare(wave) >= 0
}

func (f StaticFeatureWave) CheckFeatureAvailability(featureName string) FeatureStatus {
	return FeatureAvailable
}

// StdLogger writes to the standard library's log package, in the
// teacher's terse style (no structured fields, no levels framework —
// just three format-string methods).
type StdLogger struct{}

func (StdLogger) LogMessage(format string, args ...any) { log.Printf(format, args...) }
func (StdLogger) LogWarning(format string, args ...any) { log.Printf("warning: "+format, args...) }
func (StdLogger) LogError(format string, args ...any)   { log.Printf("error: "+format, args...) }

// Package collab declares the dispatcher's constructor-time collaborator
// contracts (§4.6): file-system, registry, OS-platform, feature-wave, and
// logging. Each is a tight, side-effect-scoped interface — the dispatcher
// reaches file existence, the registry, platform identity and feature gates
// only through these. The Path library's GetFullPath/GetTempPath and the
// reflection-fallback log are the exceptions: they call os and path/filepath
// directly. Modeled on the teacher's builtins.Context split
// (internal/interp/builtins/context.go), which exists for the same reason:
// let built-in functions depend on an interface instead of the concrete
// interpreter, so a test can supply a fake.
package collab

import "github.com/cwbudde/fnswitch/internal/value"

// FileSystem answers existence and upward-search queries. Implementations
// must be idempotent and side-effect-free beyond reading the OS.
type FileSystem interface {
	FileExists(path string) bool
	DirectoryExists(path string) bool

	// PathOfFileAbove walks from startingDirectory upward through parent
	// directories looking for fileName, returning its full path.
	PathOfFileAbove(fileName, startingDirectory string) (string, bool)

	// DirectoryNameOfFileAbove is PathOfFileAbove but returns the
	// containing directory instead of the file's own path.
	DirectoryNameOfFileAbove(fileName, startingDirectory string) (string, bool)
}

// RegistryView names one of the registry's 32/64-bit views, per the
// underlying platform's RegistryView enumeration.
type RegistryView string

const (
	RegistryViewDefault RegistryView = "Default"
	RegistryView32      RegistryView = "Registry32"
	RegistryView64      RegistryView = "Registry64"
)

// Registry is a read-only, platform-agnostic abstraction over the Windows
// registry (or a no-op stand-in on platforms without one). No writes.
type Registry interface {
	GetValue(key, valueName string, defaultValue value.V, views []RegistryView) value.V
}

// OSPlatform answers platform-identity queries without the dispatcher
// importing runtime.GOOS directly, so tests can simulate any platform.
type OSPlatform interface {
	IsOSPlatform(id string) bool
	IsUnixLike() bool
}

// FeatureStatus is CheckFeatureAvailability's four-valued result.
type FeatureStatus int

const (
	FeatureUndefined FeatureStatus = iota
	FeatureAvailable
	FeatureNotAvailable
	FeaturePreview
)

// FeatureWave gates behavior by a version identifier ("17.10", etc.),
// letting the Intrinsic library change its hashing/behavior across
// releases without the dispatcher itself knowing about release trains.
type FeatureWave interface {
	AreFeaturesEnabled(wave value.Ver) bool
	CheckFeatureAvailability(featureName string) FeatureStatus
}

// Logger is the sink used by RegisterBuildCheck and, indirectly, by the
// reflection-fallback log (which opens its own file rather than going
// through Logger — see internal/dispatch/fallbacklog.go).
type Logger interface {
	LogMessage(format string, args ...any)
	LogWarning(format string, args ...any)
	LogError(format string, args ...any)
}

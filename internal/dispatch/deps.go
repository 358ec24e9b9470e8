package dispatch

import (
	"github.com/cwbudde/fnswitch/internal/collab"
	"github.com/cwbudde/fnswitch/internal/value"
)

// defaultWave is the feature wave assumed enabled when the caller supplies
// no FeatureWave collaborator: a deliberately recent wave, so
// StableStringHash (§4.4.11) defaults to its modern hash.
var defaultWave = value.NewVer(17, 10)

// Dispatcher owns the immutable per-library tables and the constructor-time
// collaborators (§4.6). Build one with New and reuse it for the lifetime of
// the process — construction is the only place these tables are built;
// every Dispatch call afterward is read-only and safe from any number of
// goroutines at once (§5).
type Dispatcher struct {
	fs       collab.FileSystem
	reg      collab.Registry
	os       collab.OSPlatform
	wave     collab.FeatureWave
	logger   collab.Logger
	fallback *fallbackLog

	stringLib      *stringLibrary
	stringArrayLib *stringArrayLibrary
	intLib         *intLibrary
	versionLib     *versionLibrary
	guidLib        *guidLibrary
	pathLib        *pathLibrary
	mathLib        *mathLibrary
	directoryLib   *directoryLibrary
	charLib        *charLibrary
	regexLib       *regexLibrary
	intrinsicLib   *intrinsicLibrary
}

// Options configures the collaborators a Dispatcher is built with. Any
// field left nil gets a real, OS-backed default (collab.OSFileSystem,
// collab.NoopRegistry, collab.RealOSPlatform, collab.StdLogger) or, for
// FeatureWave, a StaticFeatureWave gated on a modern default wave.
type Options struct {
	FileSystem            collab.FileSystem
	Registry              collab.Registry
	OSPlatform            collab.OSPlatform
	FeatureWave           collab.FeatureWave
	Logger                collab.Logger
	ReflectionFallbackLog bool   // §4.7: opt-in append-only unresolved-call log
	FallbackLogPath       string // defaults to "./PropertyFunctionsRequiringReflection"
}

// New builds a Dispatcher, constructing every per-library dense id table
// once (§4.3, §9 "Frozen configuration"). The tables never change after
// this call returns.
func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		fs:     orDefault[collab.FileSystem](opts.FileSystem, collab.OSFileSystem{}),
		reg:    orDefault[collab.Registry](opts.Registry, collab.NoopRegistry{}),
		os:     orDefault[collab.OSPlatform](opts.OSPlatform, collab.RealOSPlatform{}),
		wave:   opts.FeatureWave,
		logger: orDefault[collab.Logger](opts.Logger, collab.StdLogger{}),
	}
	if d.wave == nil {
		d.wave = collab.StaticFeatureWave{Current: defaultWave}
	}
	d.fallback = newFallbackLog(opts.ReflectionFallbackLog, opts.FallbackLogPath)

	d.stringLib = newStringLibrary()
	d.stringArrayLib = newStringArrayLibrary()
	d.intLib = newIntLibrary()
	d.versionLib = newVersionLibrary()
	d.guidLib = newGuidLibrary()
	d.pathLib = newPathLibrary()
	d.mathLib = newMathLibrary()
	d.directoryLib = newDirectoryLibrary()
	d.charLib = newCharLibrary()
	d.regexLib = newRegexLibrary()
	d.intrinsicLib = newIntrinsicLibrary(d.fs, d.reg, d.os, d.wave, d.logger)

	return d
}

func orDefault[T comparable](v T, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

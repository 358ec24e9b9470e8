package dispatch

import (
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/cwbudde/fnswitch/internal/coerce"
	"github.com/cwbudde/fnswitch/internal/collab"
	"github.com/cwbudde/fnswitch/internal/funcid"
	"github.com/cwbudde/fnswitch/internal/value"
)

// intrinsicLibrary implements §4.4.11, the build-system-specific grab bag:
// widening arithmetic, bitwise/shift ops, path and string helpers, version
// predicates, target-framework parsing, a feature-wave-gated string hash,
// feature gates, OS/file-system passthroughs to the injected collaborators,
// and a handful of build-environment helpers that have no real platform to
// query from inside this module, so they answer from static/derived data.
type intrinsicLibrary struct {
	static *funcid.Table

	fs     collab.FileSystem
	reg    collab.Registry
	os     collab.OSPlatform
	wave   collab.FeatureWave
	logger collab.Logger
}

const (
	iAdd funcid.ID = iota
	iSubtract
	iMultiply
	iDivide
	iModulo
	iBitwiseOr
	iBitwiseAnd
	iBitwiseXor
	iBitwiseNot
	iLeftShift
	iRightShift
	iRightShiftUnsigned
	iEnsureTrailingSlash
	iNormalizePath
	iNormalizeDirectory
	iEscape
	iUnescape
	iSubstringByAsciiChars
	iConvertToBase64
	iConvertFromBase64
	iValueOrDefault
	iVersionEquals
	iVersionNotEquals
	iVersionGreaterThan
	iVersionGreaterThanOrEquals
	iVersionLessThan
	iVersionLessThanOrEquals
	iGetTargetFrameworkIdentifier
	iGetTargetFrameworkVersion
	iIsTargetFrameworkCompatible
	iGetTargetPlatformIdentifier
	iGetTargetPlatformVersion
	iStableStringHash
	iAreFeaturesEnabled
	iCheckFeatureAvailability
	iIsOSPlatform
	iIsOsUnixLike
	iFileExists
	iDirectoryExists
	iGetRegistryValueFromView
	iGetDirectoryNameOfFileAbove
	iGetPathOfFileAbove
	iGetCurrentToolsDirectory
	iGetToolsDirectory32
	iGetToolsDirectory64
	iGetMSBuildSDKsPath
	iGetVsInstallRoot
	iGetMSBuildExtensionsPath
	iGetProgramFiles32
	iIsRunningFromVisualStudio
	iDoesTaskHostExist
	iRegisterBuildCheck
)

// hashAlgoSpec names the enum accepted by StableStringHash's second
// overload. The modern/legacy split mirrors the feature-wave-gated default
// the first overload picks automatically.
var hashAlgoSpec = coerce.EnumSpec{
	Namespace: "Microsoft.Build.Framework",
	TypeName:  "IntrinsicFunctions+StringHashingAlgorithm",
	Members:   []string{"Legacy", "Fnv1a"},
}

func newIntrinsicLibrary(fs collab.FileSystem, reg collab.Registry, os collab.OSPlatform, wave collab.FeatureWave, logger collab.Logger) *intrinsicLibrary {
	return &intrinsicLibrary{
		static: funcid.New([]string{
			"Add", "Subtract", "Multiply", "Divide", "Modulo",
			"BitwiseOr", "BitwiseAnd", "BitwiseXor", "BitwiseNot",
			"LeftShift", "RightShift", "RightShiftUnsigned",
			"EnsureTrailingSlash", "NormalizePath", "NormalizeDirectory",
			"Escape", "Unescape", "SubstringByAsciiChars", "ConvertToBase64", "ConvertFromBase64", "ValueOrDefault",
			"VersionEquals", "VersionNotEquals", "VersionGreaterThan", "VersionGreaterThanOrEquals", "VersionLessThan", "VersionLessThanOrEquals",
			"GetTargetFrameworkIdentifier", "GetTargetFrameworkVersion", "IsTargetFrameworkCompatible", "GetTargetPlatformIdentifier", "GetTargetPlatformVersion",
			"StableStringHash",
			"AreFeaturesEnabled", "CheckFeatureAvailability",
			"IsOSPlatform", "IsOsUnixLike", "FileExists", "DirectoryExists", "GetRegistryValueFromView", "GetDirectoryNameOfFileAbove", "GetPathOfFileAbove",
			"GetCurrentToolsDirectory", "GetToolsDirectory32", "GetToolsDirectory64", "GetMSBuildSDKsPath", "GetVsInstallRoot", "GetMSBuildExtensionsPath", "GetProgramFiles32", "IsRunningFromVisualStudio", "DoesTaskHostExist", "RegisterBuildCheck",
		}),
		fs: fs, reg: reg, os: os, wave: wave, logger: logger,
	}
}

func (l *intrinsicLibrary) ExecStatic(name string, args []value.V) Result {
	id, ok := l.static.Find(name)
	if !ok {
		return None()
	}
	switch id {
	case iAdd, iSubtract, iMultiply, iDivide, iModulo:
		return l.arithmetic(id, args)
	case iBitwiseOr, iBitwiseAnd, iBitwiseXor, iBitwiseNot:
		return l.bitwise(id, args)
	case iLeftShift, iRightShift, iRightShiftUnsigned:
		return l.shift(id, args)
	case iEnsureTrailingSlash:
		return l.pathHelper(args, ensureTrailingSlash)
	case iNormalizePath:
		return l.pathHelper(args, filepath.Clean)
	case iNormalizeDirectory:
		return l.pathHelper(args, func(s string) string { return ensureTrailingSlash(filepath.Clean(s)) })
	case iEscape:
		return l.escape(args)
	case iUnescape:
		return l.unescape(args)
	case iSubstringByAsciiChars:
		return l.substringByAsciiChars(args)
	case iConvertToBase64:
		return l.convertToBase64(args)
	case iConvertFromBase64:
		return l.convertFromBase64(args)
	case iValueOrDefault:
		return l.valueOrDefault(args)
	case iVersionEquals, iVersionNotEquals, iVersionGreaterThan, iVersionGreaterThanOrEquals, iVersionLessThan, iVersionLessThanOrEquals:
		return l.versionPredicate(id, args)
	case iGetTargetFrameworkIdentifier:
		return l.targetFrameworkIdentifier(args)
	case iGetTargetFrameworkVersion:
		return l.targetFrameworkVersion(args)
	case iIsTargetFrameworkCompatible:
		return l.isTargetFrameworkCompatible(args)
	case iGetTargetPlatformIdentifier:
		return l.targetPlatformIdentifier(args)
	case iGetTargetPlatformVersion:
		return l.targetPlatformVersion(args)
	case iStableStringHash:
		return l.stableStringHash(args)
	case iAreFeaturesEnabled:
		return l.areFeaturesEnabled(args)
	case iCheckFeatureAvailability:
		return l.checkFeatureAvailability(args)
	case iIsOSPlatform:
		return l.isOSPlatform(args)
	case iIsOsUnixLike:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Bool(l.os.IsUnixLike()))
	case iFileExists:
		return l.fileExists(args)
	case iDirectoryExists:
		return l.directoryExists(args)
	case iGetRegistryValueFromView:
		return l.getRegistryValueFromView(args)
	case iGetDirectoryNameOfFileAbove:
		return l.getDirectoryNameOfFileAbove(args)
	case iGetPathOfFileAbove:
		return l.getPathOfFileAbove(args)
	case iGetCurrentToolsDirectory, iGetToolsDirectory32, iGetToolsDirectory64,
		iGetMSBuildSDKsPath, iGetVsInstallRoot, iGetMSBuildExtensionsPath, iGetProgramFiles32:
		return l.environmentPath(id, args)
	case iIsRunningFromVisualStudio:
		if len(args) != 0 {
			return None()
		}
		return Ok(value.Bool(false))
	case iDoesTaskHostExist:
		return l.doesTaskHostExist(args)
	case iRegisterBuildCheck:
		return l.registerBuildCheck(args)
	default:
		return None()
	}
}

// arithmetic implements the integer-before-float widening rule: if both
// arguments coerce to Long, the Long overload runs; otherwise both must
// coerce to Double. No mixed-mode arithmetic (§4.4.11).
func (l *intrinsicLibrary) arithmetic(id funcid.ID, args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	if a, aok := coerce.ToInt64(args[0]); aok {
		if b, bok := coerce.ToInt64(args[1]); bok {
			return l.arithmeticLong(id, a, b)
		}
	}
	a, aok := coerce.ToDouble(args[0])
	b, bok := coerce.ToDouble(args[1])
	if !aok || !bok {
		return None()
	}
	return l.arithmeticDouble(id, a, b)
}

func (l *intrinsicLibrary) arithmeticLong(id funcid.ID, a, b int64) Result {
	switch id {
	case iAdd:
		return Ok(value.Long(a + b))
	case iSubtract:
		return Ok(value.Long(a - b))
	case iMultiply:
		return Ok(value.Long(a * b))
	case iDivide:
		if b == 0 {
			return Fail(fmt.Errorf("intrinsic: Divide: division by zero"))
		}
		return Ok(value.Long(a / b))
	case iModulo:
		if b == 0 {
			return Fail(fmt.Errorf("intrinsic: Modulo: division by zero"))
		}
		return Ok(value.Long(a % b))
	default:
		return None()
	}
}

func (l *intrinsicLibrary) arithmeticDouble(id funcid.ID, a, b float64) Result {
	switch id {
	case iAdd:
		return Ok(value.Double(a + b))
	case iSubtract:
		return Ok(value.Double(a - b))
	case iMultiply:
		return Ok(value.Double(a * b))
	case iDivide:
		return Ok(value.Double(a / b))
	case iModulo:
		return Ok(value.Double(math.Mod(a, b)))
	default:
		return None()
	}
}

func (l *intrinsicLibrary) bitwise(id funcid.ID, args []value.V) Result {
	if id == iBitwiseNot {
		if len(args) != 1 {
			return None()
		}
		a, ok := coerce.ToInt32(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Int(^a))
	}
	if len(args) != 2 {
		return None()
	}
	a, aok := coerce.ToInt32(args[0])
	b, bok := coerce.ToInt32(args[1])
	if !aok || !bok {
		return None()
	}
	switch id {
	case iBitwiseOr:
		return Ok(value.Int(a | b))
	case iBitwiseAnd:
		return Ok(value.Int(a & b))
	case iBitwiseXor:
		return Ok(value.Int(a ^ b))
	default:
		return None()
	}
}

// shift masks the shift count to its low 5 bits (32-bit shift, matching the
// platform's native int shift instruction — the documented resolution for
// out-of-range counts, see DESIGN.md).
func (l *intrinsicLibrary) shift(id funcid.ID, args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	a, aok := coerce.ToInt32(args[0])
	b, bok := coerce.ToInt32(args[1])
	if !aok || !bok {
		return None()
	}
	n := uint(b) & 0x1F
	switch id {
	case iLeftShift:
		return Ok(value.Int(a << n))
	case iRightShift:
		return Ok(value.Int(a >> n))
	case iRightShiftUnsigned:
		return Ok(value.Int(int32(uint32(a) >> n)))
	default:
		return None()
	}
}

// pathHelper implements EnsureTrailingSlash/NormalizePath/NormalizeDirectory,
// each accepting one string or, per §4.4.11, N strings joined first.
func (l *intrinsicLibrary) pathHelper(args []value.V, fn func(string) string) Result {
	switch len(args) {
	case 1:
		s, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		return Ok(value.Str(fn(s)))
	default:
		parts, ok := coerce.StringArrayFromArgs(args)
		if !ok {
			return None()
		}
		return Ok(value.Str(fn(filepath.Join(parts...))))
	}
}

func ensureTrailingSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") || strings.HasSuffix(s, string(filepath.Separator)) {
		return s
	}
	return s + string(filepath.Separator)
}

func (l *intrinsicLibrary) escape(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '%', '*', '?', '@', '$', '(', ')', ';':
			fmt.Fprintf(&sb, "%%%02x", r)
		default:
			sb.WriteRune(r)
		}
	}
	return Ok(value.Str(sb.String()))
}

func (l *intrinsicLibrary) unescape(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				sb.WriteByte(byte(n))
				i += 2
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return Ok(value.Str(sb.String()))
}

func (l *intrinsicLibrary) substringByAsciiChars(args []value.V) Result {
	if len(args) != 3 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	start, ok := coerce.ToInt32(args[1])
	if !ok {
		return None()
	}
	length, ok := coerce.ToInt32(args[2])
	if !ok {
		return None()
	}
	if start < 0 || length < 0 || int(start+length) > len(s) {
		return Fail(fmt.Errorf("intrinsic: SubstringByAsciiChars: index out of range"))
	}
	return Ok(value.Str(s[start : start+length]))
}

func (l *intrinsicLibrary) convertToBase64(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	return Ok(value.Str(base64.StdEncoding.EncodeToString([]byte(s))))
}

func (l *intrinsicLibrary) convertFromBase64(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Fail(fmt.Errorf("intrinsic: ConvertFromBase64: %w", err))
	}
	return Ok(value.Str(string(decoded)))
}

func (l *intrinsicLibrary) valueOrDefault(args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	s, isNull, ok := coerce.ToStringOpt(args[0])
	if !ok {
		return None()
	}
	if !isNull {
		return Ok(value.Str(s))
	}
	d, dNull, ok := coerce.ToStringOpt(args[1])
	if !ok {
		return None()
	}
	if dNull {
		return Ok(value.Null())
	}
	return Ok(value.Str(d))
}

func (l *intrinsicLibrary) versionPredicate(id funcid.ID, args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	a, aok := coerce.ToStr(args[0])
	b, bok := coerce.ToStr(args[1])
	if !aok || !bok {
		return None()
	}
	va, err := value.ParseVer(a)
	if err != nil {
		return Fail(fmt.Errorf("intrinsic: version predicate: %w", err))
	}
	vb, err := value.ParseVer(b)
	if err != nil {
		return Fail(fmt.Errorf("intrinsic: version predicate: %w", err))
	}
	c := va.Compare(vb)
	switch id {
	case iVersionEquals:
		return Ok(value.Bool(c == 0))
	case iVersionNotEquals:
		return Ok(value.Bool(c != 0))
	case iVersionGreaterThan:
		return Ok(value.Bool(c > 0))
	case iVersionGreaterThanOrEquals:
		return Ok(value.Bool(c >= 0))
	case iVersionLessThan:
		return Ok(value.Bool(c < 0))
	case iVersionLessThanOrEquals:
		return Ok(value.Bool(c <= 0))
	default:
		return None()
	}
}

// targetFramework is the parsed shape of a short target-framework moniker
// ("net472", "net6.0", "netstandard2.0", "netcoreapp3.1") or its long form
// (".NETFramework,Version=v4.7.2"). Only the two forms this dispatcher
// actually sees from an evaluated project file are recognized; anything
// else declines.
type targetFramework struct {
	identifier        string
	major, minor, fix int
	platform          string
	platformVersion   string
}

func parseTargetFramework(tfm string) (targetFramework, bool) {
	if strings.Contains(tfm, ",Version=") {
		return parseLongFormTFM(tfm)
	}
	return parseShortFormTFM(tfm)
}

func parseLongFormTFM(tfm string) (targetFramework, bool) {
	parts := strings.SplitN(tfm, ",Version=", 2)
	if len(parts) != 2 {
		return targetFramework{}, false
	}
	ver := strings.TrimPrefix(parts[1], "v")
	major, minor, fix := parseVersionTriplet(ver)
	return targetFramework{identifier: parts[0], major: major, minor: minor, fix: fix}, true
}

func parseShortFormTFM(tfm string) (targetFramework, bool) {
	body, platform, platformVersion := splitPlatform(tfm)
	switch {
	case strings.HasPrefix(body, "netstandard"):
		major, minor, fix := parseVersionTriplet(strings.TrimPrefix(body, "netstandard"))
		return targetFramework{identifier: ".NETStandard", major: major, minor: minor, fix: fix, platform: platform, platformVersion: platformVersion}, true
	case strings.HasPrefix(body, "netcoreapp"):
		major, minor, fix := parseVersionTriplet(strings.TrimPrefix(body, "netcoreapp"))
		return targetFramework{identifier: ".NETCoreApp", major: major, minor: minor, fix: fix, platform: platform, platformVersion: platformVersion}, true
	case strings.HasPrefix(body, "net") && strings.Contains(body, "."):
		major, minor, fix := parseVersionTriplet(strings.TrimPrefix(body, "net"))
		return targetFramework{identifier: ".NETCoreApp", major: major, minor: minor, fix: fix, platform: platform, platformVersion: platformVersion}, true
	case strings.HasPrefix(body, "net"):
		digits := strings.TrimPrefix(body, "net")
		if digits == "" {
			return targetFramework{}, false
		}
		major, minor, fix := 0, 0, 0
		switch len(digits) {
		case 2:
			major = int(digits[0] - '0')
			minor = int(digits[1] - '0')
		case 3:
			major = int(digits[0] - '0')
			minor = int(digits[1] - '0')
			fix = int(digits[2] - '0')
		default:
			return targetFramework{}, false
		}
		return targetFramework{identifier: ".NETFramework", major: major, minor: minor, fix: fix, platform: platform, platformVersion: platformVersion}, true
	default:
		return targetFramework{}, false
	}
}

func splitPlatform(body string) (core, platform, platformVersion string) {
	i := strings.Index(body, "-")
	if i < 0 {
		return body, "", ""
	}
	core = body[:i]
	rest := body[i+1:]
	j := 0
	for j < len(rest) && !(rest[j] >= '0' && rest[j] <= '9') {
		j++
	}
	return core, rest[:j], rest[j:]
}

func parseVersionTriplet(s string) (major, minor, fix int) {
	parts := strings.SplitN(s, ".", 3)
	nums := make([]int, 3)
	for i, p := range parts {
		if i >= 3 {
			break
		}
		n, err := strconv.Atoi(p)
		if err == nil {
			nums[i] = n
		}
	}
	return nums[0], nums[1], nums[2]
}

func (l *intrinsicLibrary) targetFrameworkIdentifier(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	tfm, ok := parseTargetFramework(s)
	if !ok {
		return None()
	}
	return Ok(value.Str(tfm.identifier))
}

func (l *intrinsicLibrary) targetFrameworkVersion(args []value.V) Result {
	var s string
	var fieldCount int32 = 2
	switch len(args) {
	case 1:
		var ok bool
		s, ok = coerce.ToStr(args[0])
		if !ok {
			return None()
		}
	case 2:
		var ok bool
		s, ok = coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		fieldCount, ok = coerce.ToInt32(args[1])
		if !ok {
			return None()
		}
	default:
		return None()
	}
	tfm, ok := parseTargetFramework(s)
	if !ok {
		return None()
	}
	v := value.Ver{Major: tfm.major, Minor: tfm.minor, Build: tfm.fix, Revision: -1}
	return Ok(value.Str("v" + v.StringN(int(fieldCount))))
}

func (l *intrinsicLibrary) isTargetFrameworkCompatible(args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	target, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	candidate, ok := coerce.ToStr(args[1])
	if !ok {
		return None()
	}
	t, ok := parseTargetFramework(target)
	if !ok {
		return None()
	}
	c, ok := parseTargetFramework(candidate)
	if !ok {
		return None()
	}
	if t.identifier != c.identifier {
		return Ok(value.Bool(false))
	}
	tv := value.Ver{Major: t.major, Minor: t.minor, Build: t.fix}
	cv := value.Ver{Major: c.major, Minor: c.minor, Build: c.fix}
	return Ok(value.Bool(tv.Compare(cv) >= 0))
}

func (l *intrinsicLibrary) targetPlatformIdentifier(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	tfm, ok := parseTargetFramework(s)
	if !ok {
		return None()
	}
	return Ok(value.Str(tfm.platform))
}

func (l *intrinsicLibrary) targetPlatformVersion(args []value.V) Result {
	if len(args) < 1 || len(args) > 2 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	tfm, ok := parseTargetFramework(s)
	if !ok {
		return None()
	}
	return Ok(value.Str(tfm.platformVersion))
}

// stableStringHash implements the feature-wave-gated hash selection (§4.4.11):
// the one-arg overload consults the FeatureWave collaborator for "17.10" to
// pick between the legacy and modern algorithm; the two-arg overload names
// the algorithm explicitly and skips the gate entirely.
func (l *intrinsicLibrary) stableStringHash(args []value.V) Result {
	switch len(args) {
	case 1:
		s, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		modern := l.wave != nil && l.wave.AreFeaturesEnabled(value.NewVer(17, 10))
		if modern {
			return Ok(value.Int(fnv1aHash(s)))
		}
		return Ok(value.Int(legacyStableHash(s)))
	case 2:
		s, ok := coerce.ToStr(args[0])
		if !ok {
			return None()
		}
		algo, ok := coerce.ToEnum(args[1], hashAlgoSpec)
		if !ok {
			return None()
		}
		if algo == "Fnv1a" {
			return Ok(value.Int(fnv1aHash(s)))
		}
		return Ok(value.Int(legacyStableHash(s)))
	default:
		return None()
	}
}

func fnv1aHash(s string) int32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int32(h.Sum32())
}

// legacyStableHash mirrors the pre-wave-17.10 string hash: .NET's classic
// polynomial rolling hash over UTF-16 code units, not FNV-1a.
func legacyStableHash(s string) int32 {
	var hash1, hash2 int32 = 5381, 5381
	units := utf16.Encode([]rune(s))
	for i := 0; i < len(units); i += 2 {
		hash1 = ((hash1 << 5) + hash1) ^ int32(units[i])
		if i+1 < len(units) {
			hash2 = ((hash2 << 5) + hash2) ^ int32(units[i+1])
		}
	}
	return hash1 + hash2*1566083941
}

func (l *intrinsicLibrary) areFeaturesEnabled(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	v, err := value.ParseVer(s)
	if err != nil {
		return None()
	}
	return Ok(value.Bool(l.wave.AreFeaturesEnabled(v)))
}

func (l *intrinsicLibrary) checkFeatureAvailability(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	status := l.wave.CheckFeatureAvailability(s)
	switch status {
	case collab.FeatureAvailable:
		return Ok(value.Str("Available"))
	case collab.FeatureNotAvailable:
		return Ok(value.Str("NotAvailable"))
	case collab.FeaturePreview:
		return Ok(value.Str("Preview"))
	default:
		return Ok(value.Str("Undefined"))
	}
}

func (l *intrinsicLibrary) isOSPlatform(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	return Ok(value.Bool(l.os.IsOSPlatform(strings.ToUpper(s))))
}

func (l *intrinsicLibrary) fileExists(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	return Ok(value.Bool(l.fs.FileExists(s)))
}

func (l *intrinsicLibrary) directoryExists(args []value.V) Result {
	if len(args) != 1 {
		return None()
	}
	s, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	return Ok(value.Bool(l.fs.DirectoryExists(s)))
}

// getRegistryValueFromView passes through to the Registry collaborator
// (§4.6): key, valueName, a default, and a variadic tail of view names.
// An unrecognized view name is the one case in this method that fails
// rather than declines, per §7's "malformed registry view names" example.
func (l *intrinsicLibrary) getRegistryValueFromView(args []value.V) Result {
	if len(args) < 3 {
		return None()
	}
	key, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	valueName, ok := coerce.ToStr(args[1])
	if !ok {
		return None()
	}
	def := args[2]
	views := make([]collab.RegistryView, 0, len(args)-3)
	for _, a := range args[3:] {
		name, ok := coerce.ToStr(a)
		if !ok {
			return None()
		}
		switch collab.RegistryView(name) {
		case collab.RegistryViewDefault, collab.RegistryView32, collab.RegistryView64:
			views = append(views, collab.RegistryView(name))
		default:
			return Fail(fmt.Errorf("intrinsic: GetRegistryValueFromView: unrecognized registry view %q", name))
		}
	}
	return Ok(l.reg.GetValue(key, valueName, def, views))
}

func (l *intrinsicLibrary) getDirectoryNameOfFileAbove(args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	startDir, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	fileName, ok := coerce.ToStr(args[1])
	if !ok {
		return None()
	}
	dir, found := l.fs.DirectoryNameOfFileAbove(fileName, startDir)
	if !found {
		return Ok(value.Str(""))
	}
	return Ok(value.Str(dir))
}

func (l *intrinsicLibrary) getPathOfFileAbove(args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	startDir, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	fileName, ok := coerce.ToStr(args[1])
	if !ok {
		return None()
	}
	path, found := l.fs.PathOfFileAbove(fileName, startDir)
	if !found {
		return Ok(value.Str(""))
	}
	return Ok(value.Str(path))
}

// environmentPath answers the build-environment location helpers. None of
// these query a real Visual Studio or SDK install from inside this module
// (there is none to find); each returns the empty string, the same answer
// the platform gives on a machine with no matching tools installed, so
// callers that branch on "was anything found" see consistent behavior.
func (l *intrinsicLibrary) environmentPath(id funcid.ID, args []value.V) Result {
	if len(args) != 0 {
		return None()
	}
	return Ok(value.Str(""))
}

func (l *intrinsicLibrary) doesTaskHostExist(args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	if _, ok := coerce.ToStr(args[0]); !ok {
		return None()
	}
	if _, ok := coerce.ToStr(args[1]); !ok {
		return None()
	}
	return Ok(value.Bool(false))
}

// registerBuildCheck logs the registration request through the injected
// Logger collaborator; this dispatcher has no build-check host to actually
// register an analyzer assembly with.
func (l *intrinsicLibrary) registerBuildCheck(args []value.V) Result {
	if len(args) != 2 {
		return None()
	}
	projectPath, ok := coerce.ToStr(args[0])
	if !ok {
		return None()
	}
	pathToAssembly, ok := coerce.ToStr(args[1])
	if !ok {
		return None()
	}
	if l.logger != nil {
		l.logger.LogMessage("RegisterBuildCheck: project=%s assembly=%s", projectPath, pathToAssembly)
	}
	return Ok(value.Null())
}

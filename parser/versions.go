package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OASVersion represents each canonical version of the OpenAPI Specification that may be found at:
// https://github.com/OAI/OpenAPI-Specification/releases
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion300 OpenAPI Specification Version 3.0.0
	OASVersion300
	// OASVersion301  OpenAPI Specification Version 3.0.1
	OASVersion301
	// OASVersion302  OpenAPI Specification Version 3.0.2
	OASVersion302
	// OASVersion303  OpenAPI Specification Version 3.0.3
	OASVersion303
	// OASVersion304  OpenAPI Specification Version 3.0.4
	OASVersion304
	// OASVersion310  OpenAPI Specification Version 3.1.0
	OASVersion310
	// OASVersion311  OpenAPI Specification Version 3.1.1
	OASVersion311
	// OASVersion312  OpenAPI Specification Version 3.1.2
	OASVersion312
	// OASVersion320  OpenAPI Specification Version 3.2.0
	OASVersion320
)

// seriesInfo pre-computed info for a major.minor version series
type seriesInfo struct {
	// patches maps patch version -> OASVersion for this series
	patches map[int]OASVersion
	// maxPatch is the highest known patch version in this series
	maxPatch int
}

var (
	versionToString = map[OASVersion]string{
		OASVersion20:  "2.0",
		OASVersion300: "3.0.0",
		OASVersion301: "3.0.1",
		OASVersion302: "3.0.2",
		OASVersion303: "3.0.3",
		OASVersion304: "3.0.4",
		OASVersion310: "3.1.0",
		OASVersion311: "3.1.1",
		OASVersion312: "3.1.2",
		OASVersion320: "3.2.0",
	}

	stringToVersion = func() map[string]OASVersion {
		m := make(map[string]OASVersion, len(versionToString))
		for k, v := range versionToString {
			m[v] = k
		}
		return m
	}()

	// versionSeriesLookup maps "major.minor" -> seriesInfo
	// e.g., "3.0" -> {patches: {0: 300, 1: 301, 2: 302, 3: 303, 4: 304}, maxPatch: 4}
	versionSeriesLookup = func() map[string]seriesInfo {
		m := make(map[string]seriesInfo)
		for oasVer, verStr := range versionToString {
			if oasVer == OASVersion20 {
				continue // 2.0 is special case
			}
			v, err := parseVersion(verStr)
			if err != nil {
				continue
			}
			key := seriesKey(v.major, v.minor)
			info, exists := m[key]
			if !exists {
				info = seriesInfo{patches: make(map[int]OASVersion), maxPatch: -1}
			}
			info.patches[v.patch] = oasVer
			if v.patch > info.maxPatch {
				info.maxPatch = v.patch
			}
			m[key] = info
		}
		return m
	}()
)

// seriesKey returns a string key for major.minor lookup (e.g., "3.0", "3.1")
func seriesKey(major, minor int) string {
	return strconv.Itoa(major) + "." + strconv.Itoa(minor)
}

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a valid version
func (v OASVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// Is3x returns true for every OAS 3.x version (3.0.x, 3.1.x and 3.2.x).
func (v OASVersion) Is3x() bool {
	return v >= OASVersion300 && v <= OASVersion320
}

// Series returns the wildcard series label of the version (e.g., "3.0.x"),
// or "2.0" for Swagger documents.
func (v OASVersion) Series() string {
	if v == OASVersion20 {
		return "2.0"
	}
	ver, err := parseVersion(v.String())
	if err != nil {
		return "unknown"
	}
	return seriesKey(ver.major, ver.minor) + ".x"
}

// OAS3Series returns the sorted series labels of every known OAS 3.x version.
func OAS3Series() []string {
	seen := make(map[string]bool)
	var out []string
	for v := OASVersion300; v <= OASVersion320; v++ {
		s := v.Series()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ParseVersion will attempt to parse the string s into an OASVersion, and returns false if not valid.
// This function supports:
// 1. Exact version matches (e.g., "2.0", "3.0.3")
// 2. Future patch versions in known major.minor series (e.g., "3.0.5" maps to "3.0.4")
// 3. Pre-release versions (e.g., "3.0.0-rc0") map to closest match without exceeding base version
func ParseVersion(s string) (OASVersion, bool) {
	if v, ok := stringToVersion[s]; ok {
		return v, true
	}

	ver, err := parseVersion(s)
	if err != nil {
		return Unknown, false
	}

	switch ver.major {
	case 2:
		// only 2.0 is supported
		if ver.minor == 0 {
			return OASVersion20, true
		}
		return Unknown, false
	case 3:
		return findClosestVersion(ver.major, ver.minor, ver.patch)
	}
	return Unknown, false
}

// findClosestVersion finds the closest known version that doesn't exceed major.minor.patch
func findClosestVersion(major, minor, patch int) (OASVersion, bool) {
	info, exists := versionSeriesLookup[seriesKey(major, minor)]
	if !exists {
		return Unknown, false
	}

	if v, ok := info.patches[patch]; ok {
		return v, true
	}

	if patch > info.maxPatch {
		return info.patches[info.maxPatch], true
	}

	for p := patch; p >= 0; p-- {
		if v, ok := info.patches[p]; ok {
			return v, true
		}
	}

	return Unknown, false
}

// version represents a semantic version with major, minor, and patch components.
type version struct {
	major      int
	minor      int
	patch      int
	prerelease string
}

// parseVersion parses a semantic version string into a version struct.
// Supports "major.minor.patch" with an optional "-prerelease" suffix.
func parseVersion(s string) (*version, error) {
	var prerelease string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		prerelease = s[idx+1:]
		s = s[:idx]
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 || major > math.MaxInt32 {
		return nil, fmt.Errorf("invalid major version: %q", parts[0])
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 || minor > math.MaxInt32 {
		return nil, fmt.Errorf("invalid minor version: %q", parts[1])
	}

	patch := 0
	if len(parts) == 3 {
		patch, err = strconv.Atoi(parts[2])
		if err != nil || patch < 0 || patch > math.MaxInt32 {
			return nil, fmt.Errorf("invalid patch version: %q", parts[2])
		}
	}

	return &version{
		major:      major,
		minor:      minor,
		patch:      patch,
		prerelease: prerelease,
	}, nil
}

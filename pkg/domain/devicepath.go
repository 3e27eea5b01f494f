package domain

import "strings"

// DevicePath is an ordered sequence of device identifiers describing a
// root-to-device walk, e.g. ["main", "net3", "term1"].
type DevicePath struct {
	Segments []string `json:"segments" yaml:"segments"`
}

// ParseDevicePath parses a "/"-delimited path string. Empty segments are
// dropped, so leading, trailing and duplicate slashes are tolerated:
// "/a//b/" parses the same as "a/b".
func ParseDevicePath(s string) DevicePath {
	parts := strings.Split(s, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return DevicePath{Segments: segments}
}

// String joins the segments with "/". No leading slash is emitted.
func (p DevicePath) String() string {
	return strings.Join(p.Segments, "/")
}

// IsEmpty reports whether the path has no segments.
func (p DevicePath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Equal reports segment-wise equality.
func (p DevicePath) Equal(other DevicePath) bool {
	if len(p.Segments) != len(other.Segments) {
		return false
	}
	for i, s := range p.Segments {
		if s != other.Segments[i] {
			return false
		}
	}
	return true
}

package version

import "fmt"

// Version represents a semantic version with major, minor, patch components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Decode unpacks a version encoded as major*10000 + minor*100 + patch,
// the form returned by pango_version and similar C library calls.
func Decode(encoded int) (Version, error) {
	if encoded < 0 {
		return Version{}, fmt.Errorf("invalid encoded version: %d", encoded)
	}
	return Version{
		Major: encoded / 10000,
		Minor: encoded / 100 % 100,
		Patch: encoded % 100,
	}, nil
}

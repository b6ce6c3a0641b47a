package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a canonical three-part semantic version. Major and minor are
// always present in the repository's encoding; patch defaults to zero.
type Version struct {
	Major int
	Minor int
	Patch int
}

// DecodeVersionToken decodes the repository's compact directory-name
// encoding of a version. The first character is the major version; if more
// than one character remains, the last character is the patch and everything
// in between is the minor, otherwise the patch is zero and the remainder is
// the minor.
func DecodeVersionToken(token string) (Version, error) {
	if token == "" {
		return Version{}, zerr.Wrap(ErrBadVersionToken, "empty version token")
	}
	if len(token) < 2 {
		return Version{}, zerr.With(ErrBadVersionToken, "token", token)
	}

	major := token[:1]
	rest := token[1:]

	minor := rest
	patch := "0"
	if len(rest) > 1 {
		minor = rest[:len(rest)-1]
		patch = rest[len(rest)-1:]
	}

	v := Version{}
	var err error
	if v.Major, err = strconv.Atoi(major); err != nil {
		return Version{}, zerr.With(ErrBadVersionToken, "token", token)
	}
	if v.Minor, err = strconv.Atoi(minor); err != nil {
		return Version{}, zerr.With(ErrBadVersionToken, "token", token)
	}
	if v.Patch, err = strconv.Atoi(patch); err != nil {
		return Version{}, zerr.With(ErrBadVersionToken, "token", token)
	}
	return v, nil
}

// ParseVersion parses a dotted version string such as "5.12.4". The patch
// part may be omitted and defaults to zero.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, zerr.With(ErrBadVersion, "version", s)
	}
	if len(parts) == 2 {
		parts = append(parts, "0")
	}

	v := Version{}
	for i, dst := range []*int{&v.Major, &v.Minor, &v.Patch} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, zerr.With(ErrBadVersion, "version", s)
		}
		*dst = n
	}
	return v, nil
}

// String returns the dotted form, e.g. "5.12.4".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Token returns the flat directory-path segment for the version: its digits
// with separators removed, as used in request URLs and metadata package
// names. Token is the left-inverse of DecodeVersionToken for the token
// shapes the repository produces; tokens that elide a zero patch re-encode
// with the patch digit appended.
func (v Version) Token() string {
	return fmt.Sprintf("%d%d%d", v.Major, v.Minor, v.Patch)
}

// Less orders versions for stable listing output.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor < o.Minor
	}
	return v.Patch < o.Patch
}

// Package naming produces unique artifact file names for generated
// trajectories, e.g. "2D-brownian-motion-1718000000.csv".
package naming

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scheme selects how the unique suffix is produced.
type Scheme string

const (
	// Timestamp appends the current Unix time in seconds. Two names requested
	// within the same second collide; use UUID when that matters.
	Timestamp Scheme = "timestamp"
	// UUID appends a random RFC 4122 UUID.
	UUID Scheme = "uuid"
)

// ErrUnknownScheme indicates an unsupported naming scheme.
var ErrUnknownScheme = errors.New("naming: unknown scheme")

// ParseScheme maps a scheme name (case-insensitive) to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case Timestamp:
		return Timestamp, nil
	case UUID:
		return UUID, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownScheme)
	}
}

// Namer builds unique names. Now and NewID are injectable for tests.
type Namer struct {
	Scheme Scheme
	Now    func() time.Time
	NewID  func() string
}

// New returns a Namer for scheme with wall-clock time and random UUIDs.
func New(scheme Scheme) *Namer {
	return &Namer{Scheme: scheme, Now: time.Now, NewID: uuid.NewString}
}

// Name returns "<prefix>-<suffix>.<ext>". An empty prefix is kept as is
// ("-<suffix>.<ext>"); an empty ext drops the dot.
func (n *Namer) Name(prefix, ext string) (string, error) {
	var suffix string
	switch n.Scheme {
	case Timestamp:
		suffix = fmt.Sprintf("%d", n.Now().Unix())
	case UUID:
		suffix = n.NewID()
	default:
		return "", fmt.Errorf("%q: %w", n.Scheme, ErrUnknownScheme)
	}

	name := prefix + "-" + suffix
	if ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}

	return name, nil
}

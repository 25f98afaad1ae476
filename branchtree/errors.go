// errors.go — sentinel errors for the branchtree package.
//
// All load-time failures surface as one of the sentinels below; callers
// match them with errors.Is. Context (line numbers, offending ids) is
// attached with fmt.Errorf's %w, never baked into the sentinel message
// itself.

package branchtree

import "errors"

var (
	// ErrMetaMissing is returned when instrumentation_meta.txt cannot be
	// opened. A read failure while parsing it is reported as
	// ErrMetaMalformed.
	ErrMetaMissing = errors.New("branchtree: instrumentation metadata unreadable")

	// ErrMetaMalformed is returned when instrumentation_meta.txt does not
	// contain two whitespace-separated integers.
	ErrMetaMalformed = errors.New("branchtree: instrumentation metadata malformed")

	// ErrEdgesMissing is returned when edges.txt cannot be opened. A read
	// failure while parsing it is reported as ErrEdgesMalformed.
	ErrEdgesMissing = errors.New("branchtree: edges file unreadable")

	// ErrEdgesMalformed is returned when edges.txt contains a line that is
	// not a pair of whitespace-separated integers.
	ErrEdgesMalformed = errors.New("branchtree: edges file malformed")

	// ErrTooManyExits is returned when 2*brCount exceeds MaxExits; this is
	// a hard configuration error, never silently truncated.
	ErrTooManyExits = errors.New("branchtree: exit count exceeds MaxExits")

	// ErrExitOutOfRange is returned when an edge references an exit id
	// outside [0, 2*brCount).
	ErrExitOutOfRange = errors.New("branchtree: exit id out of range")

	// ErrCycle is returned when walking parent pointers from some exit
	// never reaches a root, meaning edges.txt encodes a cycle.
	ErrCycle = errors.New("branchtree: cycle detected in parent edges")
)

package branchtree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Wu-yunxiang/coverme-tree-select/predicate"
)

// Canonical paths for the two driver-supplied artifacts. One source
// variant read a placeholder path, "to do (by configs)" — these are the
// real ones.
const (
	DefaultMetaPath  = "output/instrumentation_meta.txt"
	DefaultEdgesPath = "output/edges.txt"
)

// config holds Load's resolved options.
type config struct {
	metaPath    string
	edgesPath   string
	metaReader  io.Reader
	edgesReader io.Reader
	maxExits    int32
}

// Option configures Load.
type Option func(*config)

// WithMetaPath overrides the instrumentation-metadata file path.
func WithMetaPath(path string) Option {
	return func(c *config) { c.metaPath = path }
}

// WithEdgesPath overrides the edges file path.
func WithEdgesPath(path string) Option {
	return func(c *config) { c.edgesPath = path }
}

// WithMetaReader supplies the metadata contents directly, bypassing the
// filesystem. Intended for tests.
func WithMetaReader(r io.Reader) Option {
	return func(c *config) { c.metaReader = r }
}

// WithEdgesReader supplies the edges contents directly, bypassing the
// filesystem. Intended for tests.
func WithEdgesReader(r io.Reader) Option {
	return func(c *config) { c.edgesReader = r }
}

// WithMaxExits overrides the MaxExits bound enforced at load time.
// Intended for tests exercising the bound itself; production callers
// should rely on the default (predicate.MaxExits).
func WithMaxExits(n int32) Option {
	return func(c *config) { c.maxExits = n }
}

// Load reads instrumentation_meta.txt and edges.txt (or their overrides)
// and builds an immutable Tree. It fails closed: any malformed input,
// out-of-range exit id, too-large exit space, or cycle in the edges is a
// configuration error and Load returns a non-nil error rather than
// guessing.
func Load(opts ...Option) (*Tree, error) {
	cfg := config{
		metaPath:  DefaultMetaPath,
		edgesPath: DefaultEdgesPath,
		maxExits:  predicate.MaxExits,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	metaR, closeMeta, err := openOrUse(cfg.metaReader, cfg.metaPath, ErrMetaMissing)
	if err != nil {
		return nil, err
	}
	defer closeMeta()

	brCount, argCount, err := parseMeta(metaR)
	if err != nil {
		return nil, err
	}

	numExits := 2 * brCount
	if numExits > cfg.maxExits {
		return nil, fmt.Errorf("%w: 2*brCount=%d > %d", ErrTooManyExits, numExits, cfg.maxExits)
	}

	edgesR, closeEdges, err := openOrUse(cfg.edgesReader, cfg.edgesPath, ErrEdgesMissing)
	if err != nil {
		return nil, err
	}
	defer closeEdges()

	edges, err := parseEdges(edgesR)
	if err != nil {
		return nil, err
	}

	return build(brCount, argCount, edges, numExits)
}

func openOrUse(r io.Reader, path string, missingErr error) (io.Reader, func(), error) {
	if r != nil {
		return r, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", missingErr, path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// parseMeta reads the first two whitespace-separated integers:
// brCount argCount.
func parseMeta(r io.Reader) (brCount, argCount int32, err error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	brCount, err = nextInt(sc)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: brCount: %v", ErrMetaMalformed, err)
	}
	argCount, err = nextInt(sc)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: argCount: %v", ErrMetaMalformed, err)
	}
	if brCount < 0 || argCount < 0 {
		return 0, 0, fmt.Errorf("%w: negative brCount/argCount", ErrMetaMalformed)
	}
	return brCount, argCount, nil
}

// parseEdges reads whitespace-separated (parent, child) pairs until EOF.
func parseEdges(r io.Reader) ([][2]int32, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var edges [][2]int32
	for {
		u, err := nextInt(sc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parent: %v", ErrEdgesMalformed, err)
		}
		v, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: child: %v", ErrEdgesMalformed, err)
		}
		edges = append(edges, [2]int32{u, v})
	}
	return edges, nil
}

func nextInt(sc *bufio.Scanner) (int32, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	n, err := strconv.ParseInt(sc.Text(), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// build constructs the Tree from parsed edges: parent/children arrays,
// then a breadth-first pass from the roots (self-parented exits) to
// compute prefix[] and prefixIndex[]. Any exit unreached by that pass is
// part of a cycle in the parent edges, which is refused rather than
// looped on forever.
func build(brCount, argCount int32, edges [][2]int32, numExits int32) (*Tree, error) {
	parent := make([]int32, numExits)
	for i := range parent {
		parent[i] = int32(i)
	}

	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= numExits || v < 0 || v >= numExits {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrExitOutOfRange, u, v)
		}
		parent[v] = u // duplicates overwrite; the last parent wins
	}

	// children[] is derived from the final parent[], not accumulated
	// straight off the edge list: an exit can appear as a child on more
	// than one edge line, and only its last-wins parent should carry it
	// as a child, so prefix/depth stay consistent with Parent for the
	// same exit.
	children := make([][]int32, numExits)
	for v, u := range parent {
		if int32(v) != u {
			children[u] = append(children[u], int32(v))
		}
	}

	prefix := make([][]int32, numExits)
	prefixIndex := make([]map[int32]int32, numExits)
	visited := make([]bool, numExits)
	queue := make([]int32, 0, numExits)

	for e := int32(0); e < numExits; e++ {
		if parent[e] == e {
			prefix[e] = []int32{e}
			prefixIndex[e] = map[int32]int32{e: 0}
			visited[e] = true
			queue = append(queue, e)
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, c := range children[u] {
			if visited[c] {
				continue
			}
			visited[c] = true
			parentPrefix := prefix[u]
			np := make([]int32, len(parentPrefix)+1)
			copy(np, parentPrefix)
			np[len(parentPrefix)] = c
			prefix[c] = np

			idx := make(map[int32]int32, len(np))
			for i, p := range np {
				idx[p] = int32(i)
			}
			prefixIndex[c] = idx

			queue = append(queue, c)
		}
	}

	for e := int32(0); e < numExits; e++ {
		if !visited[e] {
			return nil, fmt.Errorf("%w: exit %d unreachable from any root", ErrCycle, e)
		}
	}

	return &Tree{
		brCount:     brCount,
		argCount:    argCount,
		parent:      parent,
		children:    children,
		prefix:      prefix,
		prefixIndex: prefixIndex,
	}, nil
}

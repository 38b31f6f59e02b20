package datum

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/wippyai/avro-datum/errors"
)

type segmentKind uint8

const (
	segField segmentKind = iota
	segIndex
	segKey
)

type segment struct {
	name  string
	index int
	kind  segmentKind
}

func (s segment) String() string {
	switch s.kind {
	case segIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	case segKey:
		return "[" + strconv.Quote(s.name) + "]"
	}
	if !plainField(s.name) {
		return "[" + strconv.Quote(s.name) + "]"
	}
	return s.name
}

// plainField reports whether name parses back as a bare field segment.
func plainField(name string) bool {
	return name != "" && !strings.ContainsAny(name, `.[]"`)
}

// JoinField appends the segment selecting record field name to path. Names
// that would not parse as a bare field are written as ["name"].
func JoinField(path, name string) string {
	if !plainField(name) {
		return JoinKey(path, name)
	}
	if path == "" {
		return name
	}
	return path + "." + name
}

// JoinKey appends a ["key"] segment to path.
func JoinKey(path, key string) string {
	return path + "[" + strconv.Quote(key) + "]"
}

// JoinIndex appends an [i] segment to path.
func JoinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// parsePath splits a path such as `user.tags[2]["home dir"]` into segments.
func parsePath(p string) ([]segment, error) {
	var segs []segment
	i := 0
	for i < len(p) {
		switch p[i] {
		case '.':
			if i == 0 || i == len(p)-1 || p[i+1] == '.' || p[i+1] == '[' {
				return nil, errors.InvalidInput(errors.PhaseLookup, []string{p}, "empty field name")
			}
			i++
			continue
		case '[':
			rest := p[i+1:]
			if strings.HasPrefix(rest, `"`) {
				quoted, err := strconv.QuotedPrefix(rest)
				if err != nil {
					return nil, errors.InvalidInput(errors.PhaseLookup, []string{p}, "malformed quoted key")
				}
				key, _ := strconv.Unquote(quoted)
				end := i + 1 + len(quoted)
				if end >= len(p) || p[end] != ']' {
					return nil, errors.InvalidInput(errors.PhaseLookup, []string{p}, "missing ] after key")
				}
				segs = append(segs, segment{name: key, kind: segKey})
				i = end + 1
				if err := checkAfterBracket(p, i); err != nil {
					return nil, err
				}
				continue
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, errors.InvalidInput(errors.PhaseLookup, []string{p}, "missing ]")
			}
			n, err := strconv.Atoi(rest[:end])
			if err != nil || n < 0 {
				return nil, errors.InvalidInput(errors.PhaseLookup, []string{p}, "index must be a non-negative integer")
			}
			segs = append(segs, segment{index: n, kind: segIndex})
			i += end + 2
			if err := checkAfterBracket(p, i); err != nil {
				return nil, err
			}
		default:
			end := strings.IndexAny(p[i:], ".[")
			if end < 0 {
				end = len(p) - i
			}
			segs = append(segs, segment{name: p[i : i+end], kind: segField})
			i += end
		}
	}
	return segs, nil
}

// checkAfterBracket requires a closed bracket segment to be followed by '.',
// '[' or the end of the path.
func checkAfterBracket(p string, i int) error {
	if i < len(p) && p[i] != '.' && p[i] != '[' {
		return errors.InvalidInput(errors.PhaseLookup, []string{p}, "expected . or [ after ]")
	}
	return nil
}

func unwrapUnion(d Datum) Datum {
	for {
		u, ok := d.(*Union)
		if !ok {
			return d
		}
		d = u.branch
	}
}

// Lookup follows path from d and returns the datum it names without taking
// a reference. Field segments select record fields or map keys, [N] selects
// an array element and ["key"] selects a map entry or record field. Unions
// along the way are entered transparently. An empty path returns d.
func Lookup(d Datum, path string) (Datum, error) {
	if d == nil {
		return nil, errors.NilPointer(errors.PhaseLookup, nil, "datum")
	}
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	cur := d
	trail := make([]string, 0, len(segs))
	for _, s := range segs {
		trail = append(trail, s.String())
		cur = unwrapUnion(cur)
		next, err := step(cur, s)
		if err != nil {
			return nil, errors.New(errors.PhaseLookup, lookupKind(err)).
				Path(trail...).Cause(err).Build()
		}
		cur = next
	}
	return cur, nil
}

func step(cur Datum, s segment) (Datum, error) {
	switch s.kind {
	case segIndex:
		a, err := AsArray(cur)
		if err != nil {
			return nil, err
		}
		return a.Get(s.index)
	default:
		switch v := cur.(type) {
		case *Record:
			return v.GetField(s.name)
		case *Map:
			return v.Get(s.name)
		}
		return nil, errors.TypeMismatch(errors.PhaseAccess, nil, "record or map", cur.Kind().String())
	}
}

func lookupKind(err error) errors.Kind {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return errors.KindInvalidInput
}

// SkipChildren returned from a WalkFunc skips the children of the current
// datum.
var SkipChildren = stderrors.New("skip children")

// WalkFunc visits one datum. path is the Lookup path that reaches d from
// the root. Returning SkipChildren skips d's children; any other error stops
// the walk.
type WalkFunc func(path string, d Datum) error

// Walk visits d and its descendants in pre-order. Records are visited in
// declaration order and maps in sorted key order.
func Walk(d Datum, fn WalkFunc) error {
	err := walk("", d, fn)
	if err == SkipChildren {
		return nil
	}
	return err
}

func walk(path string, d Datum, fn WalkFunc) error {
	if err := fn(path, d); err != nil {
		return err
	}
	switch v := d.(type) {
	case *Record:
		for name, child := range v.Fields() {
			if err := walkChild(JoinField(path, name), child, fn); err != nil {
				return err
			}
		}
	case *Map:
		for k, child := range v.All() {
			if err := walkChild(JoinKey(path, k), child, fn); err != nil {
				return err
			}
		}
	case *Array:
		for i, child := range v.All() {
			if err := walkChild(JoinIndex(path, i), child, fn); err != nil {
				return err
			}
		}
	case *Union:
		return walkChild(path, v.branch, fn)
	}
	return nil
}

func walkChild(path string, d Datum, fn WalkFunc) error {
	err := walk(path, d, fn)
	if err == SkipChildren {
		return nil
	}
	return err
}

package datum

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/avro-datum/errors"
)

// buildPerson returns:
//
//	record com.example.Person {
//	  name: string "Ada"
//	  tags: array [ "a", "b" ]
//	  props: map { "home dir": long 7 }
//	  nick: union 1 string "ada"
//	}
func buildPerson(t *testing.T, f *Factory) *Record {
	t.Helper()
	r, err := f.NewRecord("Person", "com.example")
	if err != nil {
		t.Fatal(err)
	}
	set := func(name string, d Datum) {
		if err := r.SetField(name, d); err != nil {
			t.Fatal(err)
		}
		Decref(d)
	}
	name, _ := f.NewString("Ada")
	set("name", name)

	tags := f.NewArray()
	for _, s := range []string{"a", "b"} {
		d, _ := f.NewString(s)
		_ = tags.Append(d)
		Decref(d)
	}
	set("tags", tags)

	props := f.NewMap()
	seven := f.NewInt64(7)
	_ = props.Put("home dir", seven)
	Decref(seven)
	set("props", props)

	nick, _ := f.NewString("ada")
	u, _ := f.NewUnion(1, nick)
	Decref(nick)
	set("nick", u)
	return r
}

func TestLookup(t *testing.T) {
	f, tr := newTestFactory(t)
	r := buildPerson(t, f)

	tests := []struct {
		path string
		want string
	}{
		{"name", `string "Ada"`},
		{"tags[1]", `string "b"`},
		{`props["home dir"]`, "long 7"},
		{`["name"]`, `string "Ada"`},
		{"nick", `union 1 string "ada"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d, err := Lookup(r, tt.path)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.path, err)
			}
			if got := strings.TrimSpace(Dump(d)); got != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}

	root, err := Lookup(r, "")
	if err != nil || root != Datum(r) {
		t.Errorf("empty path = %v, %v", root, err)
	}

	Decref(r)
	checkNoLeaks(t, tr)
}

func TestLookupThroughUnion(t *testing.T) {
	f, tr := newTestFactory(t)
	inner, _ := f.NewRecord("Inner", "")
	v := f.NewInt32(5)
	_ = inner.SetField("v", v)
	Decref(v)
	u, _ := f.NewUnion(1, inner)
	Decref(inner)

	d, err := Lookup(u, "v")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := GetInt32(d); got != 5 {
		t.Errorf("v = %d, want 5", got)
	}

	Decref(u)
	checkNoLeaks(t, tr)
}

func TestLookupErrors(t *testing.T) {
	f, tr := newTestFactory(t)
	r := buildPerson(t, f)

	tests := []struct {
		path string
		kind errors.Kind
	}{
		{"missing", errors.KindNotFound},
		{"tags[5]", errors.KindOutOfBounds},
		{"name[0]", errors.KindTypeMismatch},
		{"name.x", errors.KindTypeMismatch},
		{"tags[", errors.KindInvalidInput},
		{"tags[x]", errors.KindInvalidInput},
		{`props["open]`, errors.KindInvalidInput},
		{".name", errors.KindInvalidInput},
		{"name..x", errors.KindInvalidInput},
		{"props.[0]", errors.KindInvalidInput},
		{"tags[0]name", errors.KindInvalidInput},
		{`props["home dir"]x`, errors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Lookup(r, tt.path)
			if err == nil {
				t.Fatalf("Lookup(%q) succeeded", tt.path)
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error type = %T, want *errors.Error", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s (%v)", e.Kind, tt.kind, err)
			}
			if !errors.IsInvalidArgument(err) {
				t.Errorf("error %v is not invalid argument", err)
			}
		})
	}

	if _, err := Lookup(nil, "x"); !errors.IsInvalidArgument(err) {
		t.Errorf("Lookup(nil) error = %v", err)
	}

	Decref(r)
	checkNoLeaks(t, tr)
}

func TestWalk(t *testing.T) {
	f, tr := newTestFactory(t)
	r := buildPerson(t, f)

	var paths []string
	err := Walk(r, func(path string, d Datum) error {
		paths = append(paths, path+" "+d.Kind().String())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		" record",
		"name string",
		"tags array",
		"tags[0] string",
		"tags[1] string",
		"props map",
		`props["home dir"] long`,
		"nick union",
		"nick string",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("Walk mismatch (-want +got):\n%s", diff)
	}

	var skipped []string
	_ = Walk(r, func(path string, d Datum) error {
		skipped = append(skipped, path)
		if d.Kind() == KindArray {
			return SkipChildren
		}
		return nil
	})
	for _, p := range skipped {
		if strings.HasPrefix(p, "tags[") {
			t.Errorf("SkipChildren did not skip %s", p)
		}
	}

	for _, p := range paths[1:] {
		p = p[:strings.LastIndexByte(p, ' ')]
		if _, err := Lookup(r, p); err != nil {
			t.Errorf("walk path %q does not resolve: %v", p, err)
		}
	}

	Decref(r)
	checkNoLeaks(t, tr)
}

func TestWalkPathsResolve(t *testing.T) {
	f, tr := newTestFactory(t)
	root, _ := f.NewRecord("Odd", "")
	set := func(r *Record, name string, d Datum) {
		t.Helper()
		if err := r.SetField(name, d); err != nil {
			t.Fatal(err)
		}
		Decref(d)
	}

	inner, _ := f.NewRecord("Inner", "")
	set(inner, "x", f.NewInt32(1))
	set(root, "a.b", inner)

	list := f.NewArray()
	one := f.NewInt64(1)
	_ = list.Append(one)
	Decref(one)
	set(root, "c[0]", list)

	set(root, `q"`, f.NewBoolean(true))

	m := f.NewMap()
	two := f.NewInt64(2)
	_ = m.Put("k.1", two)
	Decref(two)
	set(root, "plain", m)

	var paths []string
	err := Walk(root, func(path string, d Datum) error {
		paths = append(paths, path)
		got, err := Lookup(root, path)
		if err != nil {
			t.Errorf("Lookup(%q): %v", path, err)
			return nil
		}
		if got != d {
			t.Errorf("Lookup(%q) = %s, want %s", path, Dump(got), Dump(d))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"",
		`["a.b"]`,
		`["a.b"].x`,
		`["c[0]"]`,
		`["c[0]"][0]`,
		`["q\""]`,
		"plain",
		`plain["k.1"]`,
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("walk paths mismatch (-want +got):\n%s", diff)
	}

	Decref(root)
	checkNoLeaks(t, tr)
}

func TestJoin(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{JoinField("", "name"), "name"},
		{JoinField("a", "b"), "a.b"},
		{JoinField("a", "b.c"), `a["b.c"]`},
		{JoinField("", ""), `[""]`},
		{JoinKey("m", "k"), `m["k"]`},
		{JoinIndex("xs", 3), "xs[3]"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestDump(t *testing.T) {
	f, tr := newTestFactory(t)
	r := buildPerson(t, f)
	fx, _ := f.NewFixed("Hash", []byte{0x00, 'A', 0xff})
	_ = r.SetField("hash", fx)
	Decref(fx)

	want := `record com.example.Person {
  name: string "Ada"
  tags: array [
    [0] string "a"
    [1] string "b"
  ]
  props: map {
    "home dir": long 7
  }
  nick: union 1 string "ada"
  hash: fixed Hash "\x00A\xff"
}
`
	if diff := cmp.Diff(want, Dump(r)); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
	if got := Dump(f.NewArray()); got != "array []\n" {
		t.Errorf("empty array dump = %q", got)
	}

	Decref(r)
	if got := Dump(r); got != "<destroyed record>\n" {
		t.Errorf("destroyed dump = %q", got)
	}
	checkNoLeaks(t, tr)
}

func TestEqual(t *testing.T) {
	f, tr := newTestFactory(t)
	a := buildPerson(t, f)
	b := buildPerson(t, NewFactory(nil))

	if !Equal(a, b) {
		t.Error("identical trees from different factories should be equal")
	}
	props, _ := Lookup(b, "props")
	v := f.NewInt64(8)
	_ = props.(*Map).Put("home dir", v)
	Decref(v)
	if Equal(a, b) {
		t.Error("trees with different map values should differ")
	}

	if !Equal(Null(), Null()) || Equal(Null(), nil) || !Equal(nil, nil) {
		t.Error("null/nil equality mismatch")
	}
	i32 := f.NewInt32(1)
	i64 := f.NewInt64(1)
	if Equal(i32, i64) {
		t.Error("different kinds should not be equal")
	}

	Decref(a)
	Decref(b)
	checkNoLeaks(t, tr)
}

package main

import (
	"strconv"
	"strings"

	"github.com/wippyai/avro-datum/datum"
)

// child is one navigable entry below a composite datum.
type child struct {
	label string
	path  string
	value datum.Datum
}

// children lists the direct children of d with their lookup paths relative
// to the root. Unions expose their active branch as a single child.
func children(parent string, d datum.Datum) []child {
	var out []child
	switch v := d.(type) {
	case *datum.Record:
		for name, c := range v.Fields() {
			out = append(out, child{label: name, path: datum.JoinField(parent, name), value: c})
		}
	case *datum.Map:
		for k, c := range v.All() {
			out = append(out, child{label: strconv.Quote(k), path: datum.JoinKey(parent, k), value: c})
		}
	case *datum.Array:
		for i, c := range v.All() {
			out = append(out, child{label: "[" + strconv.Itoa(i) + "]", path: datum.JoinIndex(parent, i), value: c})
		}
	case *datum.Union:
		out = append(out, child{
			label: "branch " + strconv.FormatInt(v.Discriminant(), 10),
			path:  parent,
			value: v.Branch(),
		})
	}
	return out
}

// summary renders the first line of a datum's dump.
func summary(d datum.Datum) string {
	s := datum.Dump(d)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, " {")
}

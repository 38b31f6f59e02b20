package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/wippyai/avro-datum/datum"
	"github.com/wippyai/avro-datum/errors"
)

// AnonymousRecord is the type name given to records built from ordered maps.
const AnonymousRecord = "anonymous"

// FromNative builds a datum tree from a Go value. The caller owns the
// returned reference. Datum values embedded in v are shared, not copied.
func FromNative(f *datum.Factory, v any) (datum.Datum, error) {
	return fromNative(f, v, nil)
}

func childPath(path []string, seg string) []string {
	return append(slices.Clip(path), seg)
}

func indexSeg(i int) string { return "[" + strconv.Itoa(i) + "]" }

func keySeg(k string) string { return "[" + strconv.Quote(k) + "]" }

func fromNative(f *datum.Factory, v any, path []string) (datum.Datum, error) {
	switch x := v.(type) {
	case nil:
		return f.NewNull(), nil
	case datum.Datum:
		return datum.Incref(x), nil
	case bool:
		return f.NewBoolean(x), nil
	case int32:
		return f.NewInt32(x), nil
	case int:
		return f.NewInt64(int64(x)), nil
	case int8:
		return f.NewInt64(int64(x)), nil
	case int16:
		return f.NewInt64(int64(x)), nil
	case int64:
		return f.NewInt64(x), nil
	case uint8:
		return f.NewInt64(int64(x)), nil
	case uint16:
		return f.NewInt64(int64(x)), nil
	case uint32:
		return f.NewInt64(int64(x)), nil
	case uint:
		return unsigned(f, uint64(x), path)
	case uint64:
		return unsigned(f, x, path)
	case float32:
		return f.NewFloat(x), nil
	case float64:
		return f.NewDouble(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return f.NewInt64(i), nil
		}
		fl, err := x.Float64()
		if err != nil {
			return nil, errors.New(errors.PhaseConvert, errors.KindInvalidData).
				Path(path...).Value(x.String()).Cause(err).Detail("malformed number").Build()
		}
		return f.NewDouble(fl), nil
	case string:
		s, err := f.NewString(x)
		if err != nil {
			return nil, err
		}
		return s, nil
	case []byte:
		b, err := f.NewBytes(x)
		if err != nil {
			return nil, err
		}
		return b, nil
	case []any:
		return fromSlice(f, x, path)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return fromMap(f, keys, func(k string) any { return x[k] }, path)
	case map[any]any:
		keys := make([]string, 0, len(x))
		values := make(map[string]any, len(x))
		for k, val := range x {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			values[ks] = val
		}
		slices.Sort(keys)
		return fromMap(f, keys, func(k string) any { return values[k] }, path)
	case yaml.MapSlice:
		return fromMapSlice(f, x, path)
	}
	return nil, errors.New(errors.PhaseConvert, errors.KindUnsupported).
		Path(path...).Actual(fmt.Sprintf("%T", v)).Detail("no datum kind for native type").Build()
}

func unsigned(f *datum.Factory, v uint64, path []string) (datum.Datum, error) {
	if v > math.MaxInt64 {
		return nil, errors.Overflow(errors.PhaseConvert, path, v, "long")
	}
	return f.NewInt64(int64(v)), nil
}

func fromSlice(f *datum.Factory, items []any, path []string) (datum.Datum, error) {
	arr := f.NewArray()
	for i, item := range items {
		child, err := fromNative(f, item, childPath(path, indexSeg(i)))
		if err != nil {
			datum.Decref(arr)
			return nil, err
		}
		err = arr.Append(child)
		datum.Decref(child)
		if err != nil {
			datum.Decref(arr)
			return nil, err
		}
	}
	return arr, nil
}

func fromMap(f *datum.Factory, keys []string, get func(string) any, path []string) (datum.Datum, error) {
	m := f.NewMap()
	for _, k := range keys {
		child, err := fromNative(f, get(k), childPath(path, keySeg(k)))
		if err != nil {
			datum.Decref(m)
			return nil, err
		}
		err = m.Put(k, child)
		datum.Decref(child)
		if err != nil {
			datum.Decref(m)
			return nil, err
		}
	}
	return m, nil
}

func fromMapSlice(f *datum.Factory, items yaml.MapSlice, path []string) (datum.Datum, error) {
	rec, err := f.NewRecord(AnonymousRecord, "")
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		name := fmt.Sprint(item.Key)
		child, err := fromNative(f, item.Value, childPath(path, name))
		if err != nil {
			datum.Decref(rec)
			return nil, err
		}
		err = rec.SetField(name, child)
		datum.Decref(child)
		if err != nil {
			datum.Decref(rec)
			return nil, err
		}
	}
	return rec, nil
}

// ToNative converts a datum tree into plain Go values. Records become
// yaml.MapSlice when ordered is set and map[string]any otherwise. Strings
// and blobs are copied so the result outlives the tree.
func ToNative(d datum.Datum, ordered bool) (any, error) {
	return toNative(d, ordered, nil)
}

func toNative(d datum.Datum, ordered bool, path []string) (any, error) {
	if d == nil {
		return nil, errors.NilPointer(errors.PhaseConvert, path, "datum")
	}
	if datum.IsDestroyed(d) {
		return nil, errors.NotInitialized(errors.PhaseConvert, "destroyed "+d.Kind().String()+" datum")
	}
	switch x := d.(type) {
	case *datum.NullDatum:
		return nil, nil
	case *datum.Boolean:
		return x.Get(), nil
	case *datum.Int32:
		return x.Get(), nil
	case *datum.Int64:
		return x.Get(), nil
	case *datum.Float:
		return x.Get(), nil
	case *datum.Double:
		return x.Get(), nil
	case *datum.String:
		return strings.Clone(x.Get()), nil
	case *datum.Bytes:
		return bytes.Clone(x.Get()), nil
	case *datum.Fixed:
		return bytes.Clone(x.Get()), nil
	case *datum.Enum:
		return x.Get(), nil
	case *datum.Union:
		return toNative(x.Branch(), ordered, path)
	case *datum.Array:
		out := make([]any, 0, x.Len())
		for i, child := range x.All() {
			v, err := toNative(child, ordered, childPath(path, indexSeg(i)))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case *datum.Map:
		out := make(map[string]any, x.Len())
		for k, child := range x.All() {
			v, err := toNative(child, ordered, childPath(path, keySeg(k)))
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case *datum.Record:
		if ordered {
			out := make(yaml.MapSlice, 0, x.Len())
			for name, child := range x.Fields() {
				v, err := toNative(child, ordered, childPath(path, name))
				if err != nil {
					return nil, err
				}
				out = append(out, yaml.MapItem{Key: name, Value: v})
			}
			return out, nil
		}
		out := make(map[string]any, x.Len())
		for name, child := range x.Fields() {
			v, err := toNative(child, ordered, childPath(path, name))
			if err != nil {
				return nil, err
			}
			out[name] = v
		}
		return out, nil
	}
	return nil, errors.Unsupported(errors.PhaseConvert, d.Kind().String()+" datum")
}

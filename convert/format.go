package convert

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wippyai/avro-datum/datum"
	"github.com/wippyai/avro-datum/errors"
)

// Format is an interchange format for plain Go values.
type Format int

const (
	JSON Format = iota
	YAML
	MsgPack
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case MsgPack:
		return "msgpack"
	}
	return "unknown"
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mp", "mpk":
		return MsgPack, nil
	}
	return 0, errors.New(errors.PhaseConvert, errors.KindInvalidInput).
		Expected("json, yaml or msgpack").Actual(name).Build()
}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, errors.InvalidInput(errors.PhaseConvert, []string{path}, "no file extension to infer format from")
	}
	return ParseFormat(ext)
}

// Ordered reports whether records should keep field order when encoded in
// this format.
func (f Format) Ordered() bool {
	return f == YAML
}

// Decode parses data into plain Go values.
func (f Format) Decode(data []byte) (any, error) {
	var v any
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, errors.Wrap(errors.PhaseConvert, errors.KindInvalidData, err, "decode json")
		}
		if dec.More() {
			return nil, errors.InvalidData(errors.PhaseConvert, nil, "trailing data after json value")
		}
	case YAML:
		if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
			return nil, errors.Wrap(errors.PhaseConvert, errors.KindInvalidData, err, "decode yaml")
		}
	case MsgPack:
		var r bytes.Reader
		r.Reset(data)
		dec := msgpack.GetDecoder()
		dec.ResetDict(&r, nil)
		out, err := dec.DecodeInterface()
		msgpack.PutDecoder(dec)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseConvert, errors.KindInvalidData, err, "decode msgpack")
		}
		v = out
	default:
		return nil, errors.Unsupported(errors.PhaseConvert, "format "+f.String())
	}
	return v, nil
}

// Encode writes v to w. Map keys are emitted in sorted order.
func (f Format) Encode(w io.Writer, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return encodeErr(err, "encode json")
		}
	case YAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return encodeErr(err, "encode yaml")
		}
		if _, err := w.Write(out); err != nil {
			return encodeErr(err, "write yaml")
		}
	case MsgPack:
		enc := msgpack.GetEncoder()
		enc.ResetDict(w, nil)
		enc.SetSortMapKeys(true)
		err := enc.Encode(v)
		msgpack.PutEncoder(enc)
		if err != nil {
			return encodeErr(err, "encode msgpack")
		}
	default:
		return errors.Unsupported(errors.PhaseConvert, "format "+f.String())
	}
	return nil
}

// encodeErr keeps structured errors from the destination writer intact so
// callers can still tell an out-of-space writer from a bad value.
func encodeErr(err error, detail string) error {
	if _, ok := err.(*errors.Error); ok {
		return err
	}
	return errors.Wrap(errors.PhaseConvert, errors.KindInvalidData, err, detail)
}

// Load decodes data and builds a datum tree from it.
func Load(fac *datum.Factory, f Format, data []byte) (datum.Datum, error) {
	v, err := f.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromNative(fac, v)
}

// Save encodes a datum tree to w.
func Save(w io.Writer, f Format, d datum.Datum) error {
	v, err := ToNative(d, f.Ordered())
	if err != nil {
		return err
	}
	return f.Encode(w, v)
}

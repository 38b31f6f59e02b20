// Package convert moves values between datum trees and plain Go values, and
// between plain Go values and the JSON, YAML and MessagePack interchange
// formats used by inspection tooling.
//
// The mapping from Go values is structural:
//
//	nil              null
//	bool             boolean
//	int32            int
//	other integers   long (uint64 above MaxInt64 is an overflow)
//	float32          float
//	float64          double
//	json.Number      long when integral, double otherwise
//	string           string
//	[]byte           bytes
//	[]any            array
//	map[string]any   map
//	map[any]any      map, keys formatted with fmt
//	yaml.MapSlice    record named AnonymousRecord, fields in slice order
//
// YAML documents are decoded with ordered mappings, so they load as records
// and keep their key order. JSON and MessagePack objects load as maps.
package convert

package datum

import "github.com/wippyai/avro-datum/errors"

// Casts for API boundaries where the variant is only known at run time.
// Internal code switches on the concrete type instead.

func as[T Datum](d Datum, want Kind) (T, error) {
	var zero T
	if d == nil {
		return zero, errors.NilPointer(errors.PhaseAccess, nil, "datum")
	}
	t, ok := d.(T)
	if !ok {
		return zero, errors.TypeMismatch(errors.PhaseAccess, nil, want.String(), d.Kind().String())
	}
	return t, nil
}

func AsNull(d Datum) (*NullDatum, error) { return as[*NullDatum](d, KindNull) }
func AsBoolean(d Datum) (*Boolean, error) { return as[*Boolean](d, KindBoolean) }
func AsInt32(d Datum) (*Int32, error)     { return as[*Int32](d, KindInt32) }
func AsInt64(d Datum) (*Int64, error)     { return as[*Int64](d, KindInt64) }
func AsFloat(d Datum) (*Float, error)     { return as[*Float](d, KindFloat) }
func AsDouble(d Datum) (*Double, error)   { return as[*Double](d, KindDouble) }
func AsString(d Datum) (*String, error)   { return as[*String](d, KindString) }
func AsBytes(d Datum) (*Bytes, error)     { return as[*Bytes](d, KindBytes) }
func AsFixed(d Datum) (*Fixed, error)     { return as[*Fixed](d, KindFixed) }
func AsEnum(d Datum) (*Enum, error)       { return as[*Enum](d, KindEnum) }
func AsArray(d Datum) (*Array, error)     { return as[*Array](d, KindArray) }
func AsMap(d Datum) (*Map, error)         { return as[*Map](d, KindMap) }
func AsRecord(d Datum) (*Record, error)   { return as[*Record](d, KindRecord) }
func AsUnion(d Datum) (*Union, error)     { return as[*Union](d, KindUnion) }

// GetBoolean returns the value of a boolean datum.
func GetBoolean(d Datum) (bool, error) {
	v, err := AsBoolean(d)
	if err != nil {
		return false, err
	}
	return v.Get(), nil
}

// SetBoolean replaces the value of a boolean datum.
func SetBoolean(d Datum, b bool) error {
	v, err := AsBoolean(d)
	if err != nil {
		return err
	}
	v.Set(b)
	return nil
}

func GetInt32(d Datum) (int32, error) {
	v, err := AsInt32(d)
	if err != nil {
		return 0, err
	}
	return v.Get(), nil
}

func SetInt32(d Datum, i int32) error {
	v, err := AsInt32(d)
	if err != nil {
		return err
	}
	v.Set(i)
	return nil
}

func GetInt64(d Datum) (int64, error) {
	v, err := AsInt64(d)
	if err != nil {
		return 0, err
	}
	return v.Get(), nil
}

func SetInt64(d Datum, i int64) error {
	v, err := AsInt64(d)
	if err != nil {
		return err
	}
	v.Set(i)
	return nil
}

func GetFloat(d Datum) (float32, error) {
	v, err := AsFloat(d)
	if err != nil {
		return 0, err
	}
	return v.Get(), nil
}

func SetFloat(d Datum, f float32) error {
	v, err := AsFloat(d)
	if err != nil {
		return err
	}
	v.Set(f)
	return nil
}

func GetDouble(d Datum) (float64, error) {
	v, err := AsDouble(d)
	if err != nil {
		return 0, err
	}
	return v.Get(), nil
}

func SetDouble(d Datum, f float64) error {
	v, err := AsDouble(d)
	if err != nil {
		return err
	}
	v.Set(f)
	return nil
}

// GetString returns a string datum's contents without copying.
func GetString(d Datum) (string, error) {
	v, err := AsString(d)
	if err != nil {
		return "", err
	}
	return v.Get(), nil
}

// SetString copies s into a string datum.
func SetString(d Datum, s string) error {
	v, err := AsString(d)
	if err != nil {
		return err
	}
	return v.Set(s)
}

// GetBytes returns a bytes datum's buffer without copying.
func GetBytes(d Datum) ([]byte, error) {
	v, err := AsBytes(d)
	if err != nil {
		return nil, err
	}
	return v.Get(), nil
}

// SetBytes copies b into a bytes datum.
func SetBytes(d Datum, b []byte) error {
	v, err := AsBytes(d)
	if err != nil {
		return err
	}
	return v.Set(b)
}

// GetFixed returns a fixed datum's buffer without copying.
func GetFixed(d Datum) ([]byte, error) {
	v, err := AsFixed(d)
	if err != nil {
		return nil, err
	}
	return v.Get(), nil
}

// SetFixed copies b into a fixed datum.
func SetFixed(d Datum, b []byte) error {
	v, err := AsFixed(d)
	if err != nil {
		return err
	}
	return v.Set(b)
}

func GetEnum(d Datum) (int, error) {
	v, err := AsEnum(d)
	if err != nil {
		return 0, err
	}
	return v.Get(), nil
}

func SetEnum(d Datum, i int) error {
	v, err := AsEnum(d)
	if err != nil {
		return err
	}
	v.Set(i)
	return nil
}

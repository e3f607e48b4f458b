package cookie

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Value is any JSON value carried in a cookie. The set of implementations is
// closed: Null, Bool, Number, String, Array and Object.
// A nil Value means no value at all and never reaches the wire.
//
// Two inputs do not survive a round trip unchanged: a nil element inside an
// Array or Object decodes as Null{}, and invalid UTF-8 in a String or key
// decodes with U+FFFD in place of the bad bytes.
type Value interface {
	json.Marshaler
	value()
}

type (
	Null   struct{}
	Bool   bool
	Number float64
	String string
	Array  []Value
	Object map[string]Value
)

func (Null) value()   {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}
func (Array) value()  {}
func (Object) value() {}

func (v Null) MarshalJSON() ([]byte, error)   { return appendJSON(nil, v), nil }
func (v Bool) MarshalJSON() ([]byte, error)   { return appendJSON(nil, v), nil }
func (v Number) MarshalJSON() ([]byte, error) { return appendJSON(nil, v), nil }
func (v String) MarshalJSON() ([]byte, error) { return appendJSON(nil, v), nil }
func (v Array) MarshalJSON() ([]byte, error)  { return appendJSON(nil, v), nil }
func (v Object) MarshalJSON() ([]byte, error) { return appendJSON(nil, v), nil }

// appendJSON writes the canonical JSON text of v: object keys sorted, no HTML
// escaping, non-finite numbers as null. MarshalJSON returns the same text, but
// json.Marshal re-escapes <, > and & in it; Encode is not affected.
func appendJSON(buf []byte, v Value) []byte {
	switch v := v.(type) {
	case nil, Null:
		return append(buf, "null"...)
	case Bool:
		return strconv.AppendBool(buf, bool(v))
	case Number:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(buf, "null"...)
		}
		b, _ := json.Marshal(f)
		return append(buf, b...)
	case String:
		return appendString(buf, string(v))
	case Array:
		buf = append(buf, '[')
		for i, e := range v {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendJSON(buf, e)
		}
		return append(buf, ']')
	case Object:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		buf = append(buf, '{')
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, k)
			buf = append(buf, ':')
			buf = appendJSON(buf, v[k])
		}
		return append(buf, '}')
	default:
		panic(fmt.Sprintf("cookie: unknown value type %T", v))
	}
}

func appendString(buf []byte, s string) []byte {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	return append(buf, bytes.TrimSuffix(out.Bytes(), []byte("\n"))...)
}

// ParseValue parses JSON text into a Value tree.
func ParseValue(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	return fromAny(raw), nil
}

func fromAny(raw any) Value {
	switch raw := raw.(type) {
	case bool:
		return Bool(raw)
	case float64:
		return Number(raw)
	case string:
		return String(raw)
	case []any:
		arr := make(Array, len(raw))
		for i, e := range raw {
			arr[i] = fromAny(e)
		}
		return arr
	case map[string]any:
		obj := make(Object, len(raw))
		for k, e := range raw {
			obj[k] = fromAny(e)
		}
		return obj
	default:
		return Null{}
	}
}

// ValueOf converts any JSON-marshalable Go value into a Value.
// A nil input yields a nil Value.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return v, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrInvalidValue, err)
	}
	parsed, err := ParseValue(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidValue, err)
	}
	return parsed, nil
}

// Unmarshal decodes v into dst using encoding/json semantics.
func Unmarshal(v Value, dst any) error {
	if err := json.Unmarshal(appendJSON(nil, v), dst); err != nil {
		return errors.Join(ErrInvalidValue, err)
	}
	return nil
}

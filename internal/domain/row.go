package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Row is one product record: a flat string-to-string table that remembers
// the order its keys were first inserted in. Key order is significant for
// CSV round-trips and for the enrichment output contract.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow creates an empty row.
func NewRow() Row {
	return Row{values: make(map[string]string)}
}

// Get returns the value for key, or "" if the key is absent.
func (r Row) Get(key string) string {
	return r.values[key]
}

// Lookup returns the value for key and whether the key is present at all.
func (r Row) Lookup(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present with a non-empty value.
func (r Row) Has(key string) bool {
	return r.values[key] != ""
}

// Set stores value under key. A new key is appended to the key order;
// setting an existing key keeps its position.
func (r *Row) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Keys returns the keys in insertion order. The slice is a copy.
func (r Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys in the row.
func (r Row) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	c := Row{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]string, len(r.values)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// MarshalJSON writes the row as a JSON object with keys in insertion order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat JSON object, preserving key order. Scalar
// values (numbers, booleans, null) are coerced to strings; nested objects
// and arrays are rejected.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("row: expected JSON object, got %v", tok)
	}

	*r = NewRow()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("row: invalid key token %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		var val string
		switch v := valTok.(type) {
		case string:
			val = v
		case json.Number:
			val = v.String()
		case bool:
			val = strconv.FormatBool(v)
		case nil:
			val = ""
		default:
			return fmt.Errorf("row: field %q is not a scalar value", key)
		}
		r.Set(key, val)
	}

	// Closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

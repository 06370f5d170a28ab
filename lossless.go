package draft3

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
)

// splitUnknown returns the keys of raw that are not in known.
func splitUnknown(raw map[string]json.RawMessage, known map[string]struct{}) map[string]json.RawMessage {
	var unknown map[string]json.RawMessage
	for k, v := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		if unknown == nil {
			unknown = map[string]json.RawMessage{}
		}
		unknown[k] = v
	}
	return unknown
}

// knownSet builds a map for constant-time known-keyword checks in lossless unmarshaling.
func knownSet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// marshalLossless merges unknown keywords with the typed view such that typed
// keywords win. A non-nil props message is attached under "properties".
func marshalLossless(unknown map[string]json.RawMessage, props json.RawMessage, typed any) ([]byte, error) {
	// Start from the lossless fields, then overwrite with the typed view so known keywords win.
	out := map[string]json.RawMessage{}
	for k, v := range unknown {
		out[k] = v
	}

	knownBytes, err := json.Marshal(typed)
	if err != nil {
		return nil, err
	}
	var known map[string]json.RawMessage
	if err := json.Unmarshal(knownBytes, &known); err != nil {
		return nil, err
	}
	for k, v := range known {
		out[k] = v
	}
	if props != nil {
		out["properties"] = props
	}

	return json.Marshal(out)
}

// marshalOrderedProperties encodes the properties object with its members in
// the given order.
func marshalOrderedProperties(props map[string]*Schema, order []string) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(props[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// orderNames reconciles a captured declaration order with the current map
// contents: recorded names that still exist come first, any remaining names
// follow in sorted order.
func orderNames(props map[string]*Schema, recorded []string) []string {
	out := make([]string, 0, len(props))
	seen := make(map[string]struct{}, len(props))
	for _, name := range recorded {
		if _, ok := props[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	var rest []string
	for name := range props {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// objectKeys returns the member names of a JSON object in declaration order.
func objectKeys(b []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("properties: must be object")
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, errors.New("properties: malformed object")
		}
		keys = append(keys, name)
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

package tesira

import "github.com/mitchellh/mapstructure"

// DecodeMap projects a Map-kind Value onto out, a pointer to a
// caller-defined struct whose fields are tagged `ttp:"key"`. It exists
// for attributes whose reply is a structured map spec.md's typed
// surface does not model as a dedicated Go type (e.g. the nested
// network status blob in spec.md §3's worked example).
//
// mapstructure is the teacher's map-to-struct dependency; the field
// tag is "ttp" rather than the teacher's "json" because TTP map keys
// are TTP wire vocabulary, not JSON.
func DecodeMap(v Value, out interface{}) error {
	entries, ok := v.AsMap()
	if !ok {
		return errParsingFailed("DecodeMap: value is not a map")
	}

	raw := make(map[string]interface{}, len(entries))
	for k, entry := range entries {
		raw[k] = valueToInterface(entry)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "ttp",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errIO(err)
	}
	if err := decoder.Decode(raw); err != nil {
		return errParsingFailed("DecodeMap: %s", err)
	}
	return nil
}

func valueToInterface(v Value) interface{} {
	switch v.Kind {
	case Number:
		n, _ := v.AsNumber()
		return n
	case Boolean:
		b, _ := v.AsBoolean()
		return b
	case String:
		s, _ := v.AsString()
		return s
	case Constant:
		s, _ := v.AsConstant()
		return s
	case Array:
		arr, _ := v.AsArray()
		out := make([]interface{}, len(arr))
		for i, item := range arr {
			out[i] = valueToInterface(item)
		}
		return out
	case Map:
		m, _ := v.AsMap()
		out := make(map[string]interface{}, len(m))
		for k, item := range m {
			out[k] = valueToInterface(item)
		}
		return out
	default:
		return nil
	}
}

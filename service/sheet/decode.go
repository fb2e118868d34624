package sheet

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the record into out, a pointer to a struct tagged with `mapstructure:"<header>"`.
// Blank or whitespace-only cells are not set, so pointer fields stay nil and other fields keep
// their zero value. Text fields receive the cell as written; numeric fields are parsed trimmed.
func (r Record) Decode(out interface{}) error {
	input := make(map[string]interface{}, len(r.Values))
	for k, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			input[k] = v
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       integerStringHook(),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// integerStringHook trims numeric cells, parses integers in base 10 and accepts integral
// floats ("7.0"), which spreadsheet exports produce for numeric columns.
func integerStringHook() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		s := data.(string)
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			s = strings.TrimSpace(s)
		case reflect.Float32, reflect.Float64, reflect.Bool:
			return strings.TrimSpace(s), nil
		default:
			return data, nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		if fv, err := strconv.ParseFloat(s, 64); err == nil && fv == math.Trunc(fv) && math.Abs(fv) < 1<<63 {
			return int64(fv), nil
		}
		return data, nil
	}
}

package input

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Parse converts one line of text into a value of type T. This is the
// textual-parse contract the acquisition loop is generic over: any type
// implementing encoding.TextUnmarshaler parses through that, and the
// common scalar kinds (string, signed and unsigned integers, floats,
// bool, time.Duration) parse through the strconv conventions. Top-level
// slices parse from comma-separated elements; []byte takes the raw
// text. Anything else fails with a descriptive error.
func Parse[T any](text string) (T, error) {
	var out T
	if err := parse(reflect.ValueOf(&out), text, true); err != nil {
		return out, err
	}
	return out, nil
}

func parse(v reflect.Value, text string, topLevel bool) error {
	t := v.Type()

	for t.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(t.Elem()))
		}

		if unmarshaler, ok := v.Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler.UnmarshalText([]byte(text))
		}

		t = t.Elem()
		v = v.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		v.SetString(text)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if t == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(text)
			if err != nil {
				return err
			}
			v.SetInt(int64(d))
			break
		}

		val, err := strconv.ParseInt(text, 0, t.Bits())
		if err != nil {
			return err
		}
		v.SetInt(val)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(text, 0, t.Bits())
		if err != nil {
			return err
		}
		v.SetUint(val)

	case reflect.Bool:
		val, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		v.SetBool(val)

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(text, t.Bits())
		if err != nil {
			return err
		}
		v.SetFloat(val)

	case reflect.Slice:
		if !topLevel {
			return fmt.Errorf("nested slices are not supported")
		}

		if t.Elem().Kind() == reflect.Uint8 {
			v.Set(reflect.ValueOf([]byte(text)))
			return nil
		}

		items := strings.Split(text, ",")
		slice := reflect.MakeSlice(t, len(items), len(items))
		for i, item := range items {
			if err := parse(slice.Index(i), strings.TrimSpace(item), false); err != nil {
				return err
			}
		}
		v.Set(slice)

	default:
		return fmt.Errorf("cannot parse into %s", t)
	}

	return nil
}

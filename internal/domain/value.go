package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var stringerType = reflect.TypeFor[fmt.Stringer]()

// SerializeValue renders a field value as the string snapshot stored in the
// change history. The second result is false for the null value.
//
// Strings pass through untouched so comparison stays byte-exact and
// case-sensitive. Values with no natural text form are encoded as compact JSON.
// Pointers are followed, so "Hello" and a *string pointing at "Hello" have the
// same snapshot; nil pointers, maps, slices and interfaces are the null value.
func SerializeValue(v any) (string, bool) {
	v, ok := deref(v)
	if !ok {
		return "", false
	}

	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case []byte:
		return string(val), true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.FormatInt(int64(val), 10), true
	case int8:
		return strconv.FormatInt(int64(val), 10), true
	case int16:
		return strconv.FormatInt(int64(val), 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case uint8:
		return strconv.FormatUint(uint64(val), 10), true
	case uint16:
		return strconv.FormatUint(uint64(val), 10), true
	case uint32:
		return strconv.FormatUint(uint64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case time.Time:
		return val.Format(time.RFC3339Nano), true
	case fmt.Stringer:
		return val.String(), true
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v), true
	}
	return string(b), true
}

// deref follows pointers and interfaces down to a concrete value. It reports
// false for any nil on the way. A pointer is kept when it implements
// fmt.Stringer and its element does not (e.g. *url.URL), so String still
// applies.
func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	for {
		switch rv.Kind() {
		case reflect.Pointer:
			if rv.IsNil() {
				return nil, false
			}
			if rv.Type().Implements(stringerType) && !rv.Type().Elem().Implements(stringerType) {
				return rv.Interface(), true
			}
			rv = rv.Elem()
		case reflect.Interface:
			if rv.IsNil() {
				return nil, false
			}
			rv = rv.Elem()
		case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			if rv.IsNil() {
				return nil, false
			}
			return rv.Interface(), true
		default:
			return rv.Interface(), true
		}
	}
}

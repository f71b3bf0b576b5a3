// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// SetFromString sets the value pointed to by to from the given string.
// Strings, booleans, all numeric kinds, [time.Duration],
// [encoding.TextUnmarshaler] types and JSON-formatted slices and maps
// are supported. Integers are parsed with base prefixes so that
// "0xcccccc" is a valid value.
func SetFromString(to any, s string) error {
	if tu, ok := to.(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	v := reflect.ValueOf(to)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("reflectx.SetFromString: destination must be a non-nil pointer, not %T", to)
	}
	v = NonPointerValue(v)
	s = strings.TrimSpace(s)
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice, reflect.Map, reflect.Struct:
		// allow single quote to work as double quote for JSON format
		return json.Unmarshal([]byte(strings.ReplaceAll(s, `'`, `"`)), v.Addr().Interface())
	default:
		return fmt.Errorf("reflectx.SetFromString: unsupported kind %v", v.Kind())
	}
	return nil
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value field tags. Nested struct fields without a
// default tag are descended into. Fields whose tag cannot be parsed for
// their type are reported in the returned error and left unchanged.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() == reflect.Pointer && ov.IsNil() {
		return nil
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, got %v", val.Kind())
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if NonPointerType(f.Type).Kind() == reflect.Struct && (!ok || def == "") {
			if fv.Kind() == reflect.Pointer && fv.IsNil() {
				continue
			}
			errs = append(errs, SetFromDefaultTags(PointerValue(fv).Interface()))
			continue
		}
		if !ok {
			continue
		}
		if err := SetFromString(PointerValue(fv).Interface(), def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of type %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// DefaultTag returns the `default:` tag of the named field of
// the given struct type, and whether it is present.
func DefaultTag(obj any, field string) (string, bool) {
	typ := NonPointerType(reflect.TypeOf(obj))
	if typ == nil || typ.Kind() != reflect.Struct {
		return "", false
	}
	f, ok := typ.FieldByName(field)
	if !ok {
		return "", false
	}
	def, ok := f.Tag.Lookup("default")
	return strings.TrimSpace(def), ok
}

// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

const (
	NUL = '\x00'
)

type DisplayOptions struct {
	io.Writer
	// Z separates entries with NUL instead of newlines.
	Z bool
}

func (opts *DisplayOptions) show(v reflect.Value, key string) {
	if opts.Z {
		_, _ = fmt.Fprintf(opts.Writer, "%s\n%v%c", key, v.Interface(), NUL)
		return
	}
	_, _ = fmt.Fprintf(opts.Writer, "%s=%v\n", key, v.Interface())
}

func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if len(name) == 0 {
		return strings.ToLower(f.Name)
	}
	return name
}

func (opts *DisplayOptions) section(v reflect.Value, prefix string) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		key := prefix + "." + tomlName(t.Field(i))
		switch f.Kind() {
		case reflect.Pointer:
			if f.IsNil() {
				continue
			}
			opts.show(f.Elem(), key)
		case reflect.String:
			if f.Len() == 0 {
				continue
			}
			opts.show(f, key)
		default:
			if b, ok := f.Interface().(Boolean); ok && b.IsUnset() {
				continue
			}
			opts.show(f, key)
		}
	}
}

// Display writes every set key of cfg as section.key=value.
func Display(cfg *Config, opts *DisplayOptions) {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		opts.section(v.Field(i), tomlName(t.Field(i)))
	}
}

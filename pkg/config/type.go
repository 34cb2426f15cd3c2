// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
)

const (
	BOOLEAN_UNSET = 0
	BOOLEAN_TRUE  = 1
	BOOLEAN_FALSE = 2
)

// Boolean is a tri-state TOML boolean, so that an unset key in a later
// layer does not clear a value set by an earlier one.
type Boolean struct {
	val int
}

var (
	True  = Boolean{val: BOOLEAN_TRUE}
	False = Boolean{val: BOOLEAN_FALSE}
)

func (b *Boolean) UnmarshalTOML(a any) error {
	var s string
	switch sdata := a.(type) {
	case fmt.Stringer:
		s = sdata.String()
	case string:
		s = sdata
	case bool:
		b.Set(sdata)
		return nil
	case int64:
		b.Set(sdata != 0)
		return nil
	default:
		return fmt.Errorf("unexpected boolean type %T", a)
	}
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		b.val = BOOLEAN_TRUE
	case "false", "no", "off", "0":
		b.val = BOOLEAN_FALSE
	default:
		return fmt.Errorf("bad boolean value '%s'", s)
	}
	return nil
}

func (b Boolean) String() string {
	switch b.val {
	case BOOLEAN_TRUE:
		return "true"
	case BOOLEAN_FALSE:
		return "false"
	default:
	}
	return "unset"
}

func (b *Boolean) IsUnset() bool {
	return b.val == BOOLEAN_UNSET
}

func (b *Boolean) True() bool {
	return b.val == BOOLEAN_TRUE
}

func (b *Boolean) Set(v bool) bool {
	if v {
		b.val = BOOLEAN_TRUE
		return true
	}
	b.val = BOOLEAN_FALSE
	return false
}

// Overwrite takes other's value when other is set.
func (b *Boolean) Overwrite(other Boolean) {
	if other.val != BOOLEAN_UNSET {
		b.val = other.val
	}
}

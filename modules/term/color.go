// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package term

func (v Level) paint(s string, basic, truecolor string) string {
	switch v {
	case Level16M:
		return truecolor + s + "\x1b[0m"
	case Level16, Level256:
		return basic + s + "\x1b[0m"
	default:
	}
	return s
}

func (v Level) Red(s string) string {
	// #f43b47
	return v.paint(s, "\x1b[31m", "\x1b[38;2;244;59;71m")
}

func (v Level) Green(s string) string {
	// #43e97a
	return v.paint(s, "\x1b[32m", "\x1b[38;2;67;233;123m")
}

func (v Level) Yellow(s string) string {
	// #fee240
	return v.paint(s, "\x1b[33m", "\x1b[38;2;254;225;64m")
}

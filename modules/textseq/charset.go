// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package textseq

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

const (
	UTF8 = "utf-8"
	// Auto asks ReadText to detect the input charset.
	Auto = "auto"
)

var encodings = map[string]encoding.Encoding{
	"iso-8859-2":   charmap.ISO8859_2,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-7":   charmap.ISO8859_7,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
	"koi8-u":       charmap.KOI8U,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"gbk":          simplifiedchinese.GBK,
	"gb18030":      simplifiedchinese.GB18030,
	"big5":         traditionalchinese.Big5,
	"euc-jp":       japanese.EUCJP,
	"shift_jis":    japanese.ShiftJIS,
	"euc-kr":       korean.EUCKR,
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
}

// LookupCharset resolves a charset name or WHATWG label. Names not in the
// local table fall back to the HTML encoding index.
func LookupCharset(name string) (encoding.Encoding, string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == UTF8 || name == "utf8" {
		return encoding.Nop, UTF8, nil
	}
	if e, ok := encodings[name]; ok {
		return e, name, nil
	}
	if e, canonical := charset.Lookup(name); e != nil {
		if canonical == UTF8 {
			return encoding.Nop, UTF8, nil
		}
		return e, canonical, nil
	}
	return nil, "", fmt.Errorf("%w: '%s'", ErrUnknownCharset, name)
}

// DetectCharset guesses the charset of content from its byte order mark
// and byte patterns. Valid UTF-8 is reported as UTF-8.
func DetectCharset(content []byte) (encoding.Encoding, string) {
	e, name, _ := charset.DetermineEncoding(content, "text/plain")
	if name == UTF8 {
		return encoding.Nop, UTF8
	}
	return e, name
}

// Package textenc decodes the output of child processes with the host's
// regional encoding instead of assuming UTF-8.
package textenc

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Local returns the regional encoding used by console programs on this host.
// It is resolved once per process.
var Local = sync.OnceValue(localEncoding)

// Decode converts raw process output to a string using Local.
func Decode(b []byte) (string, error) {
	return DecodeWith(Local(), b)
}

// DecodeWith converts b using enc. A UTF-8 or UTF-16 byte order mark
// overrides enc, and BOM-less little-endian UTF-16 (what wmic emits when
// redirected) is detected heuristically.
func DecodeWith(enc encoding.Encoding, b []byte) (string, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	if !hasBOM(b) && looksUTF16LE(b) {
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), b)
	if err != nil {
		return "", fmt.Errorf("decode output: %w", err)
	}
	return string(out), nil
}

// ForName resolves a locale charset name ("UTF-8", "KOI8-R", "ISO-8859-5")
// to an encoding. ASCII and the empty name resolve to UTF-8.
func ForName(name string) (encoding.Encoding, error) {
	switch norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", ""); norm {
	case "", "utf8", "ascii", "usascii", "ansi_x3.41968":
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("lookup charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q is not supported", name)
	}
	return enc, nil
}

// CodePage maps a Windows code page number to an encoding.
// Returns nil for code pages without a known mapping.
func CodePage(cp uint32) encoding.Encoding {
	switch cp {
	case 437:
		return charmap.CodePage437
	case 850:
		return charmap.CodePage850
	case 852:
		return charmap.CodePage852
	case 855:
		return charmap.CodePage855
	case 858:
		return charmap.CodePage858
	case 860:
		return charmap.CodePage860
	case 862:
		return charmap.CodePage862
	case 863:
		return charmap.CodePage863
	case 865:
		return charmap.CodePage865
	case 866:
		return charmap.CodePage866
	case 874:
		return charmap.Windows874
	case 932:
		return japanese.ShiftJIS
	case 936:
		return simplifiedchinese.GBK
	case 949:
		return korean.EUCKR
	case 950:
		return traditionalchinese.Big5
	case 1250:
		return charmap.Windows1250
	case 1251:
		return charmap.Windows1251
	case 1252:
		return charmap.Windows1252
	case 1253:
		return charmap.Windows1253
	case 1254:
		return charmap.Windows1254
	case 1255:
		return charmap.Windows1255
	case 1256:
		return charmap.Windows1256
	case 1257:
		return charmap.Windows1257
	case 1258:
		return charmap.Windows1258
	case 20866:
		return charmap.KOI8R
	case 21866:
		return charmap.KOI8U
	case 65001:
		return unicode.UTF8
	}
	return nil
}

// localeCharset extracts the codeset from the POSIX locale variables, in
// precedence order LC_ALL, LC_CTYPE, LANG. Locale strings have the form
// language[_territory][.codeset][@modifier].
func localeCharset(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, '@'); i >= 0 {
			v = v[:i]
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			return v[i+1:]
		}
		return ""
	}
	return ""
}

func hasBOM(b []byte) bool {
	switch {
	case len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		return true
	case len(b) >= 2 && (b[0] == 0xFF && b[1] == 0xFE || b[0] == 0xFE && b[1] == 0xFF):
		return true
	}
	return false
}

// looksUTF16LE reports whether most odd bytes are zero, which is what ASCII
// text encoded as UTF-16LE looks like.
func looksUTF16LE(b []byte) bool {
	if len(b) < 4 || len(b)%2 != 0 {
		return false
	}
	zeros := 0
	for i := 1; i < len(b); i += 2 {
		if b[i] == 0 {
			zeros++
		}
	}
	return zeros*4 >= len(b)/2*3
}

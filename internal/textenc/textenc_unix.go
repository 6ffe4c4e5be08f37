//go:build !windows

package textenc

import (
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

func localEncoding() encoding.Encoding {
	enc, err := ForName(localeCharset(os.Getenv))
	if err != nil {
		return unicode.UTF8
	}
	return enc
}

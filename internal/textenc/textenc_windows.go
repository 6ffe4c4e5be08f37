//go:build windows

package textenc

import (
	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

var procGetOEMCP = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetOEMCP")

// localEncoding returns the OEM code page, which console tools such as wmic
// and reg write their output in.
func localEncoding() encoding.Encoding {
	if procGetOEMCP.Find() != nil {
		return unicode.UTF8
	}
	cp, _, _ := procGetOEMCP.Call()
	if enc := CodePage(uint32(cp)); enc != nil {
		return enc
	}
	return unicode.UTF8
}

package hardware

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// placeholders are values firmware vendors and query tools emit in place of
// a real identifier. Compared case-insensitively.
var placeholders = map[string]struct{}{
	"processorid":              {},
	"serialnumber":             {},
	"machineguid":              {},
	"to be filled by o.e.m.":   {},
	"default string":           {},
	"not specified":            {},
	"not applicable":           {},
	"not available":            {},
	"system serial number":     {},
	"base board serial number": {},
	"none":                     {},
	"n/a":                      {},
	"oem":                      {},
	"unknown":                  {},
	"0123456789":               {},
}

// IsPlaceholder reports whether v is a known stand-in rather than an
// identifier. Values made only of zeros (ignoring separators) also count.
func IsPlaceholder(v string) bool {
	v = strings.TrimSpace(v)
	if _, ok := placeholders[strings.ToLower(v)]; ok {
		return true
	}
	return strings.Trim(v, "0-: ") == ""
}

// lines splits out into trimmed, non-empty lines.
func lines(out string) []string {
	var res []string
	for _, l := range strings.Split(strings.ReplaceAll(out, "\r", "\n"), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			res = append(res, l)
		}
	}
	return res
}

// TableValue extracts the first row below header from the column layout
// printed by wmic ("ProcessorId\nBFEBFBFF000906EA"). Output holding only the
// header, or a row that repeats the header, is a placeholder.
func TableValue(out, header string) (string, error) {
	ls := lines(out)
	switch len(ls) {
	case 0:
		return "", ErrEmpty
	case 1:
		return "", fmt.Errorf("only header %q in output: %w", ls[0], ErrPlaceholder)
	}
	v := ls[1]
	if strings.EqualFold(v, header) {
		return "", fmt.Errorf("header %q echoed as value: %w", header, ErrPlaceholder)
	}
	return v, nil
}

// KeyedValue returns the value of the first "key<sep>value" line whose key
// equals key. Surrounding quotes on key and value are ignored, which covers
// both dmidecode ("ID: ...") and ioreg ("\"Key\" = \"value\"") output.
func KeyedValue(out, key, sep string) (string, error) {
	for _, l := range lines(out) {
		k, v, ok := strings.Cut(l, sep)
		if !ok || strings.Trim(strings.TrimSpace(k), `"`) != key {
			continue
		}
		v = strings.Trim(strings.TrimSpace(v), `"`)
		if v == "" {
			return "", fmt.Errorf("%s: %w", key, ErrEmpty)
		}
		return v, nil
	}
	return "", fmt.Errorf("%s: %w", key, ErrNotFound)
}

// FirstLine returns the first non-empty line of out, skipping "#" comments
// that dmidecode prints when it has nothing to report.
func FirstLine(out string) (string, error) {
	for _, l := range lines(out) {
		if !strings.HasPrefix(l, "#") {
			return l, nil
		}
	}
	return "", ErrEmpty
}

// processorID converts the CPUID bytes dmidecode prints
// ("A7 06 0A 00 FF FB EB BF", EAX then EDX little-endian) into the form
// Windows reports as ProcessorId ("BFEBFBFF000A06A7"). Anything that is not
// eight hex bytes is returned unchanged.
func processorID(v string) string {
	raw, err := hex.DecodeString(strings.ReplaceAll(v, " ", ""))
	if err != nil || len(raw) != 8 {
		return v
	}
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
	return strings.ToUpper(hex.EncodeToString(raw))
}

package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecodeWith_RegionalCodePage(t *testing.T) {
	raw, err := charmap.CodePage866.NewEncoder().String("Серийный номер\r\nA1B2C3\r\n")
	require.NoError(t, err)

	got, err := DecodeWith(charmap.CodePage866, []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Серийный номер\r\nA1B2C3\r\n", got)

	// Decoding the same bytes as UTF-8 garbles the Cyrillic header.
	garbled, err := DecodeWith(unicode.UTF8, []byte(raw))
	require.NoError(t, err)
	assert.NotEqual(t, got, garbled)
}

func TestDecodeWith_UTF16WithoutBOM(t *testing.T) {
	raw, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String("ProcessorId\r\nBFEBFBFF000906EA\r\n")
	require.NoError(t, err)

	got, err := DecodeWith(charmap.CodePage866, []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "ProcessorId\r\nBFEBFBFF000906EA\r\n", got)
}

func TestDecodeWith_BOMOverridesEncoding(t *testing.T) {
	raw, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("SerialNumber\r\nL1HF8AB0123\r\n")
	require.NoError(t, err)

	got, err := DecodeWith(charmap.Windows1252, []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "SerialNumber\r\nL1HF8AB0123\r\n", got)
}

func TestDecodeWith_NilEncodingIsUTF8(t *testing.T) {
	got, err := DecodeWith(nil, []byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, "héllo", got)
}

func TestForName(t *testing.T) {
	tests := []struct {
		name string
		want encoding.Encoding
	}{
		{"", unicode.UTF8},
		{"UTF-8", unicode.UTF8},
		{"utf8", unicode.UTF8},
		{"ANSI_X3.4-1968", unicode.UTF8},
		{"KOI8-R", charmap.KOI8R},
		{"ISO-8859-5", charmap.ISO8859_5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := ForName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, enc)
		})
	}

	_, err := ForName("no-such-charset")
	assert.Error(t, err)
}

func TestCodePage(t *testing.T) {
	assert.Equal(t, charmap.CodePage866, CodePage(866))
	assert.Equal(t, charmap.Windows1251, CodePage(1251))
	assert.Equal(t, unicode.UTF8, CodePage(65001))
	assert.Nil(t, CodePage(1))
}

func TestLocaleCharset(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"empty", map[string]string{}, ""},
		{"lang only", map[string]string{"LANG": "ru_RU.KOI8-R"}, "KOI8-R"},
		{"lc_all wins", map[string]string{"LC_ALL": "de_DE.ISO-8859-1", "LANG": "ru_RU.UTF-8"}, "ISO-8859-1"},
		{"lc_ctype before lang", map[string]string{"LC_CTYPE": "en_US.UTF-8", "LANG": "C"}, "UTF-8"},
		{"modifier stripped", map[string]string{"LANG": "sr_RS.UTF-8@latin"}, "UTF-8"},
		{"no codeset", map[string]string{"LANG": "C"}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := localeCharset(func(k string) string { return tc.env[k] })
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLooksUTF16LE(t *testing.T) {
	assert.False(t, looksUTF16LE([]byte("plain ascii text")))
	assert.False(t, looksUTF16LE([]byte{'A', 0, 'B'}))
	assert.True(t, looksUTF16LE([]byte{'A', 0, 'B', 0, 'C', 0, '\r', 0}))
}

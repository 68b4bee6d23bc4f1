// Package charset resolves the source text encoding of a subtitle stream
// and converts packet bytes to UTF-8.
package charset

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// EncodingSystem is the configured-fallback sentinel meaning "use the
// platform default encoding".
const EncodingSystem = "system"

// character set guessed when the locale gives no hint; suits subtitle
// files authored for Latin-alphabet languages
const defaultEncodingGuess = "Windows-1252"

// selectable source encodings, grouped by script
var encodingNames = []string{
	"UTF-8",
	"UTF-16",
	"UTF-16BE",
	"UTF-16LE",
	"GB18030",
	"ISO-8859-15",
	"Windows-1252",
	"IBM850",
	"ISO-8859-2",
	"Windows-1250",
	"ISO-8859-3",
	"ISO-8859-10",
	"Windows-1251",
	"KOI8-R",
	"KOI8-U",
	"ISO-8859-6",
	"Windows-1256",
	"ISO-8859-7",
	"Windows-1253",
	"ISO-8859-8",
	"Windows-1255",
	"ISO-8859-9",
	"Windows-1254",
	"ISO-8859-11",
	"Windows-874",
	"ISO-8859-13",
	"Windows-1257",
	"ISO-8859-14",
	"ISO-8859-16",
	"ISO-2022-CN-EXT",
	"EUC-CN",
	"ISO-2022-JP-2",
	"EUC-JP",
	"Shift_JIS",
	"CP949",
	"ISO-2022-KR",
	"Big5",
	"ISO-2022-TW",
	"Big5-HKSCS",
	"VISCII",
	"Windows-1258",
}

// Encodings returns the selectable source encoding names.
func Encodings() []string {
	out := make([]string, len(encodingNames))
	copy(out, encodingNames)
	return out
}

// IsUTF8Name reports whether name refers to UTF-8, meaning no converter is
// needed and inputs are only validated.
func IsUTF8Name(name string) bool {
	return strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "utf8")
}

// ResolveName picks the source encoding name following the priority order:
// the name declared by the packet source, then the configured fallback,
// then the locale default.
func ResolveName(declared, configured string) string {
	if declared != "" {
		return declared
	}
	if configured != "" {
		if configured == EncodingSystem {
			return localeEncoding()
		}
		return configured
	}
	return localeEncoding()
}

// HasConverter reports whether a converter can be opened for name.
func HasConverter(name string) bool {
	if IsUTF8Name(name) {
		return true
	}
	_, err := lookup(name)
	return err == nil
}

// localeEncoding derives the platform default encoding from the locale
// codeset suffix, e.g. "ru_RU.KOI8-R" yields "KOI8-R".
func localeEncoding() string {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		loc := os.Getenv(v)
		if loc == "" {
			continue
		}
		if dot := strings.IndexByte(loc, '.'); dot >= 0 {
			cs := loc[dot+1:]
			if at := strings.IndexByte(cs, '@'); at >= 0 {
				cs = cs[:at]
			}
			if cs != "" {
				return cs
			}
		}
		break
	}
	return defaultEncodingGuess
}

func lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		// the IANA index knows the name but has no converter for it
		return nil, fmt.Errorf("encoding %q has no converter", name)
	}
	return enc, nil
}

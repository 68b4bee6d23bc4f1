package charset

import "testing"

func setLocale(t *testing.T, lcAll, lcCtype, lang string) {
	t.Helper()
	t.Setenv("LC_ALL", lcAll)
	t.Setenv("LC_CTYPE", lcCtype)
	t.Setenv("LANG", lang)
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name       string
		declared   string
		configured string
		lcAll      string
		lang       string
		want       string
	}{
		{
			name:       "declared wins over configured",
			declared:   "Shift_JIS",
			configured: "Windows-1251",
			want:       "Shift_JIS",
		},
		{
			name:       "configured wins over locale",
			configured: "Windows-1251",
			lcAll:      "ru_RU.KOI8-R",
			want:       "Windows-1251",
		},
		{
			name:       "system sentinel resolves the locale",
			configured: "system",
			lcAll:      "ru_RU.KOI8-R",
			want:       "KOI8-R",
		},
		{
			name:  "unset falls through to locale",
			lcAll: "ja_JP.EUC-JP",
			want:  "EUC-JP",
		},
		{
			name: "LANG is consulted when LC_ALL is unset",
			lang: "el_GR.ISO-8859-7",
			want: "ISO-8859-7",
		},
		{
			name:  "locale modifier is stripped",
			lcAll: "de_DE.ISO-8859-15@euro",
			want:  "ISO-8859-15",
		},
		{
			name:  "locale without codeset falls back",
			lcAll: "C",
			want:  "Windows-1252",
		},
		{
			name: "no locale at all falls back",
			want: "Windows-1252",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setLocale(t, tt.lcAll, "", tt.lang)
			if got := ResolveName(tt.declared, tt.configured); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsUTF8Name(t *testing.T) {
	for _, name := range []string{"UTF-8", "utf-8", "utf8", "Utf8"} {
		if !IsUTF8Name(name) {
			t.Errorf("%q should count as UTF-8", name)
		}
	}
	for _, name := range []string{"UTF-16", "Windows-1252", ""} {
		if IsUTF8Name(name) {
			t.Errorf("%q should not count as UTF-8", name)
		}
	}
}

func TestHasConverter(t *testing.T) {
	for _, name := range []string{"UTF-8", "Windows-1252", "Shift_JIS", "KOI8-R"} {
		if !HasConverter(name) {
			t.Errorf("expected converter for %q", name)
		}
	}
	if HasConverter("no-such-charset") {
		t.Error("expected no converter for a made-up name")
	}
}

func TestEncodingsIsACopy(t *testing.T) {
	names := Encodings()
	if len(names) == 0 {
		t.Fatal("expected a non-empty encoding list")
	}
	if names[0] != "UTF-8" {
		t.Errorf("expected UTF-8 first, got %q", names[0])
	}

	names[0] = "mutated"
	if Encodings()[0] != "UTF-8" {
		t.Error("mutating the returned slice leaked into the table")
	}
}

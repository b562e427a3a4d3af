package locale

import (
	"testing"
	"time"
)

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "it", want: LanguageItalian},
		{input: "it-IT", want: LanguageItalian},
		{input: "IT_it", want: LanguageItalian},
		{input: "en", want: LanguageEnglish},
		{input: "en-US", want: LanguageEnglish},
		{input: "fr", want: ""},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := NormalizeLanguage(tc.input); got != tc.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestLanguageFromAcceptLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "it-IT,it;q=0.9", want: LanguageItalian},
		{input: "fr-FR,en;q=0.8", want: LanguageEnglish},
		{input: "fr-FR,fr;q=0.9", want: ""},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := LanguageFromAcceptLanguage(tc.input); got != tc.want {
			t.Fatalf("LanguageFromAcceptLanguage(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestPreferenceForLanguage(t *testing.T) {
	pref := PreferenceForLanguage("en")
	if pref.Language != LanguageEnglish || pref.Locale != "en_US" || pref.HTMLLang != "en-US" {
		t.Fatalf("unexpected english preference %#v", pref)
	}

	fallback := PreferenceForLanguage("")
	if fallback.Language != LanguageItalian || fallback.HTMLLang != "it-IT" {
		t.Fatalf("unexpected fallback preference %#v", fallback)
	}
}

func TestPick(t *testing.T) {
	if got := Pick("en", "english", "italiano"); got != "english" {
		t.Fatalf("Pick(en) = %q, want %q", got, "english")
	}
	if got := Pick("it", "english", "italiano"); got != "italiano" {
		t.Fatalf("Pick(it) = %q, want %q", got, "italiano")
	}
	if got := Pick("fr", "english", "italiano"); got != "italiano" {
		t.Fatalf("Pick(fr) = %q, want %q", got, "italiano")
	}
	if got := Pick("en", "", "italiano"); got != "italiano" {
		t.Fatalf("Pick(en) fallback = %q, want %q", got, "italiano")
	}
}

func TestFormatDate(t *testing.T) {
	rome := time.FixedZone("CET", 3600)
	date := time.Date(2020, time.March, 3, 0, 30, 0, 0, rome)

	cases := []struct {
		format DateFormat
		want   string
	}{
		{format: DateDefault, want: "03 Mar, 2020"},
		{format: DateShort, want: "03 Mar, 2020"},
		{format: DateDot, want: "2020.03.03"},
		{format: DateChinese, want: "2020年3月3日"},
		{format: DateISO, want: "2020-03-02"},
		{format: "unknown", want: "03 Mar, 2020"},
	}
	for _, tc := range cases {
		if got := FormatDate(date, tc.format); got != tc.want {
			t.Fatalf("FormatDate(%s) = %q, want %q", tc.format, got, tc.want)
		}
	}

	if got := FormatDate(time.Date(2024, time.May, 9, 12, 0, 0, 0, time.UTC), DateDefault); got != "09 Mag, 2024" {
		t.Fatalf("unexpected italian month: %q", got)
	}
}

func TestLabelsFor(t *testing.T) {
	if got := LabelsFor("it", "education").BackToList; got != "Torna alla Formazione" {
		t.Fatalf("unexpected italian label %q", got)
	}
	if got := LabelsFor("en", "projects").Title; got != "Projects" {
		t.Fatalf("unexpected english label %q", got)
	}
	if got := LabelsFor("it", "unknown").Title; got != "Articoli" {
		t.Fatalf("unexpected fallback label %q", got)
	}
}

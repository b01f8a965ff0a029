package i18n

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		want   Locale
		wantOK bool
	}{
		{value: "zh", want: Chinese, wantOK: true},
		{value: "EN", want: English, wantOK: true},
		{value: "zh-CN", want: Chinese, wantOK: true},
		{value: "en-US", want: English, wantOK: true},
		{value: "fr", wantOK: false},
		{value: "", wantOK: false},
		{value: "not a tag", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.value)
		if ok != tc.wantOK {
			t.Fatalf("Parse(%q) ok = %t, want %t", tc.value, ok, tc.wantOK)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestNormalizeFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := Normalize("de", English); got != English {
		t.Fatalf("Normalize() = %q, want %q", got, English)
	}
	if got := Normalize("de", Locale("fr")); got != DefaultLocale {
		t.Fatalf("Normalize() with invalid fallback = %q, want %q", got, DefaultLocale)
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   Locale
		wantOK bool
	}{
		{header: "en-US,en;q=0.9", want: English, wantOK: true},
		{header: "zh-CN,zh;q=0.9,en;q=0.8", want: Chinese, wantOK: true},
		{header: "fr-FR,fr;q=0.9", wantOK: false},
		{header: "", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := MatchAcceptLanguage(tc.header)
		if ok != tc.wantOK {
			t.Fatalf("MatchAcceptLanguage(%q) ok = %t, want %t", tc.header, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("MatchAcceptLanguage(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestLooksLikeLanguage(t *testing.T) {
	t.Parallel()

	for segment, want := range map[string]bool{
		"zh":       true,
		"fr":       true,
		"eng":      true,
		"tools":    false,
		"category": false,
		"z1":       false,
		"":         false,
	} {
		if got := LooksLikeLanguage(segment); got != want {
			t.Fatalf("LooksLikeLanguage(%q) = %t, want %t", segment, got, want)
		}
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	t.Parallel()

	locales := Supported()
	locales[0] = Locale("xx")
	if Supported()[0] != Chinese {
		t.Fatal("Supported() exposed internal slice")
	}
}

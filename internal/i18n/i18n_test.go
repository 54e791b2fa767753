package i18n

import "testing"

func TestT_ResolvesBothLanguages(t *testing.T) {
	tr := New("en")
	if got := tr.T("title.home"); got != "Where to?" {
		t.Errorf("en title.home: got %q", got)
	}

	tr.SetLanguage("ur")
	if got := tr.T("title.home"); got == "Where to?" || got == "title.home" {
		t.Errorf("ur title.home not translated: %q", got)
	}
}

func TestSetLanguage_UnknownFallsBack(t *testing.T) {
	tr := New("xx")
	if tr.Language() != "en" {
		t.Errorf("unknown language must fall back to en, got %s", tr.Language())
	}
}

func TestT_MissingIDReturnsID(t *testing.T) {
	tr := New("en")
	if got := tr.T("no.such.message"); got != "no.such.message" {
		t.Errorf("missing id must echo the id, got %q", got)
	}
}

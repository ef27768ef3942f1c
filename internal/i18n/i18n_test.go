package i18n_test

import (
	"strings"
	"testing"

	"tagfinder/internal/i18n"
)

func TestT_English(t *testing.T) {
	i18n.Init("en")
	if got := i18n.T("fetch.not_found"); got != "NO LOCATION FOUND" {
		t.Fatalf("fetch.not_found: got %q", got)
	}
	if got := i18n.T("prompt.method_sms", 1, "+1 555"); got != "  1 - SMS to +1 555" {
		t.Fatalf("prompt.method_sms: got %q", got)
	}
}

func TestT_German(t *testing.T) {
	i18n.Init("de")
	defer i18n.Init("en")
	if got := i18n.T("fetch.not_found"); got != "KEIN STANDORT GEFUNDEN" {
		t.Fatalf("de fetch.not_found: got %q", got)
	}
}

func TestT_UnknownLanguageFallsBack(t *testing.T) {
	i18n.Init("xx")
	defer i18n.Init("en")
	if got := i18n.T("login.success"); got != "Login successful!" {
		t.Fatalf("fallback: got %q", got)
	}
}

func TestT_UnknownIDReturnsID(t *testing.T) {
	i18n.Init("en")
	if got := i18n.T("no.such.message"); got != "no.such.message" {
		t.Fatalf("unknown id: got %q", got)
	}
	if !strings.HasPrefix(i18n.T("fetch.not_found_hints"), "Possible reasons:") {
		t.Fatal("block scalar not loaded")
	}
}

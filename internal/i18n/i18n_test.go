package i18n

import "testing"

func TestForLanguage(t *testing.T) {
	id := ForLanguage("id")
	if got := id.T(MsgNetworkError); got != "Terjadi kesalahan jaringan. Silakan coba lagi." {
		t.Errorf("unexpected id message: %q", got)
	}

	en := ForLanguage("en")
	if got := en.T(MsgNetworkError); got != "A network error occurred. Please try again." {
		t.Errorf("unexpected en message: %q", got)
	}

	// Unsupported language falls back to Indonesian.
	fallback := ForLanguage("de")
	if got := fallback.T(MsgForbidden); got != "Anda tidak memiliki akses untuk melakukan tindakan ini." {
		t.Errorf("unexpected fallback message: %q", got)
	}
}

func TestT_UnknownKey(t *testing.T) {
	c := ForLanguage("id")
	if got := c.T("no_such_key"); got != "no_such_key" {
		t.Errorf("unknown key should echo the key, got %q", got)
	}
}

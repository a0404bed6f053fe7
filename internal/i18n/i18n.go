// Package i18n provides the user-visible notice catalog. Indonesian is
// the default; English is available for mixed crews.
package i18n

// Message keys for user-visible notices.
const (
	MsgSessionExpired = "session_expired"
	MsgUnauthorized   = "unauthorized"
	MsgForbidden      = "forbidden"
	MsgNetworkError   = "network_error"
	MsgTimeout        = "timeout"
	MsgInternalError  = "internal_error"
)

var catalogs = map[string]map[string]string{
	"id": {
		MsgSessionExpired: "Sesi Anda telah berakhir. Silakan login kembali.",
		MsgUnauthorized:   "Sesi Anda telah berakhir. Silakan login kembali.",
		MsgForbidden:      "Anda tidak memiliki akses untuk melakukan tindakan ini.",
		MsgNetworkError:   "Terjadi kesalahan jaringan. Silakan coba lagi.",
		MsgTimeout:        "Permintaan melebihi batas waktu. Silakan coba lagi.",
		MsgInternalError:  "Terjadi kesalahan pada server. Silakan hubungi administrator.",
	},
	"en": {
		MsgSessionExpired: "Your session has expired. Please log in again.",
		MsgUnauthorized:   "Your session has expired. Please log in again.",
		MsgForbidden:      "You do not have access to perform this action.",
		MsgNetworkError:   "A network error occurred. Please try again.",
		MsgTimeout:        "The request timed out. Please try again.",
		MsgInternalError:  "A server error occurred. Please contact the administrator.",
	},
}

// Catalog resolves message keys for one language.
type Catalog struct {
	lang string
}

// ForLanguage returns the catalog for lang, falling back to Indonesian
// for unsupported languages.
func ForLanguage(lang string) Catalog {
	if _, ok := catalogs[lang]; !ok {
		lang = "id"
	}
	return Catalog{lang: lang}
}

// T translates a message key. Unknown keys fall back to the key itself
// so a missing entry is visible rather than silent.
func (c Catalog) T(key string) string {
	if msg, ok := catalogs[c.lang][key]; ok {
		return msg
	}
	if msg, ok := catalogs["id"][key]; ok {
		return msg
	}
	return key
}

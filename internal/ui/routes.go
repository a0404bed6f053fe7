package ui

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/me/p2h/internal/guard"
)

// Every screen's URL path equals its route name prefixed with "/"
// (the root path maps to the "main" route), so the guard's
// classification table and the registered routes cannot drift apart.

// RouteName resolves the named route for a request path.
func RouteName(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return guard.RouteMain
	}
	// Nested paths like /data-perusahaan/{id}/delete classify by
	// their first segment.
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// RoutePath returns the URL path for a named route.
func RoutePath(name string) string {
	if name == guard.RouteMain {
		return "/"
	}
	return "/" + name
}

// RegisterRoutes registers all UI routes. The guard middleware runs
// before every one of them; there are no separate public/admin route
// groups because the classification table is the single source of
// truth for access.
func (ui *UI) RegisterRoutes(r chi.Router) {
	r.Use(ui.GuardMiddleware)

	r.Get("/login", ui.HandleLogin)
	r.Post("/login", ui.HandleLoginPost)
	r.Get("/logout", ui.HandleLogout)

	r.Get("/", ui.HandleMain)
	r.Get("/monitor-kendaraan", ui.HandleMonitor)

	// Regular-user screens.
	r.Get("/form-p2h", ui.HandleFormP2H)
	r.Post("/form-p2h", ui.HandleFormP2HSubmit)
	r.Get("/hasil-form", ui.HandleHasilForm)
	r.Get("/riwayat-user", ui.HandleRiwayat)
	r.Get("/profile-user", ui.HandleProfile)

	// Admin screens.
	r.Get("/dashboard", ui.HandleDashboard)
	r.Get("/profil-admin", ui.HandleProfile)

	r.Get("/data-monitor-pt", ui.HandleDataMonitor)
	r.Get("/data-monitor-travel", ui.HandleDataMonitor)

	for _, path := range []string{"/data-pengguna-pt", "/data-pengguna-travel"} {
		r.Get(path, ui.HandleDataPengguna)
		r.Post(path, ui.HandleDataPenggunaCreate)
		r.Post(path+"/{id}/delete", ui.HandleDataPenggunaDelete)
	}

	for _, path := range []string{"/unit-kendaraan-pt", "/unit-kendaraan-travel"} {
		r.Get(path, ui.HandleUnitKendaraan)
		r.Post(path, ui.HandleUnitKendaraanCreate)
		r.Post(path+"/{id}/delete", ui.HandleUnitKendaraanDelete)
	}

	r.Get("/kelola-pertanyaan", ui.HandleKelolaPertanyaan)
	r.Post("/kelola-pertanyaan", ui.HandleKelolaPertanyaanCreate)
	r.Post("/kelola-pertanyaan/{id}/delete", ui.HandleKelolaPertanyaanDelete)

	// Master data CRUD screens share one handler set.
	for route := range masterResources {
		path := RoutePath(route)
		r.Get(path, ui.HandleMasterData)
		r.Post(path, ui.HandleMasterDataCreate)
		r.Post(path+"/{id}/delete", ui.HandleMasterDataDelete)
	}
}

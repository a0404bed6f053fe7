// Package ui is the web client shell: chi routes for the P2H screens,
// cookie sessions backed by the local store, the guard middleware, and
// handlers that render server-side templates over the backend API.
package ui

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/me/p2h/internal/api"
	"github.com/me/p2h/internal/guard"
	"github.com/me/p2h/internal/i18n"
	"github.com/me/p2h/internal/session"
	"github.com/me/p2h/internal/store"
	"github.com/me/p2h/pkg/model"
)

// UI handles the web user interface.
type UI struct {
	api      *api.Client
	store    store.Store
	sessions *SessionManager
	table    guard.Table
	logger   *slog.Logger
	msgs     i18n.Catalog
	secure   bool
}

// Config holds UI configuration.
type Config struct {
	Secure   bool   // use secure cookies (HTTPS)
	Language string // notice catalog language
}

// New creates the UI handler set.
func New(client *api.Client, st store.Store, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		api:      client,
		store:    st,
		sessions: NewSessionManager(st),
		table:    guard.DefaultTable(),
		logger:   logger.With("component", "ui"),
		msgs:     i18n.ForLanguage(cfg.Language),
		secure:   cfg.Secure,
	}
}

// apiFor binds the shared API client to the request's session: the
// bearer token is read fresh from the session on every call, and a
// rejected token clears the session row before the handler reacts.
func (ui *UI) apiFor(r *http.Request) *api.Client {
	sess := SessionFromContext(r.Context())

	tokenSource := func() string {
		if sess != nil {
			return sess.Token
		}
		return ""
	}
	onAuthFailure := func() {
		if sess == nil {
			return
		}
		// Not the request context: the session must be cleared even
		// if the client has already gone away.
		if err := ui.sessions.DeleteSession(context.Background(), sess.ID); err != nil {
			ui.logger.Error("clear session after auth failure", "error", err)
		}
		ui.logger.Warn("backend rejected token, session cleared", "user", sess.UserID)
	}
	return ui.api.Bind(tokenSource, onAuthFailure)
}

// handleAPIError reacts to a failed backend call. Auth failures are
// absorbed here: cookie cleared and one redirect to the login screen,
// skipped when the failing view already is the login screen so two
// concurrent failures or a probing login page never loop. Returns true
// when the response has been written.
func (ui *UI) handleAPIError(w http.ResponseWriter, r *http.Request, err error) bool {
	if !api.IsAuthFailure(err) {
		return false
	}
	ClearSessionCookie(w)
	if RouteName(r.URL.Path) != guard.RouteLogin {
		notice := i18n.MsgSessionExpired
		if apiErr, ok := err.(*api.APIError); ok && apiErr.StatusCode == http.StatusForbidden {
			notice = i18n.MsgForbidden
		}
		http.Redirect(w, r, RoutePath(guard.RouteLogin)+"?notice="+notice, http.StatusSeeOther)
	}
	return true
}

// errorMessage maps a failed call to a user-visible notice.
func (ui *UI) errorMessage(err error) string {
	apiErr, ok := err.(*api.APIError)
	if !ok {
		return ui.msgs.T(i18n.MsgInternalError)
	}
	switch apiErr.Kind {
	case api.KindApplicationError:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return ui.msgs.T(i18n.MsgInternalError)
	case api.KindAuthFailure:
		// Reaches here only for a rejected login; authenticated calls
		// resolve auth failures in handleAPIError.
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return ui.msgs.T(i18n.MsgUnauthorized)
	case api.KindTimeout:
		return ui.msgs.T(i18n.MsgTimeout)
	case api.KindNetworkUnreachable:
		return ui.msgs.T(i18n.MsgNetworkError)
	default:
		return ui.msgs.T(i18n.MsgInternalError)
	}
}

// viewData assembles the common template data: session, title, and
// any notice carried in the query string.
func (ui *UI) viewData(r *http.Request, title string) map[string]any {
	data := map[string]any{
		"Title":   title,
		"Session": SessionFromContext(r.Context()),
	}
	if key := r.URL.Query().Get("notice"); key != "" {
		data["Notice"] = ui.msgs.T(key)
	}
	if msg := r.URL.Query().Get("error"); msg != "" {
		data["Error"] = msg
	}
	return data
}

func (ui *UI) render(w http.ResponseWriter, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderTemplate(w, name, data); err != nil {
		ui.logger.Error("render failed", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// --- Auth screens ---

// HandleLogin renders the login page. The guard has already redirected
// logged-in users to their landing route.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ui.render(w, "login", ui.viewData(r, "Login - P2H"))
}

// HandleLoginPost authenticates against the backend and creates the
// local session from the returned token, role, and profile.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Invalid+request", http.StatusSeeOther)
		return
	}

	phone := strings.TrimSpace(r.FormValue("phone_number"))
	password := r.FormValue("password")
	if phone == "" || password == "" {
		http.Redirect(w, r, "/login?error=Nomor+HP+dan+password+wajib+diisi", http.StatusSeeOther)
		return
	}

	res, err := ui.apiFor(r).Login(r.Context(), phone, password)
	if err != nil {
		ui.logger.Warn("login failed", "phone", phone, "error", err)
		data := ui.viewData(r, "Login - P2H")
		data["Error"] = ui.errorMessage(err)
		ui.render(w, "login", data)
		return
	}

	user := res.User
	if user == nil {
		user = &model.User{}
	}
	// The token claims are authoritative for expiry; the payload role
	// wins because it is what the backend resolved.
	info, _ := session.ParseToken(res.AccessToken)
	if user.Role == "" {
		user.Role = info.Role
	}
	if !user.Role.Known() {
		// Kept, not rejected: the guard treats roles outside the enum
		// permissively and the backend still authorizes every call.
		ui.logger.Warn("backend returned unrecognized role", "user", user.ID, "role", user.Role)
	}

	sess, err := ui.sessions.CreateSession(r.Context(), user, res.AccessToken, info.Expiry)
	if err != nil {
		ui.logger.Error("create session failed", "error", err)
		http.Redirect(w, r, "/login?error=Gagal+membuat+sesi", http.StatusSeeOther)
		return
	}
	SetSessionCookie(w, sess, ui.secure)

	ui.logger.Info("user logged in", "user", user.ID, "role", user.Role)
	http.Redirect(w, r, RoutePath(guard.Landing(user.Role)), http.StatusSeeOther)
}

// HandleLogout clears the session and returns to the login screen.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess := SessionFromContext(r.Context()); sess != nil {
		_ = ui.sessions.DeleteSession(r.Context(), sess.ID)
		ui.logger.Info("user logged out", "user", sess.UserID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, RoutePath(guard.RouteLogin), http.StatusSeeOther)
}

// --- Public screens ---

// HandleMain is the public landing page. Logged-in users never reach
// it; the guard sends them to their role's landing route.
func (ui *UI) HandleMain(w http.ResponseWriter, r *http.Request) {
	ui.render(w, "main", ui.viewData(r, "P2H System"))
}

// HandleMonitor is the public vehicle monitoring screen: lookup by
// hull number, no session required.
func (ui *UI) HandleMonitor(w http.ResponseWriter, r *http.Request) {
	data := ui.viewData(r, "Monitor Kendaraan")

	if lambung := strings.TrimSpace(r.URL.Query().Get("lambung")); lambung != "" {
		data["Query"] = lambung
		v, err := ui.apiFor(r).VehicleByLambung(r.Context(), lambung)
		if err != nil {
			if ui.handleAPIError(w, r, err) {
				return
			}
			data["Error"] = ui.errorMessage(err)
		} else {
			data["Vehicle"] = v
		}
	}
	ui.render(w, "monitor", data)
}

// --- User screens ---

// HandleFormP2H renders the daily inspection form for the selected
// vehicle type.
func (ui *UI) HandleFormP2H(w http.ResponseWriter, r *http.Request) {
	client := ui.apiFor(r)
	data := ui.viewData(r, "Form P2H")

	vehicles, err := client.Vehicles(r.Context(), model.ListOptions{PageSize: 100})
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data["Error"] = ui.errorMessage(err)
		ui.render(w, "form-p2h", data)
		return
	}
	data["Vehicles"] = vehicles

	vehicleID := r.URL.Query().Get("vehicle")
	if vehicleID != "" {
		var selected *model.Vehicle
		for i := range vehicles {
			if vehicles[i].ID == vehicleID {
				selected = &vehicles[i]
				break
			}
		}
		if selected != nil {
			items, err := client.ActiveChecklist(r.Context(), selected.Type)
			if err != nil {
				if ui.handleAPIError(w, r, err) {
					return
				}
				data["Error"] = ui.errorMessage(err)
			} else {
				data["Selected"] = selected
				data["Items"] = items
			}
		}
	}
	ui.render(w, "form-p2h", data)
}

// HandleFormP2HSubmit collects the checklist answers and submits the
// report. Form fields: status_<itemID> and keterangan_<itemID>.
func (ui *UI) HandleFormP2HSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, RoutePath(guard.RouteFormP2H)+"?error=Invalid+request", http.StatusSeeOther)
		return
	}

	report := model.Report{VehicleID: r.FormValue("vehicle_id")}
	for field, values := range r.Form {
		id, ok := strings.CutPrefix(field, "status_")
		if !ok || len(values) == 0 {
			continue
		}
		report.Details = append(report.Details, model.ReportDetail{
			ChecklistItemID: id,
			Status:          model.InspectionStatus(values[0]),
			Keterangan:      r.FormValue("keterangan_" + id),
		})
	}

	if report.VehicleID == "" || len(report.Details) == 0 {
		http.Redirect(w, r, RoutePath(guard.RouteFormP2H)+"?error=Checklist+belum+diisi", http.StatusSeeOther)
		return
	}

	submitted, err := ui.apiFor(r).SubmitReport(r.Context(), report)
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data := ui.viewData(r, "Form P2H")
		data["Error"] = ui.errorMessage(err)
		ui.render(w, "form-p2h", data)
		return
	}

	ui.logger.Info("p2h report submitted", "report", submitted.ID, "vehicle", report.VehicleID)
	http.Redirect(w, r, RoutePath(guard.RouteHasilForm)+"?id="+submitted.ID, http.StatusSeeOther)
}

// HandleHasilForm shows one submitted report.
func (ui *UI) HandleHasilForm(w http.ResponseWriter, r *http.Request) {
	data := ui.viewData(r, "Hasil P2H")

	if id := r.URL.Query().Get("id"); id != "" {
		report, err := ui.apiFor(r).GetReport(r.Context(), id)
		if err != nil {
			if ui.handleAPIError(w, r, err) {
				return
			}
			data["Error"] = ui.errorMessage(err)
		} else {
			data["Report"] = report
		}
	}
	ui.render(w, "hasil-form", data)
}

// HandleRiwayat lists the user's submitted reports.
func (ui *UI) HandleRiwayat(w http.ResponseWriter, r *http.Request) {
	data := ui.viewData(r, "Riwayat P2H")

	reports, err := ui.apiFor(r).Reports(r.Context(), model.ListOptions{})
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data["Error"] = ui.errorMessage(err)
	} else {
		data["Reports"] = reports
	}
	ui.render(w, "riwayat", data)
}

// HandleProfile shows the authenticated profile (user and admin
// variants share the template).
func (ui *UI) HandleProfile(w http.ResponseWriter, r *http.Request) {
	data := ui.viewData(r, "Profil")

	profile, err := ui.apiFor(r).Me(r.Context())
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		// Fall back to the cached profile blob.
		if sess := SessionFromContext(r.Context()); sess != nil {
			profile = sess.Profile
		}
		data["Error"] = ui.errorMessage(err)
	}
	data["Profile"] = profile
	ui.render(w, "profile", data)
}

// --- Admin screens ---

// HandleDashboard renders the statistics dashboard.
func (ui *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	client := ui.apiFor(r)
	data := ui.viewData(r, "Dashboard P2H")

	stats, err := client.DashboardStatistics(r.Context())
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data["Error"] = ui.errorMessage(err)
		ui.render(w, "dashboard", data)
		return
	}
	data["Stats"] = stats

	if monthly, err := client.MonthlyReports(r.Context()); err == nil {
		data["Monthly"] = monthly
	}
	ui.render(w, "dashboard", data)
}

// kategoriForRoute maps the -pt/-travel screen pairs to their filter.
func kategoriForRoute(path string) model.Kategori {
	if strings.HasSuffix(RouteName(path), "-travel") {
		return model.KategoriTravel
	}
	return model.KategoriIMM
}

// HandleDataMonitor lists recent reports for one fleet.
func (ui *UI) HandleDataMonitor(w http.ResponseWriter, r *http.Request) {
	data := ui.viewData(r, "Data Monitor")
	data["Kategori"] = kategoriForRoute(r.URL.Path)

	reports, err := ui.apiFor(r).Reports(r.Context(), model.ListOptions{Kategori: kategoriForRoute(r.URL.Path)})
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data["Error"] = ui.errorMessage(err)
	} else {
		data["Reports"] = reports
	}
	ui.render(w, "data-monitor", data)
}

// HandleDataPengguna lists users for one fleet.
func (ui *UI) HandleDataPengguna(w http.ResponseWriter, r *http.Request) {
	data := ui.viewData(r, "Data Pengguna")
	data["Kategori"] = kategoriForRoute(r.URL.Path)
	data["Route"] = RouteName(r.URL.Path)

	users, err := ui.apiFor(r).Users(r.Context(), model.ListOptions{Kategori: kategoriForRoute(r.URL.Path)})
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data["Error"] = ui.errorMessage(err)
	} else {
		data["Users"] = users
	}
	ui.render(w, "data-pengguna", data)
}

// HandleDataPenggunaCreate registers a user in the fleet of the
// screen it was submitted from.
func (ui *UI) HandleDataPenggunaCreate(w http.ResponseWriter, r *http.Request) {
	route := RouteName(r.URL.Path)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
		return
	}

	u := model.User{
		FullName:    strings.TrimSpace(r.FormValue("full_name")),
		PhoneNumber: strings.TrimSpace(r.FormValue("phone_number")),
		Role:        model.Role(r.FormValue("role")),
		Kategori:    kategoriForRoute(r.URL.Path),
	}
	if u.FullName == "" || u.PhoneNumber == "" {
		http.Redirect(w, r, RoutePath(route)+"?error=Nama+dan+nomor+HP+wajib+diisi", http.StatusSeeOther)
		return
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}

	if err := ui.apiFor(r).CreateUser(r.Context(), u); err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		http.Redirect(w, r, RoutePath(route)+"?error="+url.QueryEscape(ui.errorMessage(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
}

// HandleDataPenggunaDelete deactivates a user.
func (ui *UI) HandleDataPenggunaDelete(w http.ResponseWriter, r *http.Request) {
	route := RouteName(r.URL.Path)
	if err := ui.apiFor(r).DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
	}
	http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
}

// HandleUnitKendaraan lists vehicles for one fleet.
func (ui *UI) HandleUnitKendaraan(w http.ResponseWriter, r *http.Request) {
	data := ui.viewData(r, "Unit Kendaraan")
	data["Kategori"] = kategoriForRoute(r.URL.Path)
	data["Route"] = RouteName(r.URL.Path)

	vehicles, err := ui.apiFor(r).Vehicles(r.Context(), model.ListOptions{Kategori: kategoriForRoute(r.URL.Path)})
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data["Error"] = ui.errorMessage(err)
	} else {
		data["Vehicles"] = vehicles
	}
	ui.render(w, "unit-kendaraan", data)
}

// HandleUnitKendaraanCreate registers a vehicle.
func (ui *UI) HandleUnitKendaraanCreate(w http.ResponseWriter, r *http.Request) {
	route := RouteName(r.URL.Path)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
		return
	}

	v := model.Vehicle{
		NoLambung: strings.TrimSpace(r.FormValue("no_lambung")),
		PlatNomor: strings.TrimSpace(r.FormValue("plat_nomor")),
		Type:      model.VehicleType(r.FormValue("vehicle_type")),
		Merk:      strings.TrimSpace(r.FormValue("merk")),
		IsActive:  true,
	}
	if v.NoLambung == "" || v.Type == "" {
		http.Redirect(w, r, RoutePath(route)+"?error=Nomor+lambung+dan+tipe+wajib+diisi", http.StatusSeeOther)
		return
	}

	if err := ui.apiFor(r).CreateVehicle(r.Context(), v); err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		http.Redirect(w, r, RoutePath(route)+"?error="+url.QueryEscape(ui.errorMessage(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
}

// HandleUnitKendaraanDelete removes a vehicle.
func (ui *UI) HandleUnitKendaraanDelete(w http.ResponseWriter, r *http.Request) {
	route := RouteName(r.URL.Path)
	if err := ui.apiFor(r).DeleteVehicle(r.Context(), chi.URLParam(r, "id")); err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
	}
	http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
}

// HandleKelolaPertanyaan lists all checklist questions.
func (ui *UI) HandleKelolaPertanyaan(w http.ResponseWriter, r *http.Request) {
	data := ui.viewData(r, "Kelola Pertanyaan")

	items, err := ui.apiFor(r).ChecklistItems(r.Context())
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data["Error"] = ui.errorMessage(err)
	} else {
		data["Items"] = items
	}
	ui.render(w, "kelola-pertanyaan", data)
}

// HandleKelolaPertanyaanCreate adds a checklist question.
func (ui *UI) HandleKelolaPertanyaanCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, RoutePath(guard.RouteKelolaPertanyaan), http.StatusSeeOther)
		return
	}

	item := model.ChecklistItem{
		ItemName:    strings.TrimSpace(r.FormValue("question")),
		SectionName: strings.TrimSpace(r.FormValue("section")),
		VehicleTags: r.Form["vehicle_tags"],
		ItemOrder:   1,
	}
	if err := ui.apiFor(r).CreateChecklistItem(r.Context(), item); err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		http.Redirect(w, r, RoutePath(guard.RouteKelolaPertanyaan)+"?error="+url.QueryEscape(ui.errorMessage(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, RoutePath(guard.RouteKelolaPertanyaan), http.StatusSeeOther)
}

// HandleKelolaPertanyaanDelete removes a checklist question.
func (ui *UI) HandleKelolaPertanyaanDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := ui.apiFor(r).DeleteChecklistItem(r.Context(), id); err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
	}
	http.Redirect(w, r, RoutePath(guard.RouteKelolaPertanyaan), http.StatusSeeOther)
}

// --- Master data screens ---

// masterRow is a generic master-data record for the shared template.
type masterRow struct {
	ID   string
	Name string
}

// masterResource binds one master-data screen to its API calls.
type masterResource struct {
	title  string
	list   func(ctx context.Context, c *api.Client) ([]masterRow, error)
	create func(ctx context.Context, c *api.Client, name string) error
	remove func(ctx context.Context, c *api.Client, id string) error
}

var masterResources = map[string]masterResource{
	guard.RouteDataPerusahaan: {
		title: "Data Perusahaan",
		list: func(ctx context.Context, c *api.Client) ([]masterRow, error) {
			items, err := c.Companies(ctx)
			rows := make([]masterRow, 0, len(items))
			for _, it := range items {
				rows = append(rows, masterRow{ID: it.ID, Name: it.Name})
			}
			return rows, err
		},
		create: func(ctx context.Context, c *api.Client, name string) error {
			return c.CreateCompany(ctx, model.Company{Name: name})
		},
		remove: func(ctx context.Context, c *api.Client, id string) error {
			return c.DeleteCompany(ctx, id)
		},
	},
	guard.RouteDataDepartemen: {
		title: "Data Departemen",
		list: func(ctx context.Context, c *api.Client) ([]masterRow, error) {
			items, err := c.Departments(ctx)
			rows := make([]masterRow, 0, len(items))
			for _, it := range items {
				rows = append(rows, masterRow{ID: it.ID, Name: it.Name})
			}
			return rows, err
		},
		create: func(ctx context.Context, c *api.Client, name string) error {
			return c.CreateDepartment(ctx, model.Department{Name: name})
		},
		remove: func(ctx context.Context, c *api.Client, id string) error {
			return c.DeleteDepartment(ctx, id)
		},
	},
	guard.RouteDataPosisi: {
		title: "Data Posisi",
		list: func(ctx context.Context, c *api.Client) ([]masterRow, error) {
			items, err := c.Positions(ctx)
			rows := make([]masterRow, 0, len(items))
			for _, it := range items {
				rows = append(rows, masterRow{ID: it.ID, Name: it.Name})
			}
			return rows, err
		},
		create: func(ctx context.Context, c *api.Client, name string) error {
			return c.CreatePosition(ctx, model.Position{Name: name})
		},
		remove: func(ctx context.Context, c *api.Client, id string) error {
			return c.DeletePosition(ctx, id)
		},
	},
	guard.RouteDataStatus: {
		title: "Data Status Kerja",
		list: func(ctx context.Context, c *api.Client) ([]masterRow, error) {
			items, err := c.WorkStatuses(ctx)
			rows := make([]masterRow, 0, len(items))
			for _, it := range items {
				rows = append(rows, masterRow{ID: it.ID, Name: it.Name})
			}
			return rows, err
		},
		create: func(ctx context.Context, c *api.Client, name string) error {
			return c.CreateWorkStatus(ctx, model.WorkStatus{Name: name})
		},
		remove: func(ctx context.Context, c *api.Client, id string) error {
			return c.DeleteWorkStatus(ctx, id)
		},
	},
}

// HandleMasterData renders a master-data list screen.
func (ui *UI) HandleMasterData(w http.ResponseWriter, r *http.Request) {
	res, ok := masterResources[RouteName(r.URL.Path)]
	if !ok {
		http.NotFound(w, r)
		return
	}

	data := ui.viewData(r, res.title)
	data["Resource"] = RouteName(r.URL.Path)

	rows, err := res.list(r.Context(), ui.apiFor(r))
	if err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		data["Error"] = ui.errorMessage(err)
	} else {
		data["Rows"] = rows
	}
	ui.render(w, "master-data", data)
}

// HandleMasterDataCreate adds a master-data record.
func (ui *UI) HandleMasterDataCreate(w http.ResponseWriter, r *http.Request) {
	route := RouteName(r.URL.Path)
	res, ok := masterResources[route]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Redirect(w, r, RoutePath(route)+"?error=Nama+wajib+diisi", http.StatusSeeOther)
		return
	}

	if err := res.create(r.Context(), ui.apiFor(r), name); err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
		http.Redirect(w, r, RoutePath(route)+"?error="+url.QueryEscape(ui.errorMessage(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
}

// HandleMasterDataDelete removes a master-data record.
func (ui *UI) HandleMasterDataDelete(w http.ResponseWriter, r *http.Request) {
	route := RouteName(r.URL.Path)
	res, ok := masterResources[route]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := res.remove(r.Context(), ui.apiFor(r), chi.URLParam(r, "id")); err != nil {
		if ui.handleAPIError(w, r, err) {
			return
		}
	}
	http.Redirect(w, r, RoutePath(route), http.StatusSeeOther)
}

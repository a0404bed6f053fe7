package ui

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/me/p2h/pkg/model"
)

// Screens are rendered server-side from one shared layout. Templates
// are compiled once at startup; a bad template is a programming error
// and panics early.

var templateFuncs = template.FuncMap{
	"reltime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return humanize.Time(t)
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("02 Jan 2006 15:04")
	},
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"rolelabel": func(r model.Role) string {
		return r.Label()
	},
	"active": func(b bool) string {
		if b {
			return "Aktif"
		}
		return "Nonaktif"
	},
	"statusbadge": func(s model.InspectionStatus) string {
		switch s {
		case model.StatusNormal:
			return "badge-normal"
		case model.StatusAbnormal:
			return "badge-abnormal"
		case model.StatusWarning:
			return "badge-warning"
		}
		return "badge-unknown"
	},
}

const layoutTmpl = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f4f5f7;color:#1f2937}
header{background:#1e3a5f;color:#fff;padding:.75rem 1.5rem;display:flex;justify-content:space-between;align-items:center}
header a{color:#cbd5e1;text-decoration:none;margin-left:1rem}
main{max-width:960px;margin:1.5rem auto;padding:0 1rem}
table{width:100%;border-collapse:collapse;background:#fff}
th,td{padding:.5rem .75rem;border-bottom:1px solid #e5e7eb;text-align:left}
.notice{background:#fef3c7;border:1px solid #f59e0b;padding:.75rem;margin-bottom:1rem;border-radius:4px}
.error{background:#fee2e2;border:1px solid #ef4444;padding:.75rem;margin-bottom:1rem;border-radius:4px}
.badge-normal{color:#047857}.badge-abnormal{color:#b91c1c}.badge-warning{color:#b45309}
form.inline{display:inline}
input,select,textarea{padding:.4rem;margin:.25rem 0;width:100%;max-width:24rem;box-sizing:border-box}
button{padding:.5rem 1rem;background:#1e3a5f;color:#fff;border:0;border-radius:4px;cursor:pointer}
.card{background:#fff;padding:1rem;border-radius:6px;margin-bottom:1rem;box-shadow:0 1px 2px rgba(0,0,0,.06)}
.stats{display:flex;gap:1rem;flex-wrap:wrap}.stats .card{flex:1;min-width:10rem;text-align:center}
.stats .num{font-size:1.75rem;font-weight:700}
</style>
</head>
<body>
<header>
<strong>P2H</strong>
<nav>
{{if .Session}}
  {{if .Session.IsAdmin}}
  <a href="/dashboard">Dashboard</a>
  <a href="/kelola-pertanyaan">Pertanyaan</a>
  <a href="/profil-admin">Profil</a>
  {{else}}
  <a href="/form-p2h">Form P2H</a>
  <a href="/riwayat-user">Riwayat</a>
  <a href="/profile-user">Profil</a>
  {{end}}
  <a href="/logout">Keluar ({{.Session.FullName}})</a>
{{else}}
  <a href="/monitor-kendaraan">Monitor</a>
  <a href="/login">Masuk</a>
{{end}}
</nav>
</header>
<main>
{{with .Notice}}<div class="notice">{{.}}</div>{{end}}
{{with .Error}}<div class="error">{{.}}</div>{{end}}
{{template "content" .}}
</main>
</body>
</html>`

var screenTmpls = map[string]string{
	"login": `{{define "content"}}
<div class="card">
<h1>Masuk</h1>
<form method="post" action="/login">
<label>Nomor HP<br><input type="tel" name="phone_number" required></label><br>
<label>Password<br><input type="password" name="password" required></label><br>
<button type="submit">Masuk</button>
</form>
</div>
{{end}}`,

	"main": `{{define "content"}}
<div class="card">
<h1>Sistem P2H</h1>
<p>Pemeriksaan dan Pengecekan Harian kendaraan sebelum digunakan.</p>
<p><a href="/login">Masuk</a> atau <a href="/monitor-kendaraan">pantau status kendaraan</a> tanpa login.</p>
</div>
{{end}}`,

	"monitor": `{{define "content"}}
<h1>Monitor Kendaraan</h1>
<div class="card">
<form method="get" action="/monitor-kendaraan">
<label>Nomor Lambung<br><input type="text" name="lambung" value="{{.Query}}"></label>
<button type="submit">Cari</button>
</form>
</div>
{{with .Vehicle}}
<div class="card">
<h2>{{.NoLambung}} ({{.PlatNomor}})</h2>
<table>
<tr><th>Tipe</th><td>{{.Type}}</td></tr>
<tr><th>Status</th><td>{{active .IsActive}}</td></tr>
<tr><th>STNK berlaku s/d</th><td>{{.STNKExpiry}}</td></tr>
<tr><th>Pajak berlaku s/d</th><td>{{.PajakExpiry}}</td></tr>
{{with .Driver}}<tr><th>Pengemudi</th><td>{{.FullName}}</td></tr>{{end}}
{{with .Company}}<tr><th>Perusahaan</th><td>{{.Name}}</td></tr>{{end}}
</table>
</div>
{{end}}
{{end}}`,

	"form-p2h": `{{define "content"}}
<h1>Form P2H</h1>
<div class="card">
<form method="get" action="/form-p2h">
<label>Kendaraan<br>
<select name="vehicle" onchange="this.form.submit()">
<option value="">-- pilih kendaraan --</option>
{{$sel := .Selected}}
{{range .Vehicles}}
<option value="{{.ID}}" {{if and $sel (eq .ID $sel.ID)}}selected{{end}}>{{.NoLambung}} - {{.PlatNomor}}</option>
{{end}}
</select></label>
</form>
</div>
{{if .Items}}
<form method="post" action="/form-p2h">
<input type="hidden" name="vehicle_id" value="{{.Selected.ID}}">
{{range .Items}}
<div class="card">
<strong>{{.SectionName}}</strong>: {{.ItemName}}<br>
<label><input type="radio" name="status_{{.ID}}" value="normal" required> Normal</label>
<label><input type="radio" name="status_{{.ID}}" value="abnormal"> Abnormal</label>
<label><input type="radio" name="status_{{.ID}}" value="warning"> Warning</label><br>
<input type="text" name="keterangan_{{.ID}}" placeholder="Keterangan (opsional)">
</div>
{{end}}
<button type="submit">Kirim Laporan</button>
</form>
{{end}}
{{end}}`,

	"hasil-form": `{{define "content"}}
<h1>Hasil P2H</h1>
{{with .Report}}
<div class="card">
<p>Laporan <strong>{{.ID}}</strong>, dikirim {{reltime .SubmittedAt}}.</p>
{{with .Vehicle}}<p>Kendaraan: {{.NoLambung}} ({{.PlatNomor}})</p>{{end}}
<p>Status keseluruhan: <span class="{{statusbadge .OverallStatus}}">{{.OverallStatus}}</span></p>
<table>
<tr><th>Item</th><th>Status</th><th>Keterangan</th></tr>
{{range .Details}}
<tr>
<td>{{with .Item}}{{.ItemName}}{{else}}{{.ChecklistItemID}}{{end}}</td>
<td class="{{statusbadge .Status}}">{{.Status}}</td>
<td>{{.Keterangan}}</td>
</tr>
{{end}}
</table>
</div>
{{else}}
<div class="card"><p>Laporan tidak ditemukan.</p></div>
{{end}}
{{end}}`,

	"riwayat": `{{define "content"}}
<h1>Riwayat P2H</h1>
<table>
<tr><th>Tanggal</th><th>Kendaraan</th><th>Status</th><th></th></tr>
{{range .Reports}}
<tr>
<td>{{date .SubmittedAt}}</td>
<td>{{with .Vehicle}}{{.NoLambung}}{{else}}{{.VehicleID}}{{end}}</td>
<td class="{{statusbadge .OverallStatus}}">{{.OverallStatus}}</td>
<td><a href="/hasil-form?id={{.ID}}">Detail</a></td>
</tr>
{{else}}
<tr><td colspan="4">Belum ada laporan.</td></tr>
{{end}}
</table>
{{end}}`,

	"profile": `{{define "content"}}
<h1>Profil</h1>
{{with .Profile}}
<div class="card">
<table>
<tr><th>Nama</th><td>{{.FullName}}</td></tr>
<tr><th>Nomor HP</th><td>{{.PhoneNumber}}</td></tr>
<tr><th>Peran</th><td>{{rolelabel .Role}}</td></tr>
<tr><th>Kategori</th><td>{{.Kategori}}</td></tr>
{{with .Company}}<tr><th>Perusahaan</th><td>{{.}}</td></tr>{{end}}
{{with .Department}}<tr><th>Departemen</th><td>{{.}}</td></tr>{{end}}
{{with .Position}}<tr><th>Posisi</th><td>{{.}}</td></tr>{{end}}
</table>
</div>
{{end}}
{{end}}`,

	"dashboard": `{{define "content"}}
<h1>Dashboard P2H</h1>
{{with .Stats}}
<div class="stats">
<div class="card"><div class="num">{{comma .TotalReports}}</div>Laporan</div>
<div class="card"><div class="num badge-normal">{{comma .NormalCount}}</div>Normal</div>
<div class="card"><div class="num badge-abnormal">{{comma .AbnormalCount}}</div>Abnormal</div>
<div class="card"><div class="num badge-warning">{{comma .WarningCount}}</div>Warning</div>
<div class="card"><div class="num">{{comma .ActiveVehicles}}/{{comma .TotalVehicles}}</div>Kendaraan aktif</div>
<div class="card"><div class="num">{{comma .TotalUsers}}</div>Pengguna</div>
</div>
{{end}}
{{if .Monthly}}
<div class="card">
<h2>Laporan per Bulan</h2>
<table>
<tr><th>Bulan</th><th>Normal</th><th>Abnormal</th><th>Warning</th></tr>
{{range .Monthly}}
<tr><td>{{.Month}}</td><td>{{comma .Normal}}</td><td>{{comma .Abnormal}}</td><td>{{comma .Warning}}</td></tr>
{{end}}
</table>
</div>
{{end}}
{{end}}`,

	"data-monitor": `{{define "content"}}
<h1>Data Monitor ({{.Kategori}})</h1>
<table>
<tr><th>Tanggal</th><th>Kendaraan</th><th>Pengemudi</th><th>Status</th><th></th></tr>
{{range .Reports}}
<tr>
<td>{{date .SubmittedAt}}</td>
<td>{{with .Vehicle}}{{.NoLambung}}{{else}}{{.VehicleID}}{{end}}</td>
<td>{{with .User}}{{.FullName}}{{end}}</td>
<td class="{{statusbadge .OverallStatus}}">{{.OverallStatus}}</td>
<td><a href="/hasil-form?id={{.ID}}">Detail</a></td>
</tr>
{{else}}
<tr><td colspan="5">Belum ada laporan.</td></tr>
{{end}}
</table>
{{end}}`,

	"data-pengguna": `{{define "content"}}
<h1>Data Pengguna ({{.Kategori}})</h1>
<div class="card">
<form method="post" action="/{{.Route}}">
<label>Nama<br><input type="text" name="full_name" required></label><br>
<label>Nomor HP<br><input type="tel" name="phone_number" required></label><br>
<label>Peran<br>
<select name="role">
<option value="user">User</option>
<option value="viewer">Viewer</option>
<option value="admin">Admin</option>
</select></label>
<button type="submit">Tambah</button>
</form>
</div>
<table>
<tr><th>Nama</th><th>Nomor HP</th><th>Peran</th><th>Perusahaan</th><th></th></tr>
{{range .Users}}
<tr>
<td>{{.FullName}}</td>
<td>{{.PhoneNumber}}</td>
<td>{{rolelabel .Role}}</td>
<td>{{.Company}}</td>
<td>
<form class="inline" method="post" action="/{{$.Route}}/{{.ID}}/delete">
<button type="submit">Hapus</button>
</form>
</td>
</tr>
{{else}}
<tr><td colspan="5">Tidak ada pengguna.</td></tr>
{{end}}
</table>
{{end}}`,

	"unit-kendaraan": `{{define "content"}}
<h1>Unit Kendaraan ({{.Kategori}})</h1>
<div class="card">
<form method="post" action="/{{.Route}}">
<label>No. Lambung<br><input type="text" name="no_lambung" required></label><br>
<label>Plat Nomor<br><input type="text" name="plat_nomor"></label><br>
<label>Tipe<br>
<select name="vehicle_type">
<option>Light Vehicle</option>
<option>Heavy Vehicle</option>
<option>Electric Vehicle</option>
<option>Bus</option>
<option>Mini Bus</option>
</select></label><br>
<label>Merk<br><input type="text" name="merk"></label>
<button type="submit">Tambah</button>
</form>
</div>
<table>
<tr><th>No. Lambung</th><th>Plat</th><th>Tipe</th><th>Status</th><th>STNK s/d</th><th></th></tr>
{{range .Vehicles}}
<tr>
<td>{{.NoLambung}}</td>
<td>{{.PlatNomor}}</td>
<td>{{.Type}}</td>
<td>{{active .IsActive}}</td>
<td>{{.STNKExpiry}}</td>
<td>
<form class="inline" method="post" action="/{{$.Route}}/{{.ID}}/delete">
<button type="submit">Hapus</button>
</form>
</td>
</tr>
{{else}}
<tr><td colspan="6">Tidak ada kendaraan.</td></tr>
{{end}}
</table>
{{end}}`,

	"kelola-pertanyaan": `{{define "content"}}
<h1>Kelola Pertanyaan</h1>
<div class="card">
<form method="post" action="/kelola-pertanyaan">
<label>Seksi<br><input type="text" name="section" required></label><br>
<label>Pertanyaan<br><input type="text" name="question" required></label><br>
<button type="submit">Tambah</button>
</form>
</div>
<table>
<tr><th>Seksi</th><th>Pertanyaan</th><th>Kendaraan</th><th></th></tr>
{{range .Items}}
<tr>
<td>{{.SectionName}}</td>
<td>{{.ItemName}}</td>
<td>{{range .VehicleTags}}{{.}} {{end}}</td>
<td>
<form class="inline" method="post" action="/kelola-pertanyaan/{{.ID}}/delete">
<button type="submit">Hapus</button>
</form>
</td>
</tr>
{{else}}
<tr><td colspan="4">Belum ada pertanyaan.</td></tr>
{{end}}
</table>
{{end}}`,

	"master-data": `{{define "content"}}
<h1>{{.Title}}</h1>
<div class="card">
<form method="post" action="/{{.Resource}}">
<label>Nama<br><input type="text" name="name" required></label>
<button type="submit">Tambah</button>
</form>
</div>
<table>
<tr><th>Nama</th><th></th></tr>
{{range .Rows}}
<tr>
<td>{{.Name}}</td>
<td>
<form class="inline" method="post" action="/{{$.Resource}}/{{.ID}}/delete">
<button type="submit">Hapus</button>
</form>
</td>
</tr>
{{else}}
<tr><td colspan="2">Belum ada data.</td></tr>
{{end}}
</table>
{{end}}`,
}

var templates = compileTemplates()

func compileTemplates() map[string]*template.Template {
	out := make(map[string]*template.Template, len(screenTmpls))
	for name, body := range screenTmpls {
		t := template.Must(template.New("layout").Funcs(templateFuncs).Parse(layoutTmpl))
		template.Must(t.Parse(body))
		out[name] = t
	}
	return out
}

func renderTemplate(w io.Writer, name string, data map[string]any) error {
	t, ok := templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.Execute(w, data)
}

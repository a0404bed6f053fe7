package model

// Master data records managed on the admin screens. The backend owns
// these; the client only lists, creates, updates, and deletes them.

// Company is a perusahaan record.
type Company struct {
	ID     string `json:"id"`
	Name   string `json:"nama_perusahaan"`
	Status string `json:"status,omitempty"`
}

// Department is a departemen record.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"nama_department"`
}

// Position is a posisi (job title) record.
type Position struct {
	ID   string `json:"id"`
	Name string `json:"nama_posisi"`
}

// WorkStatus is a status kerja record (e.g. permanent, contract).
type WorkStatus struct {
	ID   string `json:"id"`
	Name string `json:"nama_status"`
}

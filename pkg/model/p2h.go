package model

import "time"

// InspectionStatus is the answer state of a single checklist item.
type InspectionStatus string

const (
	StatusNormal   InspectionStatus = "normal"
	StatusAbnormal InspectionStatus = "abnormal"
	StatusWarning  InspectionStatus = "warning"
)

// ChecklistItem is one question on the pre-use inspection form.
type ChecklistItem struct {
	ID          string   `json:"id"`
	ItemName    string   `json:"item_name"`
	SectionName string   `json:"section_name"`
	VehicleTags []string `json:"vehicle_tags,omitempty"`
	Shifts      []string `json:"applicable_shifts,omitempty"`
	Options     []string `json:"options,omitempty"`
	ItemOrder   int      `json:"item_order"`
}

// ReportDetail is a single answered checklist item within a report.
type ReportDetail struct {
	ID              string           `json:"id,omitempty"`
	ChecklistItemID string           `json:"checklist_item_id"`
	Item            *ChecklistItem   `json:"checklist_item,omitempty"`
	Status          InspectionStatus `json:"status"`
	Keterangan      string           `json:"keterangan,omitempty"`
}

// Report is a submitted P2H inspection report.
type Report struct {
	ID          string           `json:"id,omitempty"`
	VehicleID   string           `json:"vehicle_id"`
	Vehicle     *Vehicle         `json:"vehicle,omitempty"`
	UserID      string           `json:"user_id,omitempty"`
	User        *User            `json:"user,omitempty"`
	Status      InspectionStatus `json:"overall_status,omitempty"`
	Details     []ReportDetail   `json:"details,omitempty"`
	SubmittedAt time.Time        `json:"submitted_at,omitempty"`
}

// OverallStatus derives the worst detail status: warning beats
// abnormal, abnormal beats normal.
func (r *Report) OverallStatus() InspectionStatus {
	status := StatusNormal
	for _, d := range r.Details {
		switch d.Status {
		case StatusWarning:
			return StatusWarning
		case StatusAbnormal:
			status = StatusAbnormal
		}
	}
	return status
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalReports   int `json:"total_reports"`
	NormalCount    int `json:"normal_count"`
	AbnormalCount  int `json:"abnormal_count"`
	WarningCount   int `json:"warning_count"`
	TotalVehicles  int `json:"total_vehicles"`
	ActiveVehicles int `json:"active_vehicles"`
	TotalUsers     int `json:"total_users"`
}

// MonthlyCount is one bar of the monthly reports chart.
type MonthlyCount struct {
	Month    string `json:"month"` // "2026-08"
	Normal   int    `json:"normal"`
	Abnormal int    `json:"abnormal"`
	Warning  int    `json:"warning"`
}

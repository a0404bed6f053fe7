package model

// VehicleType enumerates the fleet vehicle categories (matches the
// backend enum values).
type VehicleType string

const (
	VehicleLight    VehicleType = "Light Vehicle"
	VehicleHeavy    VehicleType = "Heavy Vehicle"
	VehicleElectric VehicleType = "Electric Vehicle"
	VehicleBus      VehicleType = "Bus"
	VehicleMiniBus  VehicleType = "Mini Bus"
)

// ShiftType indicates how a vehicle is operated.
type ShiftType string

const (
	ShiftRotating ShiftType = "shift"
	ShiftDaily    ShiftType = "non_shift"
)

// Vehicle is a fleet unit. NoLambung is the public hull number
// (e.g. "P.309") used on the monitoring screen.
type Vehicle struct {
	ID             string      `json:"id"`
	NoLambung      string      `json:"no_lambung"`
	WarnaNoLambung string      `json:"warna_no_lambung,omitempty"`
	PlatNomor      string      `json:"plat_nomor,omitempty"`
	Type           VehicleType `json:"vehicle_type"`
	Merk           string      `json:"merk,omitempty"`
	UserID         string      `json:"user_id,omitempty"`
	CompanyID      string      `json:"company_id,omitempty"`
	NoRangka       string      `json:"no_rangka,omitempty"`
	NoMesin        string      `json:"no_mesin,omitempty"`
	STNKExpiry     string      `json:"stnk_expiry,omitempty"`
	PajakExpiry    string      `json:"pajak_expiry,omitempty"`
	KIRExpiry      string      `json:"kir_expiry,omitempty"`
	Shift          ShiftType   `json:"shift_type,omitempty"`
	IsActive       bool        `json:"is_active"`

	// Populated on detail/monitoring responses.
	Driver  *User    `json:"user,omitempty"`
	Company *Company `json:"company,omitempty"`
}

package api

import (
	"context"
	"net/url"

	"github.com/me/p2h/pkg/model"
)

// Endpoint methods mirroring the P2H API surface. Every method returns
// (zero value, error) on failure; auth failures additionally trigger
// the client's OnAuthFailure hook before the error is returned.

// LoginResult is the payload of a successful login.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

// Login authenticates with phone number and password.
func (c *Client) Login(ctx context.Context, phoneNumber, password string) (*LoginResult, error) {
	body := map[string]string{
		"phone_number": phoneNumber,
		"password":     password,
	}
	var res LoginResult
	if err := c.post(ctx, "/auth/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Me fetches the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.get(ctx, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// --- Master data ---

func (c *Client) Companies(ctx context.Context) ([]model.Company, error) {
	var out []model.Company
	err := c.get(ctx, "/master-data/companies", nil, &out)
	return out, err
}

func (c *Client) CreateCompany(ctx context.Context, co model.Company) error {
	return c.post(ctx, "/master-data/companies", co, nil)
}

func (c *Client) UpdateCompany(ctx context.Context, id string, co model.Company) error {
	return c.put(ctx, "/master-data/companies/"+id, co, nil)
}

func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.delete(ctx, "/master-data/companies/"+id)
}

func (c *Client) Departments(ctx context.Context) ([]model.Department, error) {
	var out []model.Department
	err := c.get(ctx, "/master-data/departments", nil, &out)
	return out, err
}

func (c *Client) CreateDepartment(ctx context.Context, d model.Department) error {
	return c.post(ctx, "/master-data/departments", d, nil)
}

func (c *Client) UpdateDepartment(ctx context.Context, id string, d model.Department) error {
	return c.put(ctx, "/master-data/departments/"+id, d, nil)
}

func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	return c.delete(ctx, "/master-data/departments/"+id)
}

func (c *Client) Positions(ctx context.Context) ([]model.Position, error) {
	var out []model.Position
	err := c.get(ctx, "/master-data/positions", nil, &out)
	return out, err
}

func (c *Client) CreatePosition(ctx context.Context, p model.Position) error {
	return c.post(ctx, "/master-data/positions", p, nil)
}

func (c *Client) UpdatePosition(ctx context.Context, id string, p model.Position) error {
	return c.put(ctx, "/master-data/positions/"+id, p, nil)
}

func (c *Client) DeletePosition(ctx context.Context, id string) error {
	return c.delete(ctx, "/master-data/positions/"+id)
}

func (c *Client) WorkStatuses(ctx context.Context) ([]model.WorkStatus, error) {
	var out []model.WorkStatus
	err := c.get(ctx, "/master-data/work-statuses", nil, &out)
	return out, err
}

func (c *Client) CreateWorkStatus(ctx context.Context, ws model.WorkStatus) error {
	return c.post(ctx, "/master-data/work-statuses", ws, nil)
}

func (c *Client) UpdateWorkStatus(ctx context.Context, id string, ws model.WorkStatus) error {
	return c.put(ctx, "/master-data/work-statuses/"+id, ws, nil)
}

func (c *Client) DeleteWorkStatus(ctx context.Context, id string) error {
	return c.delete(ctx, "/master-data/work-statuses/"+id)
}

// --- Checklist management ---

// ChecklistItems lists all checklist questions (admin screen).
func (c *Client) ChecklistItems(ctx context.Context) ([]model.ChecklistItem, error) {
	var out []model.ChecklistItem
	err := c.get(ctx, "/checklist", nil, &out)
	return out, err
}

func (c *Client) CreateChecklistItem(ctx context.Context, item model.ChecklistItem) error {
	return c.post(ctx, "/checklist", item, nil)
}

func (c *Client) DeleteChecklistItem(ctx context.Context, id string) error {
	return c.delete(ctx, "/checklist/"+id)
}

// ActiveChecklist fetches the active questions for one vehicle type
// (the user-facing inspection form).
func (c *Client) ActiveChecklist(ctx context.Context, vehicleType model.VehicleType) ([]model.ChecklistItem, error) {
	var out []model.ChecklistItem
	err := c.get(ctx, "/p2h/checklist/"+url.PathEscape(string(vehicleType)), nil, &out)
	return out, err
}

// --- Users ---

func (c *Client) Users(ctx context.Context, opts model.ListOptions) ([]model.User, error) {
	var out []model.User
	err := c.get(ctx, "/users", listQuery(opts), &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := c.get(ctx, "/users/"+id, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, u model.User) error {
	return c.post(ctx, "/users", u, nil)
}

func (c *Client) UpdateUser(ctx context.Context, id string, u model.User) error {
	return c.put(ctx, "/users/"+id, u, nil)
}

// DeleteUser soft-deletes a user on the backend.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/"+id)
}

// --- Vehicles ---

func (c *Client) Vehicles(ctx context.Context, opts model.ListOptions) ([]model.Vehicle, error) {
	var out []model.Vehicle
	err := c.get(ctx, "/vehicles", listQuery(opts), &out)
	return out, err
}

func (c *Client) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := c.get(ctx, "/vehicles/"+id, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// VehicleByLambung looks a vehicle up by hull number. Public: the
// monitoring screen uses it without a session.
func (c *Client) VehicleByLambung(ctx context.Context, lambung string) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := c.get(ctx, "/vehicles/lambung/"+url.PathEscape(lambung), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) CreateVehicle(ctx context.Context, v model.Vehicle) error {
	return c.post(ctx, "/vehicles", v, nil)
}

func (c *Client) UpdateVehicle(ctx context.Context, id string, v model.Vehicle) error {
	return c.put(ctx, "/vehicles/"+id, v, nil)
}

func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return c.delete(ctx, "/vehicles/"+id)
}

// --- P2H reports ---

// SubmitReport submits a completed inspection checklist.
func (c *Client) SubmitReport(ctx context.Context, report model.Report) (*model.Report, error) {
	var out model.Report
	if err := c.post(ctx, "/p2h/reports", report, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Reports(ctx context.Context, opts model.ListOptions) ([]model.Report, error) {
	var out []model.Report
	err := c.get(ctx, "/p2h/reports", listQuery(opts), &out)
	return out, err
}

func (c *Client) GetReport(ctx context.Context, id string) (*model.Report, error) {
	var r model.Report
	if err := c.get(ctx, "/p2h/reports/"+id, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// --- Dashboard ---

func (c *Client) DashboardStatistics(ctx context.Context) (*model.DashboardStats, error) {
	var s model.DashboardStats
	if err := c.get(ctx, "/dashboard/statistics", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) MonthlyReports(ctx context.Context) ([]model.MonthlyCount, error) {
	var out []model.MonthlyCount
	err := c.get(ctx, "/dashboard/monthly-reports", nil, &out)
	return out, err
}

package employee

type EmployeeResponse struct {
	ID                string `json:"id"`
	EmployeeNumber    string `json:"employee_number"`
	EmployeeType      string `json:"employee_type"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Status            string `json:"status"`
	CompanyID         string `json:"company_id"`
	DepartmentID      string `json:"department_id,omitempty"`
	DepartmentName    string `json:"department_name,omitempty"`
	JobTitle          string `json:"job_title,omitempty"`
	JoiningDate       string `json:"joining_date,omitempty"`
	PrimaryPhone      string `json:"primary_phone,omitempty"`
	PrimaryEmail      string `json:"primary_email,omitempty"`
	ERPEnabled        bool   `json:"erp_enabled"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
}

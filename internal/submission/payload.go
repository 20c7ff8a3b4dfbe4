package submission

// EmployeePayload is the shape the employee API expects. Optional legal
// fields are pointers without omitempty on purpose: an untouched field is
// serialized as an explicit null so the API can tell "never set" apart from
// "not sent".
type EmployeePayload struct {
	// Identity
	EmployeeType   string  `json:"employee_type"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	EmployeeNumber string  `json:"employee_number"`
	Status         string  `json:"status"`
	Role           string  `json:"role"`
	PersonalImage  *string `json:"personal_image"`

	// Personal details
	Gender         string `json:"gender"`
	MaritalStatus  string `json:"marital_status"`
	Nationality    string `json:"nationality"`
	CurrentAddress string `json:"current_address"`
	ChildrenCount  int    `json:"children_count"`
	Birthday       string `json:"birthday"`

	// Contacts (values already normalized)
	Contacts []ContactPayload `json:"contacts"`
	Emails   []string         `json:"emails"`

	// Company assignment
	CompanyID         string  `json:"company_id"`
	CompanyName       string  `json:"company_name"`
	DepartmentName    string  `json:"department_name"`
	JobTitle          string  `json:"job_title"`
	AttendanceProgram string  `json:"attendance_program"`
	JoiningDate       string  `json:"joining_date"`
	ExitDate          *string `json:"exit_date"`
	CompanyLocation   string  `json:"company_location"`
	Manager           *string `json:"manager"`
	IsLineManager     bool    `json:"is_line_manager"`

	// Passport (mandatory block)
	PassportNumber     string  `json:"passport_number"`
	PassportIssueDate  string  `json:"passport_issue_date"`
	PassportExpiryDate string  `json:"passport_expiry_date"`
	PassportAttachment *string `json:"passport_attachment"`

	// Optional legal documents
	NationalIDNumber     *string `json:"national_id_number"`
	NationalIDIssueDate  *string `json:"national_id_issue_date"`
	NationalIDExpiryDate *string `json:"national_id_expiry_date"`
	NationalIDAttachment *string `json:"national_id_attachment"`

	ResidencyNumber     *string `json:"residency_number"`
	ResidencyIssueDate  *string `json:"residency_issue_date"`
	ResidencyExpiryDate *string `json:"residency_expiry_date"`
	ResidencyAttachment *string `json:"residency_attachment"`

	InsuranceNumber     *string `json:"insurance_number"`
	InsuranceIssueDate  *string `json:"insurance_issue_date"`
	InsuranceExpiryDate *string `json:"insurance_expiry_date"`
	InsuranceAttachment *string `json:"insurance_attachment"`

	DrivingLicenseNumber     *string `json:"driving_license_number"`
	DrivingLicenseIssueDate  *string `json:"driving_license_issue_date"`
	DrivingLicenseExpiryDate *string `json:"driving_license_expiry_date"`
	DrivingLicenseAttachment *string `json:"driving_license_attachment"`

	LabourIDNumber     *string `json:"labour_id_number"`
	LabourIDIssueDate  *string `json:"labour_id_issue_date"`
	LabourIDExpiryDate *string `json:"labour_id_expiry_date"`
	LabourIDAttachment *string `json:"labour_id_attachment"`

	// ERP access: present only when enabled
	ERPAccess *ERPPayload `json:"erp_access,omitempty"`
}

type ContactPayload struct {
	Type        string `json:"type"`
	Value       string `json:"value"`
	CountryCode string `json:"country_code"`
}

// ERPPayload carries ERP credentials. Password is present only when the
// client chose one; in generate mode the API is expected to mint one-time
// credentials itself.
type ERPPayload struct {
	WorkEmail        string `json:"work_email"`
	Role             string `json:"role"`
	GeneratePassword bool   `json:"generate_password"`
	Password         string `json:"password,omitempty"`
	IsLineManager    bool   `json:"is_line_manager"`
}

package validation

// Code is a structured validation error code. The validator never produces
// display copy; the presentation layer owns the mapping from code to text.
type Code string

const (
	CodeRequired      Code = "REQUIRED"
	CodeMalformedDate Code = "MALFORMED_DATE"
	CodeUnder18       Code = "UNDER_18"
	CodeExpiresSoon   Code = "EXPIRES_TOO_SOON"
	CodeTooShort      Code = "TOO_SHORT"
	CodePattern       Code = "PATTERN"
	CodeMismatch      Code = "MISMATCH"
	CodeNegative      Code = "NEGATIVE"
)

// Errors maps a draft field name to the reason it failed. An empty map means
// the step passed.
type Errors map[string]Code

// Field names used as error keys. Nested legal-document fields are addressed
// with a dotted path.
const (
	FieldEmployeeType      = "employee_type"
	FieldFirstName         = "first_name"
	FieldLastName          = "last_name"
	FieldEmployeeID        = "employee_id"
	FieldStatus            = "status"
	FieldWorkEmail         = "erp_access.work_email"
	FieldPassword          = "erp_access.password"
	FieldPasswordConfirm   = "erp_access.password_confirm"
	FieldGender            = "gender"
	FieldMaritalStatus     = "marital_status"
	FieldNationality       = "nationality"
	FieldCurrentAddress    = "current_address"
	FieldChildrenCount     = "children_count"
	FieldBirthday          = "birthday"
	FieldContacts          = "contacts"
	FieldEmails            = "emails"
	FieldCompany           = "company"
	FieldDepartment        = "department"
	FieldJobTitle          = "job_title"
	FieldAttendanceProgram = "attendance_program"
	FieldJoiningDate       = "joining_date"
	FieldCompanyLocation   = "company_location"
	FieldPassportNumber    = "passport.number"
	FieldPassportIssue     = "passport.issue"
	FieldPassportExpiry    = "passport.expiry"
)

package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the persisted record a successful wizard submission produces.
// Optional legal-document columns are pointers so "never set" survives as
// NULL in the database, mirroring the explicit nulls of the API payload.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;index"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
	DepartmentName string     `gorm:"type:varchar(150)"`

	EmployeeType   string `gorm:"type:varchar(50);not null"`
	FirstName      string `gorm:"type:varchar(100);not null"`
	LastName       string `gorm:"type:varchar(100);not null"`
	EmployeeNumber string `gorm:"type:varchar(50);uniqueIndex:uq_employee_number"`
	Status         string `gorm:"type:varchar(30);not null"`
	Role           string `gorm:"type:varchar(50)"`
	PersonalImage  *string

	Gender         string `gorm:"type:varchar(20)"`
	MaritalStatus  string `gorm:"type:varchar(20)"`
	Nationality    string `gorm:"type:varchar(10)"`
	CurrentAddress string
	ChildrenCount  int
	Birthday       time.Time

	PrimaryPhone string `gorm:"type:varchar(30)"`
	PrimaryEmail string `gorm:"type:varchar(255);uniqueIndex:uq_employee_email"`
	ContactsJSON []byte `gorm:"type:jsonb;column:contacts"`
	EmailsJSON   []byte `gorm:"type:jsonb;column:emails"`

	JobTitle          string `gorm:"type:varchar(100)"`
	AttendanceProgram string `gorm:"type:varchar(50)"`
	JoiningDate       time.Time
	ExitDate          *time.Time
	CompanyLocation   string `gorm:"type:varchar(100)"`
	Manager           *string
	IsLineManager     bool

	PassportNumber     string `gorm:"type:varchar(50);not null"`
	PassportIssueDate  time.Time
	PassportExpiryDate time.Time
	PassportAttachment *string

	NationalIDNumber     *string
	NationalIDIssueDate  *time.Time
	NationalIDExpiryDate *time.Time
	NationalIDAttachment *string

	ResidencyNumber     *string
	ResidencyIssueDate  *time.Time
	ResidencyExpiryDate *time.Time
	ResidencyAttachment *string

	InsuranceNumber     *string
	InsuranceIssueDate  *time.Time
	InsuranceExpiryDate *time.Time
	InsuranceAttachment *string

	DrivingLicenseNumber     *string
	DrivingLicenseIssueDate  *time.Time
	DrivingLicenseExpiryDate *time.Time
	DrivingLicenseAttachment *string

	LabourIDNumber     *string
	LabourIDIssueDate  *time.Time
	LabourIDExpiryDate *time.Time
	LabourIDAttachment *string

	ERPEnabled       bool
	WorkEmail        *string `gorm:"type:varchar(255)"`
	ERPRole          *string `gorm:"type:varchar(50)"`
	PasswordHash     *string
	ERPProvisionedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

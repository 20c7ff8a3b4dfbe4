package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is one organizational entity employees can be filed under. The
// wizard reads these as reference data; the admin endpoints manage them.
type Company struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(150);not null;uniqueIndex:uq_company_name"`
	Email     string         `gorm:"type:varchar(255);index"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}

// Locations is the static set of company locations offered by the company
// assignment step.
var Locations = []string{
	"Head Office",
	"Dubai Branch",
	"Abu Dhabi Branch",
	"Sharjah Branch",
	"Remote",
}

// AttendancePrograms is the static set of attendance programs an employee can
// be assigned to.
var AttendancePrograms = []string{
	"standard",
	"shift",
	"flexible",
	"remote",
}

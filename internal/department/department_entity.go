package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_department_company_name"`
	Name      string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_department_company_name"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Department) TableName() string {
	return "departments"
}

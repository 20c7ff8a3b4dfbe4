package events

import "time"

const EmployeeCreatedTopic = "hr.onboarding.employee.v1"

// EmployeeCreatedEvent diterbitkan setelah submit wizard berhasil membuat
// record karyawan. ERPEnabled memberi tahu consumer provisioning apakah akun
// ERP perlu disiapkan.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	ERPEnabled bool      `json:"erp_enabled"`
	OccurredAt time.Time `json:"occurred_at"`
}

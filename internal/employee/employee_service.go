package employee

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"go-onboarding/internal/events"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/shared/contextutil"
	"go-onboarding/internal/shared/counter"
	"go-onboarding/internal/submission"

	employeeerrors "go-onboarding/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, p submission.EmployeePayload) (EmployeeResponse, error)
	Update(ctx context.Context, id string, p submission.EmployeePayload) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	MarkERPProvisioned(ctx context.Context, companyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	p submission.EmployeePayload,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", p.CompanyID),
		zap.String("employee_number", p.EmployeeNumber),
	)

	companyID, err := uuid.Parse(p.CompanyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if p.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, p.CompanyID, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		p.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	departmentID, err := qtx.GetDepartmentIDByName(ctx, p.CompanyID, p.DepartmentName)
	if err != nil {
		s.logger.Error("create employee resolve department failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           uuid.New(),
		CompanyID:    companyID,
		DepartmentID: uuidPtr(departmentID),
	}
	if err := applyPayload(empl, p); err != nil {
		s.logger.Warn("create employee invalid payload", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tempPassword, err := s.applyERPCredentials(empl, p)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.queueCreatedEvent(ctx, tx, rid, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	resp := mapToResponse(*empl)
	resp.TemporaryPassword = tempPassword
	return resp, nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	p submission.EmployeePayload,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", p.CompanyID),
		zap.String("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndCompany(ctx, p.CompanyID, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	departmentID, err := qtx.GetDepartmentIDByName(ctx, p.CompanyID, p.DepartmentName)
	if err != nil {
		s.logger.Error("update employee resolve department failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	empl.DepartmentID = uuidPtr(departmentID)

	if err := applyPayload(empl, p); err != nil {
		s.logger.Warn("update employee invalid payload", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tempPassword, err := s.applyERPCredentials(empl, p)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	resp := mapToResponse(*empl)
	resp.TemporaryPassword = tempPassword
	return resp, nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("company_id", companyID))
	employees, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) MarkERPProvisioned(ctx context.Context, companyID, id string) error {
	if err := s.repo.MarkERPProvisioned(ctx, companyID, id, time.Now().UTC()); err != nil {
		s.logger.Error("mark erp provisioned failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) queueCreatedEvent(ctx context.Context, tx *sql.Tx, rid string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  rid,
		EmployeeID: empl.ID.String(),
		CompanyID:  empl.CompanyID.String(),
		ERPEnabled: empl.ERPEnabled,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   empl.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("create employee outbox queued",
		zap.String("employee_id", empl.ID.String()),
	)
	return nil
}

// applyERPCredentials hashes the chosen password or mints a temporary one in
// generate mode. The returned plaintext temporary password leaves this
// function exactly once; only the bcrypt hash is stored.
func (s *service) applyERPCredentials(empl *Employee, p submission.EmployeePayload) (string, error) {
	if p.ERPAccess == nil {
		empl.ERPEnabled = false
		empl.WorkEmail = nil
		empl.ERPRole = nil
		empl.PasswordHash = nil
		return "", nil
	}

	empl.ERPEnabled = true
	empl.WorkEmail = &p.ERPAccess.WorkEmail
	if p.ERPAccess.Role != "" {
		role := p.ERPAccess.Role
		empl.ERPRole = &role
	}

	plaintext := p.ERPAccess.Password
	tempPassword := ""
	if p.ERPAccess.GeneratePassword {
		generated, err := generateTempPassword()
		if err != nil {
			s.logger.Error("generate temporary password failed", zap.Error(err))
			return "", err
		}
		plaintext = generated
		tempPassword = generated
	}

	if plaintext != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		hashStr := string(hash)
		empl.PasswordHash = &hashStr
	}

	return tempPassword, nil
}

const tempPasswordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const tempPasswordLength = 12

func generateTempPassword() (string, error) {
	buf := make([]byte, tempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = tempPasswordCharset[n.Int64()]
	}
	return string(buf), nil
}

func applyPayload(e *Employee, p submission.EmployeePayload) error {
	birthday, err := time.Parse(dateLayout, p.Birthday)
	if err != nil {
		return employeeerrors.ErrInvalidDate
	}
	joining, err := time.Parse(dateLayout, p.JoiningDate)
	if err != nil {
		return employeeerrors.ErrInvalidDate
	}
	passportIssue, err := time.Parse(dateLayout, p.PassportIssueDate)
	if err != nil {
		return employeeerrors.ErrInvalidDate
	}
	passportExpiry, err := time.Parse(dateLayout, p.PassportExpiryDate)
	if err != nil {
		return employeeerrors.ErrInvalidDate
	}

	exitDate, err := parseOptionalDate(p.ExitDate)
	if err != nil {
		return err
	}

	contactsJSON, err := json.Marshal(p.Contacts)
	if err != nil {
		return err
	}
	emailsJSON, err := json.Marshal(p.Emails)
	if err != nil {
		return err
	}

	e.EmployeeType = p.EmployeeType
	e.FirstName = p.FirstName
	e.LastName = p.LastName
	e.EmployeeNumber = p.EmployeeNumber
	e.Status = p.Status
	e.Role = p.Role
	e.PersonalImage = p.PersonalImage

	e.Gender = p.Gender
	e.MaritalStatus = p.MaritalStatus
	e.Nationality = p.Nationality
	e.CurrentAddress = p.CurrentAddress
	e.ChildrenCount = p.ChildrenCount
	e.Birthday = birthday

	if len(p.Contacts) > 0 {
		e.PrimaryPhone = p.Contacts[0].Value
	}
	if len(p.Emails) > 0 {
		e.PrimaryEmail = p.Emails[0]
	}
	e.ContactsJSON = contactsJSON
	e.EmailsJSON = emailsJSON

	e.DepartmentName = p.DepartmentName
	e.JobTitle = p.JobTitle
	e.AttendanceProgram = p.AttendanceProgram
	e.JoiningDate = joining
	e.ExitDate = exitDate
	e.CompanyLocation = p.CompanyLocation
	e.Manager = p.Manager
	e.IsLineManager = p.IsLineManager

	e.PassportNumber = p.PassportNumber
	e.PassportIssueDate = passportIssue
	e.PassportExpiryDate = passportExpiry
	e.PassportAttachment = p.PassportAttachment

	e.NationalIDNumber = p.NationalIDNumber
	if e.NationalIDIssueDate, err = parseOptionalDate(p.NationalIDIssueDate); err != nil {
		return err
	}
	if e.NationalIDExpiryDate, err = parseOptionalDate(p.NationalIDExpiryDate); err != nil {
		return err
	}
	e.NationalIDAttachment = p.NationalIDAttachment

	e.ResidencyNumber = p.ResidencyNumber
	if e.ResidencyIssueDate, err = parseOptionalDate(p.ResidencyIssueDate); err != nil {
		return err
	}
	if e.ResidencyExpiryDate, err = parseOptionalDate(p.ResidencyExpiryDate); err != nil {
		return err
	}
	e.ResidencyAttachment = p.ResidencyAttachment

	e.InsuranceNumber = p.InsuranceNumber
	if e.InsuranceIssueDate, err = parseOptionalDate(p.InsuranceIssueDate); err != nil {
		return err
	}
	if e.InsuranceExpiryDate, err = parseOptionalDate(p.InsuranceExpiryDate); err != nil {
		return err
	}
	e.InsuranceAttachment = p.InsuranceAttachment

	e.DrivingLicenseNumber = p.DrivingLicenseNumber
	if e.DrivingLicenseIssueDate, err = parseOptionalDate(p.DrivingLicenseIssueDate); err != nil {
		return err
	}
	if e.DrivingLicenseExpiryDate, err = parseOptionalDate(p.DrivingLicenseExpiryDate); err != nil {
		return err
	}
	e.DrivingLicenseAttachment = p.DrivingLicenseAttachment

	e.LabourIDNumber = p.LabourIDNumber
	if e.LabourIDIssueDate, err = parseOptionalDate(p.LabourIDIssueDate); err != nil {
		return err
	}
	if e.LabourIDExpiryDate, err = parseOptionalDate(p.LabourIDExpiryDate); err != nil {
		return err
	}
	e.LabourIDAttachment = p.LabourIDAttachment

	return nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	return &t, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		EmployeeType:   empl.EmployeeType,
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		Status:         empl.Status,
		CompanyID:      empl.CompanyID.String(),
		DepartmentID:   uuidToString(empl.DepartmentID),
		DepartmentName: empl.DepartmentName,
		JobTitle:       empl.JobTitle,
		JoiningDate:    empl.JoiningDate.Format(dateLayout),
		PrimaryPhone:   empl.PrimaryPhone,
		PrimaryEmail:   empl.PrimaryEmail,
		ERPEnabled:     empl.ERPEnabled,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}

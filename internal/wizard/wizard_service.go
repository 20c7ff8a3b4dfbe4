package wizard

import (
	"context"
	"errors"
	"time"

	"go-onboarding/internal/draft"
	"go-onboarding/internal/prefill"
	"go-onboarding/internal/refdata"
	"go-onboarding/internal/shared/contextutil"
	"go-onboarding/internal/stepper"
	"go-onboarding/internal/submission"
	wizarderrors "go-onboarding/internal/wizard/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	submitLockPrefix = "onboarding:submit:"
	submitLockTTL    = 30 * time.Second
)

func SubmitLockKey(draftID string) string {
	return submitLockPrefix + draftID
}

// Submitter is what the wizard hands a finished session to. Satisfied by
// submission.Pipeline.
type Submitter interface {
	Submit(ctx context.Context, sess *draft.Session, now time.Time) (submission.Result, error)
}

//go:generate mockgen -source=wizard_service.go -destination=mock/wizard_service_mock.go -package=mock
type Service interface {
	CreateDraft(ctx context.Context, req CreateDraftRequest) (DraftView, error)
	Get(ctx context.Context, id string) (DraftView, error)
	Patch(ctx context.Context, id string, patch []byte) (DraftView, error)
	Next(ctx context.Context, id string) (DraftView, error)
	Prev(ctx context.Context, id string) (DraftView, error)
	Jump(ctx context.Context, id string, target int) (DraftView, error)
	Submit(ctx context.Context, id string) (SubmitView, error)
	Discard(ctx context.Context, id string) error
}

type service struct {
	store     draft.Store
	loader    refdata.Loader
	submitter Submitter
	rdb       *redis.Client
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	store draft.Store,
	loader refdata.Loader,
	submitter Submitter,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("wizard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wizard.service")
	}
	return &service{
		store:     store,
		loader:    loader,
		submitter: submitter,
		rdb:       rdb,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) CreateDraft(ctx context.Context, req CreateDraftRequest) (DraftView, error) {
	rid := contextutil.GetRequestID(ctx)

	values := prefill.Resolve(req.Navigation, prefill.Ambient{
		CompanyID:   req.AmbientCompanyID,
		CompanyName: req.AmbientCompanyName,
	})

	now := s.now().UTC()
	sess := &draft.Session{
		ID:          uuid.NewString(),
		EmployeeRef: req.EmployeeRef,
		Step:        draft.StepIdentity,
		Draft:       prefill.Seed(values),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return DraftView{}, err
	}

	if sess.Draft.CompanyID != "" {
		sess = s.loadDepartmentOptions(ctx, sess, sess.Draft.CompanyID, "")
	}

	s.logger.Info("draft session created",
		zap.String("request_id", rid),
		zap.String("draft_id", sess.ID),
		zap.String("company_id", sess.Draft.CompanyID),
	)

	return s.view(sess), nil
}

func (s *service) Get(ctx context.Context, id string) (DraftView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return DraftView{}, err
	}
	return s.view(sess), nil
}

func (s *service) Patch(ctx context.Context, id string, patch []byte) (DraftView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return DraftView{}, err
	}

	prevCompanyID := sess.Draft.CompanyID
	prevCompany := sess.Draft.Company

	next, err := sess.Draft.Apply(patch)
	if err != nil {
		s.logger.Warn("draft patch rejected",
			zap.String("draft_id", id),
			zap.Error(err),
		)
		return DraftView{}, wizarderrors.ErrInvalidPatch
	}

	sess.Draft = next
	sess.UpdatedAt = s.now().UTC()

	companyChanged := next.CompanyID != prevCompanyID || next.Company != prevCompany
	var priorDepartment draft.NameString
	if companyChanged {
		// Department ikut dibersihkan dulu; dikembalikan setelah fetch
		// kalau masih ada di daftar milik company baru
		priorDepartment = sess.Draft.Department
		sess.Draft.Department = ""
		sess.DepartmentOptions = nil
		sess.OptionsCompanyID = ""
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return DraftView{}, err
	}

	if companyChanged && sess.Draft.CompanyID != "" {
		sess = s.loadDepartmentOptions(ctx, sess, sess.Draft.CompanyID, priorDepartment)
	}

	return s.view(sess), nil
}

func (s *service) Next(ctx context.Context, id string) (DraftView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return DraftView{}, err
	}

	m, errs := stepper.At(sess.Step).Next(sess.Draft, s.now())
	if len(errs) > 0 {
		v := s.view(sess)
		v.StepErrors = errs
		return v, nil
	}

	sess.Step = m.Current
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, sess); err != nil {
		return DraftView{}, err
	}

	return s.view(sess), nil
}

func (s *service) Prev(ctx context.Context, id string) (DraftView, error) {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return DraftView{}, err
	}

	sess.Step = stepper.At(sess.Step).Prev().Current
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, sess); err != nil {
		return DraftView{}, err
	}

	return s.view(sess), nil
}

func (s *service) Jump(ctx context.Context, id string, target int) (DraftView, error) {
	if target < draft.StepIdentity || target > draft.StepReview {
		return DraftView{}, wizarderrors.ErrInvalidStep
	}

	sess, err := s.getSession(ctx, id)
	if err != nil {
		return DraftView{}, err
	}

	m, blocking, errs := stepper.At(sess.Step).JumpTo(target, sess.Draft, s.now())
	if blocking >= 0 {
		v := s.view(sess)
		v.BlockingStep = &blocking
		v.StepErrors = errs
		return v, nil
	}

	sess.Step = m.Current
	sess.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, sess); err != nil {
		return DraftView{}, err
	}

	return s.view(sess), nil
}

func (s *service) Submit(ctx context.Context, id string) (SubmitView, error) {
	rid := contextutil.GetRequestID(ctx)

	sess, err := s.getSession(ctx, id)
	if err != nil {
		return SubmitView{}, err
	}

	if sess.Step != draft.StepReview {
		return SubmitView{}, wizarderrors.ErrNotOnReviewStep
	}

	if !s.acquireSubmitLock(ctx, id) {
		return SubmitView{}, wizarderrors.ErrSubmitInProgress
	}

	res, err := s.submitter.Submit(ctx, sess, s.now())
	if err != nil {
		s.releaseSubmitLock(ctx, id)
		return SubmitView{}, err
	}

	// Sesi selesai; draft tidak bisa dipakai ulang
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Warn("delete submitted draft session failed",
			zap.String("request_id", rid),
			zap.String("draft_id", id),
			zap.Error(err),
		)
	}
	s.releaseSubmitLock(ctx, id)

	message := res.Message
	if message == "" {
		message = "Employee berhasil dibuat"
	}

	return SubmitView{
		EmployeeID:        res.EmployeeID,
		TemporaryPassword: res.TemporaryPassword,
		Message:           message,
	}, nil
}

func (s *service) Discard(ctx context.Context, id string) error {
	if _, err := s.getSession(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *service) getSession(ctx context.Context, id string) (*draft.Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, draft.ErrSessionNotFound) {
			return nil, wizarderrors.ErrDraftNotFound
		}
		return nil, err
	}
	return sess, nil
}

// loadDepartmentOptions fetches the department dropdown for companyID and
// attaches it to the session. The session is re-read after the fetch: when a
// newer patch switched the company while the fetch was in flight, the stale
// result is dropped instead of overwriting the newer selection. A non-empty
// restore is put back on the draft when the fetched list contains it, so a
// department shared between companies survives the switch.
func (s *service) loadDepartmentOptions(ctx context.Context, sess *draft.Session, companyID string, restore draft.NameString) *draft.Session {
	departments, err := s.loader.Departments(ctx, companyID)
	if err != nil {
		s.logger.Warn("load department options failed",
			zap.String("draft_id", sess.ID),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return sess
	}

	current, err := s.store.Get(ctx, sess.ID)
	if err != nil {
		return sess
	}

	if current.Draft.CompanyID != companyID {
		s.logger.Info("discarding stale department options",
			zap.String("draft_id", sess.ID),
			zap.String("loaded_for", companyID),
			zap.String("selected", current.Draft.CompanyID),
		)
		return current
	}

	options := make([]draft.DepartmentOption, len(departments))
	for i, d := range departments {
		options[i] = draft.DepartmentOption{ID: d.ID, Name: d.Name}
	}

	current.DepartmentOptions = options
	current.OptionsCompanyID = companyID
	if restore != "" && current.Draft.Department == "" {
		for _, o := range options {
			if o.Name == restore.String() {
				current.Draft.Department = restore
				break
			}
		}
	}
	current.UpdatedAt = s.now().UTC()

	if err := s.store.Save(ctx, current); err != nil {
		s.logger.Warn("save department options failed",
			zap.String("draft_id", sess.ID),
			zap.Error(err),
		)
	}
	return current
}

func (s *service) acquireSubmitLock(ctx context.Context, id string) bool {
	if s.rdb == nil {
		return true
	}
	ok, err := s.rdb.SetNX(ctx, SubmitLockKey(id), "locked", submitLockTTL).Result()
	if err != nil {
		s.logger.Warn("acquire submit lock failed", zap.String("draft_id", id), zap.Error(err))
		return true
	}
	return ok
}

func (s *service) releaseSubmitLock(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, SubmitLockKey(id)).Err(); err != nil {
		s.logger.Warn("release submit lock failed", zap.String("draft_id", id), zap.Error(err))
	}
}

func (s *service) view(sess *draft.Session) DraftView {
	now := s.now()
	reachable := stepper.Reachable(sess.Draft, now)

	return DraftView{
		ID:                sess.ID,
		EmployeeRef:       sess.EmployeeRef,
		Step:              sess.Step,
		Draft:             sess.Draft,
		Reachable:         reachable[:],
		CanSubmit:         stepper.At(sess.Step).CanSubmit(sess.Draft, now),
		DepartmentOptions: sess.DepartmentOptions,
		CreatedAt:         sess.CreatedAt,
		UpdatedAt:         sess.UpdatedAt,
	}
}

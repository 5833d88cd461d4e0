package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
)

type userRepoStub struct {
	createFn         func(ctx context.Context, user *entities.User) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*entities.User, error)
	updatePasswordFn func(ctx context.Context, email, passwordHash string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if s.updatePasswordFn != nil {
		return s.updatePasswordFn(ctx, email, passwordHash)
	}
	return nil
}

type otpRepoStub struct {
	upsertFn     func(ctx context.Context, otp *entities.Otp) error
	getByEmailFn func(ctx context.Context, email string) (*entities.Otp, error)
	deleteFn     func(ctx context.Context, email string) error
}

func (s *otpRepoStub) Upsert(ctx context.Context, otp *entities.Otp) error {
	if s.upsertFn != nil {
		return s.upsertFn(ctx, otp)
	}
	return nil
}

func (s *otpRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Otp, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *otpRepoStub) Delete(ctx context.Context, email string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, email)
	}
	return nil
}

type candidateRepoStub struct {
	createFn       func(ctx context.Context, candidate *entities.Candidate) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.Candidate, error)
	getByEmailFn   func(ctx context.Context, email string) (*entities.Candidate, error)
	listFn         func(ctx context.Context, limit, offset int) ([]*entities.Candidate, int64, error)
	updateFn       func(ctx context.Context, candidate *entities.Candidate) error
	updateStatusFn func(ctx context.Context, id uuid.UUID, status entities.CandidateStatus) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (s *candidateRepoStub) Create(ctx context.Context, candidate *entities.Candidate) error {
	if s.createFn != nil {
		return s.createFn(ctx, candidate)
	}
	return nil
}

func (s *candidateRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Candidate, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *candidateRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Candidate, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *candidateRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.Candidate, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return []*entities.Candidate{}, 0, nil
}

func (s *candidateRepoStub) Update(ctx context.Context, candidate *entities.Candidate) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, candidate)
	}
	return nil
}

func (s *candidateRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CandidateStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *candidateRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type companyRepoStub struct {
	createFn  func(ctx context.Context, company *entities.Company) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.Company, error)
	listFn    func(ctx context.Context, limit, offset int) ([]*entities.Company, int64, error)
	updateFn  func(ctx context.Context, company *entities.Company) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (s *companyRepoStub) Create(ctx context.Context, company *entities.Company) error {
	if s.createFn != nil {
		return s.createFn(ctx, company)
	}
	return nil
}

func (s *companyRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *companyRepoStub) List(ctx context.Context, limit, offset int) ([]*entities.Company, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return []*entities.Company{}, 0, nil
}

func (s *companyRepoStub) Update(ctx context.Context, company *entities.Company) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, company)
	}
	return nil
}

func (s *companyRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type interviewRepoStub struct {
	createFn       func(ctx context.Context, interview *entities.Interview) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.Interview, error)
	listFn         func(ctx context.Context, filter entities.InterviewFilter, limit, offset int) ([]*entities.Interview, int64, error)
	updateFn       func(ctx context.Context, interview *entities.Interview) error
	updateStatusFn func(ctx context.Context, id uuid.UUID, status entities.InterviewStatus) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (s *interviewRepoStub) Create(ctx context.Context, interview *entities.Interview) error {
	if s.createFn != nil {
		return s.createFn(ctx, interview)
	}
	return nil
}

func (s *interviewRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *interviewRepoStub) List(ctx context.Context, filter entities.InterviewFilter, limit, offset int) ([]*entities.Interview, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, limit, offset)
	}
	return []*entities.Interview{}, 0, nil
}

func (s *interviewRepoStub) Update(ctx context.Context, interview *entities.Interview) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, interview)
	}
	return nil
}

func (s *interviewRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InterviewStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (s *interviewRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type notificationRepoStub struct {
	createFn func(ctx context.Context, notification *entities.Notification) error
}

func (s *notificationRepoStub) Create(ctx context.Context, notification *entities.Notification) error {
	if s.createFn != nil {
		return s.createFn(ctx, notification)
	}
	return nil
}

func (s *notificationRepoStub) GetPending(ctx context.Context, limit int) ([]*entities.Notification, error) {
	return []*entities.Notification{}, nil
}

func (s *notificationRepoStub) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	return nil
}

func (s *notificationRepoStub) MarkAttempt(ctx context.Context, id uuid.UUID, sendErr string, maxAttempts int) error {
	return nil
}

func (s *notificationRepoStub) CountByStatus(ctx context.Context, status entities.NotificationStatus) (int64, error) {
	return 0, nil
}

type uowStub struct{}

func (s *uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

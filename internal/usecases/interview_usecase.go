package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/domain/repositories"
)

// InterviewUsecase handles interview scheduling business logic
type InterviewUsecase struct {
	interviewRepo repositories.InterviewRepository
	candidateRepo repositories.CandidateRepository
	companyRepo   repositories.CompanyRepository
}

// NewInterviewUsecase creates a new interview usecase
func NewInterviewUsecase(
	interviewRepo repositories.InterviewRepository,
	candidateRepo repositories.CandidateRepository,
	companyRepo repositories.CompanyRepository,
) *InterviewUsecase {
	return &InterviewUsecase{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
		companyRepo:   companyRepo,
	}
}

// Create schedules an interview. Candidate and company names are
// snapshot into the record at creation and never re-synced afterwards.
func (u *InterviewUsecase) Create(ctx context.Context, input *entities.CreateInterviewInput) (*entities.Interview, error) {
	if !entities.ValidInterviewType(input.Type) {
		return nil, domainerrors.BadRequest("Invalid interview type")
	}

	status := input.Status
	if status == "" {
		status = entities.InterviewStatusScheduled
	}
	if !entities.ValidInterviewStatus(status) {
		return nil, domainerrors.BadRequest("Invalid interview status")
	}

	candidateID, err := uuid.Parse(input.CandidateID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid candidate id")
	}
	companyID, err := uuid.Parse(input.CompanyID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid company id")
	}

	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Candidate or Company not found")
		}
		return nil, err
	}
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Candidate or Company not found")
		}
		return nil, err
	}

	interview := &entities.Interview{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		CompanyID:     company.ID,
		CompanyName:   company.Name,
		Position:      input.Position,
		Date:          input.Date,
		Time:          input.Time,
		Type:          input.Type,
		Status:        status,
		Interviewer:   input.Interviewer,
	}

	if err := u.interviewRepo.Create(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// GetByID gets an interview by ID
func (u *InterviewUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	return u.interviewRepo.GetByID(ctx, id)
}

// List lists interviews with optional status/date filters
func (u *InterviewUsecase) List(ctx context.Context, filter entities.InterviewFilter, limit, offset int) ([]*entities.Interview, int64, error) {
	return u.interviewRepo.List(ctx, filter, limit, offset)
}

// Update replaces an interview's mutable fields
func (u *InterviewUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateInterviewInput) (*entities.Interview, error) {
	if !entities.ValidInterviewType(input.Type) {
		return nil, domainerrors.BadRequest("Invalid interview type")
	}

	interview, err := u.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = interview.Status
	}
	if !entities.ValidInterviewStatus(status) {
		return nil, domainerrors.BadRequest("Invalid interview status")
	}

	interview.Position = input.Position
	interview.Date = input.Date
	interview.Time = input.Time
	interview.Type = input.Type
	interview.Status = status
	interview.Interviewer = input.Interviewer

	if err := u.interviewRepo.Update(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// UpdateStatus updates only the lifecycle status. It does not touch
// the candidate's pipeline status.
func (u *InterviewUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InterviewStatus) (*entities.Interview, error) {
	if !entities.ValidInterviewStatus(status) {
		return nil, domainerrors.BadRequest("Invalid interview status")
	}
	if err := u.interviewRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.interviewRepo.GetByID(ctx, id)
}

// Delete hard-deletes an interview
func (u *InterviewUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.interviewRepo.Delete(ctx, id)
}

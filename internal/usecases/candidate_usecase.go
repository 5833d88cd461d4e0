package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"cep.backend/internal/config"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/domain/repositories"
	"cep.backend/internal/infrastructure/mail"
	"cep.backend/pkg/crypto"
)

const (
	interviewInviteLocation = "Zoom / Office (to be confirmed)"
	interviewStartHour      = 10
)

// CandidateUsecase handles candidate business logic, including the
// onboarding workflow
type CandidateUsecase struct {
	candidateRepo    repositories.CandidateRepository
	companyRepo      repositories.CompanyRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	uow              repositories.UnitOfWork
	mailCfg          config.MailConfig
}

// NewCandidateUsecase creates a new candidate usecase
func NewCandidateUsecase(
	candidateRepo repositories.CandidateRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	uow repositories.UnitOfWork,
	mailCfg config.MailConfig,
) *CandidateUsecase {
	return &CandidateUsecase{
		candidateRepo:    candidateRepo,
		companyRepo:      companyRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		uow:              uow,
		mailCfg:          mailCfg,
	}
}

// Onboard runs the candidate-creation workflow: persist the candidate,
// provision a login with a temporary password, and enqueue the three
// onboarding emails. Everything commits in one transaction, so a
// failure at any step leaves no candidate, no account and no emails.
func (u *CandidateUsecase) Onboard(ctx context.Context, input *entities.CreateCandidateInput, createdBy uuid.UUID) (*entities.Candidate, error) {
	status := input.Status
	if status == "" {
		status = entities.CandidateStatusActive
	}
	if !entities.ValidCandidateStatus(status) {
		return nil, domainerrors.BadRequest("Invalid candidate status")
	}

	companyID, err := uuid.Parse(input.AssignedCompany)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid company id")
	}
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Assigned company not found")
		}
		return nil, err
	}

	email := strings.ToLower(input.Email)
	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	candidate := &entities.Candidate{
		Name:            input.Name,
		Email:           email,
		Phone:           input.Phone,
		Position:        input.Position,
		Experience:      input.Experience,
		Status:          status,
		AssignedCompany: null.StringFrom(company.ID.String()),
		InterviewDate:   null.TimeFrom(input.InterviewDate),
		Skills:          skills,
		CreatedBy:       null.StringFrom(createdBy.String()),
	}

	tempPassword, err := crypto.GenerateTempPassword()
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.candidateRepo.Create(txCtx, candidate); err != nil {
			return err
		}
		if err := u.provisionAccount(txCtx, candidate, tempPassword); err != nil {
			return err
		}
		return u.enqueueOnboardingEmails(txCtx, candidate, company, tempPassword)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Candidate with this email already exists")
		}
		return nil, err
	}

	return candidate, nil
}

// provisionAccount creates a candidate-role login with the temporary
// password so the emailed credentials work. Skipped without error when
// an account with that email already exists.
func (u *CandidateUsecase) provisionAccount(ctx context.Context, candidate *entities.Candidate, tempPassword string) error {
	_, err := u.userRepo.GetByEmail(ctx, candidate.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(tempPassword)
	if err != nil {
		return err
	}

	return u.userRepo.Create(ctx, &entities.User{
		Name:         candidate.Name,
		Email:        candidate.Email,
		PasswordHash: hash,
		Role:         entities.UserRoleCandidate,
	})
}

func (u *CandidateUsecase) enqueueOnboardingEmails(ctx context.Context, candidate *entities.Candidate, company *entities.Company, tempPassword string) error {
	subject, body := mail.OnboardingBody(candidate.Name, candidate.Email, tempPassword)
	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		Kind:    entities.NotificationKindOnboarding,
		To:      []string{candidate.Email},
		Subject: subject,
		Body:    body,
	}); err != nil {
		return err
	}

	subject, body = mail.AssignmentBody(candidate.Name, company.Name, candidate.Position, candidate.Experience)
	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		Kind:    entities.NotificationKindAssignment,
		To:      []string{candidate.Email, company.POCEmail},
		Subject: subject,
		Body:    body,
	}); err != nil {
		return err
	}

	interviewDate := candidate.InterviewDate.Time
	start := time.Date(
		interviewDate.Year(), interviewDate.Month(), interviewDate.Day(),
		interviewStartHour, 0, 0, 0, interviewDate.Location(),
	)

	subject, body = mail.InterviewInviteBody(candidate.Name, candidate.Position, company.Name, interviewDate.Format("Mon Jan 02 2006"))
	return u.notificationRepo.Create(ctx, &entities.Notification{
		Kind:    entities.NotificationKindInterviewInvite,
		To:      []string{candidate.Email},
		Subject: subject,
		Body:    body,
		Calendar: &entities.CalendarEvent{
			Title:          "Interview - " + candidate.Position,
			Description:    "Interview scheduled at " + company.Name,
			Location:       interviewInviteLocation,
			Start:          start,
			DurationHours:  1,
			OrganizerName:  u.mailCfg.FromName,
			OrganizerEmail: u.mailCfg.FromAddress,
			AttendeeName:   candidate.Name,
			AttendeeEmail:  candidate.Email,
		},
	})
}

// GetByID gets a candidate by ID
func (u *CandidateUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Candidate, error) {
	return u.candidateRepo.GetByID(ctx, id)
}

// List lists candidates
func (u *CandidateUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Candidate, int64, error) {
	return u.candidateRepo.List(ctx, limit, offset)
}

// Update replaces a candidate's fields (full-document update)
func (u *CandidateUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCandidateInput) (*entities.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = candidate.Status
	}
	if !entities.ValidCandidateStatus(status) {
		return nil, domainerrors.BadRequest("Invalid candidate status")
	}

	candidate.Name = input.Name
	candidate.Email = strings.ToLower(input.Email)
	candidate.Phone = input.Phone
	candidate.Position = input.Position
	candidate.Experience = input.Experience
	candidate.Status = status
	candidate.Skills = input.Skills
	if candidate.Skills == nil {
		candidate.Skills = []string{}
	}

	if input.AssignedCompany != "" {
		companyID, err := uuid.Parse(input.AssignedCompany)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid company id")
		}
		if _, err := u.companyRepo.GetByID(ctx, companyID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("Assigned company not found")
			}
			return nil, err
		}
		candidate.AssignedCompany = null.StringFrom(companyID.String())
	} else {
		candidate.AssignedCompany = null.String{}
	}

	if input.InterviewDate != nil {
		candidate.InterviewDate = null.TimeFrom(*input.InterviewDate)
	} else {
		candidate.InterviewDate = null.Time{}
	}

	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Candidate with this email already exists")
		}
		return nil, err
	}
	return candidate, nil
}

// UpdateStatus updates only the pipeline status. Interview records
// are not touched; callers wanting both issue two calls.
func (u *CandidateUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CandidateStatus) (*entities.Candidate, error) {
	if !entities.ValidCandidateStatus(status) {
		return nil, domainerrors.BadRequest("Invalid candidate status")
	}
	if err := u.candidateRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.candidateRepo.GetByID(ctx, id)
}

// Delete hard-deletes a candidate
func (u *CandidateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.candidateRepo.Delete(ctx, id)
}

// GetProfileByEmail returns the self-scoped profile for a logged-in
// candidate, with assigned company name and creator summary resolved
func (u *CandidateUsecase) GetProfileByEmail(ctx context.Context, email string) (*entities.CandidateProfile, error) {
	candidate, err := u.candidateRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	profile := &entities.CandidateProfile{Candidate: *candidate}

	if candidate.AssignedCompany.Valid {
		if companyID, err := uuid.Parse(candidate.AssignedCompany.String); err == nil {
			if company, err := u.companyRepo.GetByID(ctx, companyID); err == nil {
				profile.AssignedCompanyName = company.Name
			}
		}
	}

	if candidate.CreatedBy.Valid {
		if creatorID, err := uuid.Parse(candidate.CreatedBy.String); err == nil {
			if creator, err := u.userRepo.GetByID(ctx, creatorID); err == nil {
				profile.Creator = &entities.CreatorSummary{
					Name:  creator.Name,
					Email: creator.Email,
					Role:  creator.Role,
				}
			}
		}
	}

	return profile, nil
}

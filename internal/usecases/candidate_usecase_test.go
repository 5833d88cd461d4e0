package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"cep.backend/internal/config"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/usecases"
	"cep.backend/pkg/crypto"
)

type candidateMocks struct {
	candidateRepo    *MockCandidateRepository
	companyRepo      *MockCompanyRepository
	userRepo         *MockUserRepository
	notificationRepo *MockNotificationRepository
	uow              *MockUnitOfWork
}

func newCandidateUsecase() (*usecases.CandidateUsecase, candidateMocks) {
	m := candidateMocks{
		candidateRepo:    new(MockCandidateRepository),
		companyRepo:      new(MockCompanyRepository),
		userRepo:         new(MockUserRepository),
		notificationRepo: new(MockNotificationRepository),
		uow:              new(MockUnitOfWork),
	}
	uc := usecases.NewCandidateUsecase(
		m.candidateRepo, m.companyRepo, m.userRepo, m.notificationRepo, m.uow,
		config.MailConfig{FromName: "CEP Team", FromAddress: "cep@gmail.com"},
	)
	return uc, m
}

func onboardInput(companyID uuid.UUID) *entities.CreateCandidateInput {
	return &entities.CreateCandidateInput{
		Name:            "Sourav",
		Email:           "Sourav@Email.com",
		Phone:           "+91 9000000000",
		Position:        "Backend Engineer",
		Experience:      "3 years",
		Skills:          []string{"Go"},
		AssignedCompany: companyID.String(),
		InterviewDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCandidateUsecase_Onboard_FullWorkflow(t *testing.T) {
	uc, m := newCandidateUsecase()

	companyID := uuid.New()
	company := &entities.Company{
		ID:       companyID,
		Name:     "TechCorp",
		POCEmail: "hr@techcorp.com",
	}
	m.companyRepo.On("GetByID", mock.Anything, companyID).Return(company, nil).Once()
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	m.candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Candidate")).Return(nil).Once()
	m.userRepo.On("GetByEmail", mock.Anything, "sourav@email.com").Return(nil, domainerrors.ErrNotFound).Once()

	var provisioned *entities.User
	m.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).Run(func(args mock.Arguments) {
		provisioned = args.Get(1).(*entities.User)
	}).Return(nil).Once()

	var queued []*entities.Notification
	m.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Notification")).Run(func(args mock.Arguments) {
		queued = append(queued, args.Get(1).(*entities.Notification))
	}).Return(nil).Times(3)

	candidate, err := uc.Onboard(context.Background(), onboardInput(companyID), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "sourav@email.com", candidate.Email)
	assert.Equal(t, entities.CandidateStatusActive, candidate.Status)
	assert.Equal(t, companyID.String(), candidate.AssignedCompany.String)

	require.NotNil(t, provisioned)
	assert.Equal(t, entities.UserRoleCandidate, provisioned.Role)
	assert.Equal(t, "sourav@email.com", provisioned.Email)
	assert.NotEmpty(t, provisioned.PasswordHash)

	require.Len(t, queued, 3)
	assert.Equal(t, entities.NotificationKindOnboarding, queued[0].Kind)
	assert.Equal(t, entities.NotificationKindAssignment, queued[1].Kind)
	assert.Equal(t, []string{"sourav@email.com", "hr@techcorp.com"}, queued[1].To)
	assert.Equal(t, entities.NotificationKindInterviewInvite, queued[2].Kind)
	require.NotNil(t, queued[2].Calendar)
	assert.Equal(t, 10, queued[2].Calendar.Start.Hour())
	assert.Equal(t, "CEP Team", queued[2].Calendar.OrganizerName)

	// the onboarding email carries the password the account was created with
	bodyWithCreds := queued[0].Body
	found := false
	for pw := range extractTempPasswordCandidates(bodyWithCreds) {
		if crypto.CheckPassword(pw, provisioned.PasswordHash) {
			found = true
			break
		}
	}
	assert.True(t, found, "onboarding email should contain the working temp password")

	m.candidateRepo.AssertExpectations(t)
	m.userRepo.AssertExpectations(t)
	m.notificationRepo.AssertExpectations(t)
}

// extractTempPasswordCandidates yields 8-char lowercase alphanumeric
// runs from an email body
func extractTempPasswordCandidates(body string) map[string]struct{} {
	out := make(map[string]struct{})
	run := ""
	for _, r := range body {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			run += string(r)
			continue
		}
		if len(run) == 8 {
			out[run] = struct{}{}
		}
		run = ""
	}
	if len(run) == 8 {
		out[run] = struct{}{}
	}
	return out
}

func TestCandidateUsecase_Onboard_CompanyNotFound(t *testing.T) {
	uc, m := newCandidateUsecase()

	companyID := uuid.New()
	m.companyRepo.On("GetByID", mock.Anything, companyID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Onboard(context.Background(), onboardInput(companyID), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Assigned company not found", appErr.Message)

	// nothing persisted, nothing queued
	m.candidateRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCandidateUsecase_Onboard_DuplicateEmail(t *testing.T) {
	uc, m := newCandidateUsecase()

	companyID := uuid.New()
	company := &entities.Company{ID: companyID, Name: "TechCorp", POCEmail: "hr@techcorp.com"}
	m.companyRepo.On("GetByID", mock.Anything, companyID).Return(company, nil).Once()
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	m.candidateRepo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrAlreadyExists).Once()

	_, err := uc.Onboard(context.Background(), onboardInput(companyID), uuid.New())
	require.Error(t, err)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Candidate with this email already exists", appErr.Message)
}

func TestCandidateUsecase_Onboard_InvalidStatus(t *testing.T) {
	uc, m := newCandidateUsecase()

	input := onboardInput(uuid.New())
	input.Status = entities.CandidateStatus("promoted")

	_, err := uc.Onboard(context.Background(), input, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	m.companyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCandidateUsecase_Onboard_ExistingAccountSkipsProvisioning(t *testing.T) {
	uc, m := newCandidateUsecase()

	companyID := uuid.New()
	company := &entities.Company{ID: companyID, Name: "TechCorp", POCEmail: "hr@techcorp.com"}
	m.companyRepo.On("GetByID", mock.Anything, companyID).Return(company, nil).Once()
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	m.candidateRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	m.userRepo.On("GetByEmail", mock.Anything, "sourav@email.com").
		Return(&entities.User{ID: uuid.New(), Email: "sourav@email.com"}, nil).Once()
	m.notificationRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Times(3)

	_, err := uc.Onboard(context.Background(), onboardInput(companyID), uuid.New())
	require.NoError(t, err)
	m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCandidateUsecase_Update_ReresolvesCompany(t *testing.T) {
	uc, m := newCandidateUsecase()

	id := uuid.New()
	newCompanyID := uuid.New()
	existing := &entities.Candidate{
		ID:     id,
		Name:   "Sourav",
		Email:  "sourav@email.com",
		Status: entities.CandidateStatusActive,
	}
	m.candidateRepo.On("GetByID", mock.Anything, id).Return(existing, nil).Once()
	m.companyRepo.On("GetByID", mock.Anything, newCompanyID).Return(&entities.Company{ID: newCompanyID}, nil).Once()
	m.candidateRepo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Candidate")).Return(nil).Once()

	updated, err := uc.Update(context.Background(), id, &entities.UpdateCandidateInput{
		Name:            "Sourav",
		Email:           "SOURAV@email.com",
		Phone:           "+91 9000000000",
		Position:        "Staff Engineer",
		Experience:      "4 years",
		AssignedCompany: newCompanyID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "sourav@email.com", updated.Email)
	assert.Equal(t, "Staff Engineer", updated.Position)
	assert.Equal(t, newCompanyID.String(), updated.AssignedCompany.String)
	assert.Equal(t, []string{}, updated.Skills)
}

func TestCandidateUsecase_Update_CompanyNotFound(t *testing.T) {
	uc, m := newCandidateUsecase()

	id := uuid.New()
	badCompanyID := uuid.New()
	m.candidateRepo.On("GetByID", mock.Anything, id).Return(&entities.Candidate{ID: id, Status: entities.CandidateStatusActive}, nil).Once()
	m.companyRepo.On("GetByID", mock.Anything, badCompanyID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Update(context.Background(), id, &entities.UpdateCandidateInput{
		Name:            "Sourav",
		Email:           "sourav@email.com",
		Phone:           "x",
		Position:        "x",
		Experience:      "x",
		AssignedCompany: badCompanyID.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	m.candidateRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCandidateUsecase_UpdateStatus(t *testing.T) {
	uc, m := newCandidateUsecase()

	id := uuid.New()
	m.candidateRepo.On("UpdateStatus", mock.Anything, id, entities.CandidateStatusHired).Return(nil).Once()
	m.candidateRepo.On("GetByID", mock.Anything, id).
		Return(&entities.Candidate{ID: id, Status: entities.CandidateStatusHired}, nil).Once()

	updated, err := uc.UpdateStatus(context.Background(), id, entities.CandidateStatusHired)
	require.NoError(t, err)
	assert.Equal(t, entities.CandidateStatusHired, updated.Status)

	_, err = uc.UpdateStatus(context.Background(), id, entities.CandidateStatus("bogus"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCandidateUsecase_GetProfileByEmail(t *testing.T) {
	uc, m := newCandidateUsecase()

	companyID := uuid.New()
	creatorID := uuid.New()
	candidate := &entities.Candidate{
		ID:              uuid.New(),
		Name:            "Sourav",
		Email:           "sourav@email.com",
		AssignedCompany: null.StringFrom(companyID.String()),
		CreatedBy:       null.StringFrom(creatorID.String()),
	}
	m.candidateRepo.On("GetByEmail", mock.Anything, "sourav@email.com").Return(candidate, nil).Once()
	m.companyRepo.On("GetByID", mock.Anything, companyID).Return(&entities.Company{ID: companyID, Name: "TechCorp"}, nil).Once()
	m.userRepo.On("GetByID", mock.Anything, creatorID).
		Return(&entities.User{ID: creatorID, Name: "Recruiter", Email: "recruiter@cep.com", Role: entities.UserRoleRecruiter}, nil).Once()

	profile, err := uc.GetProfileByEmail(context.Background(), "sourav@email.com")
	require.NoError(t, err)
	assert.Equal(t, "TechCorp", profile.AssignedCompanyName)
	require.NotNil(t, profile.Creator)
	assert.Equal(t, "recruiter@cep.com", profile.Creator.Email)
}

func TestCandidateUsecase_GetProfileByEmail_LookupFailuresAreBestEffort(t *testing.T) {
	uc, m := newCandidateUsecase()

	companyID := uuid.New()
	candidate := &entities.Candidate{
		ID:              uuid.New(),
		Email:           "sourav@email.com",
		AssignedCompany: null.StringFrom(companyID.String()),
	}
	m.candidateRepo.On("GetByEmail", mock.Anything, "sourav@email.com").Return(candidate, nil).Once()
	m.companyRepo.On("GetByID", mock.Anything, companyID).Return(nil, domainerrors.ErrNotFound).Once()

	profile, err := uc.GetProfileByEmail(context.Background(), "sourav@email.com")
	require.NoError(t, err)
	assert.Empty(t, profile.AssignedCompanyName)
	assert.Nil(t, profile.Creator)
}

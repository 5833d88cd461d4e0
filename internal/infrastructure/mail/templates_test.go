package mail

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnboardingBody(t *testing.T) {
	subject, html := OnboardingBody("Sourav", "sourav@email.com", "a1b2c3d4")
	require.Equal(t, "Candidate Interview platform", subject)
	require.Contains(t, html, "Welcome, Sourav")
	require.Contains(t, html, "sourav@email.com")
	require.Contains(t, html, "a1b2c3d4")
	require.Contains(t, html, "change your password")
}

func TestAssignmentBody(t *testing.T) {
	subject, html := AssignmentBody("Sourav", "TechCorp", "Backend Engineer", "3")
	require.Equal(t, "Candidate Assigned – Sourav", subject)
	require.Contains(t, html, "<strong>Sourav</strong> has been assigned to <strong>TechCorp</strong>")
	require.Contains(t, html, "Position: Backend Engineer")
	require.Contains(t, html, "Experience: 3 years")
}

func TestInterviewInviteBody(t *testing.T) {
	subject, html := InterviewInviteBody("Sourav", "Backend Engineer", "TechCorp", "15 Sep 2026, 10:00 AM")
	require.Equal(t, "Interview Scheduled – Backend Engineer", subject)
	require.Contains(t, html, "Hello Sourav")
	require.Contains(t, html, "15 Sep 2026, 10:00 AM")
	require.Contains(t, html, "TechCorp")
	require.Contains(t, html, "calendar invite attached")
}

func TestOTPBody(t *testing.T) {
	subject, html := OTPBody("123456")
	require.Equal(t, "Password Reset OTP", subject)
	require.Contains(t, html, "123456")
	require.Contains(t, html, "10 minutes")
}

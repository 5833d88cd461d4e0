package mail

import "fmt"

// OnboardingBody renders the welcome email carrying first-login credentials
func OnboardingBody(name, email, tempPassword string) (subject, html string) {
	subject = "Candidate Interview platform"
	html = fmt.Sprintf(`
        <h2>Welcome, %s</h2>
        <p>Your candidate account has been created.</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Temporary Password:</strong> %s</p>
        <p>Please change your password after first login.</p>
        <p>Regards,<br/>CEP Team</p>`, name, email, tempPassword)
	return subject, html
}

// AssignmentBody renders the notification sent to both candidate and
// company point-of-contact
func AssignmentBody(candidateName, companyName, position, experience string) (subject, html string) {
	subject = fmt.Sprintf("Candidate Assigned – %s", candidateName)
	html = fmt.Sprintf(`
        <h2>Candidate Assigned</h2>
        <p><strong>%s</strong> has been assigned to <strong>%s</strong>.</p>
        <p>Position: %s</p>
        <p>Experience: %s years</p>`, candidateName, companyName, position, experience)
	return subject, html
}

// InterviewInviteBody renders the email the calendar invite is attached to
func InterviewInviteBody(candidateName, position, companyName, date string) (subject, html string) {
	subject = fmt.Sprintf("Interview Scheduled – %s", position)
	html = fmt.Sprintf(`
        <h2>Interview Details</h2>
        <p>Hello %s,</p>
        <p>Your interview for the position of <strong>%s</strong> is scheduled.</p>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Company:</strong> %s</p>
        <p>Please find the calendar invite attached.</p>`, candidateName, position, date, companyName)
	return subject, html
}

// OTPBody renders the password reset code email
func OTPBody(code string) (subject, html string) {
	subject = "Password Reset OTP"
	html = fmt.Sprintf(`<p>Your OTP is <strong>%s</strong>. It expires in 10 minutes.</p>`, code)
	return subject, html
}

package entities

import "time"

// OTPTTL is how long a reset code stays valid
const OTPTTL = 10 * time.Minute

// Otp represents a one-time password reset code.
// At most one outstanding code exists per email; a repeat request
// overwrites the previous code.
type Otp struct {
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the code is past its expiry
func (o *Otp) Expired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}

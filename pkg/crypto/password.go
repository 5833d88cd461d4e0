package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// TempPasswordLength is the length of generated onboarding passwords
	TempPasswordLength = 8

	// OTPCodeLength is the number of digits in a password reset code
	OTPCodeLength = 6
)

const tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomInt                  = rand.Int
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateTempPassword generates an 8-character onboarding password
func GenerateTempPassword() (string, error) {
	out := make([]byte, TempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range out {
		n, err := randomInt(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate temp password: %w", err)
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}

// GenerateOTPCode generates a 6-digit numeric reset code
func GenerateOTPCode() (string, error) {
	// 100000..999999 so the code never has a leading zero
	n, err := randomInt(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

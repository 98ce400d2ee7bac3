package otp

import (
	"github.com/xlzd/gotp"
)

const secretLength = 16

// Generator issues numeric one-time codes for email verification.
type Generator interface {
	RandomCode() string
}

// GOTPGenerator derives codes from a HOTP over a fresh random secret.
type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a 6-digit code in the range 100000-999999.
// HOTP output is zero padded, codes with a leading zero are discarded and drawn again.
func (g *GOTPGenerator) RandomCode() string {
	for {
		code := gotp.NewDefaultHOTP(gotp.RandomSecret(secretLength)).At(0)
		if code[0] != '0' {
			return code
		}
	}
}

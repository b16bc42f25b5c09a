package auth

import "math/rand"

// TempPasswordLength is the fixed length of generated temporary passwords.
const TempPasswordLength = 12

// tempPasswordAlphabet matches the character set the portal has always
// issued temporary credentials from.
const tempPasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// GenerateTempPassword produces a temporary credential, one character at a
// time, uniformly from the alphabet. The source is not cryptographic; these
// are one-time demo credentials, not a security boundary.
func GenerateTempPassword() string {
	buf := make([]byte, TempPasswordLength)
	for i := range buf {
		buf[i] = tempPasswordAlphabet[rand.Intn(len(tempPasswordAlphabet))]
	}
	return string(buf)
}

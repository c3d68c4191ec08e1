// Package classical implements byte-wise classical ciphers.
//
// These ciphers are for teaching only. They are trivially breakable
// and are not constant-time.
package classical

import (
	"github.com/sp301415/numtheory/csprng"
)

// Cipher is a reversible byte-wise cipher.
type Cipher interface {
	// Encipher returns the ciphertext of plaintext.
	Encipher(plaintext []byte) []byte
	// Decipher returns the plaintext of ciphertext.
	Decipher(ciphertext []byte) []byte
}

// ShiftEncipher adds key to every byte of plaintext, modulo 256.
func ShiftEncipher(plaintext []byte, key byte) []byte {
	ciphertext := make([]byte, len(plaintext))
	for i, b := range plaintext {
		ciphertext[i] = b + key
	}
	return ciphertext
}

// ShiftDecipher subtracts key from every byte of ciphertext, modulo 256.
func ShiftDecipher(ciphertext []byte, key byte) []byte {
	plaintext := make([]byte, len(ciphertext))
	for i, b := range ciphertext {
		plaintext[i] = b - key
	}
	return plaintext
}

// ShiftCipher is a shift (Caesar) cipher over bytes.
type ShiftCipher struct {
	Key byte
}

// GenerateShiftCipher creates a ShiftCipher with a uniformly random key.
func GenerateShiftCipher(s *csprng.Sampler) ShiftCipher {
	return ShiftCipher{Key: s.SampleByte()}
}

// Encipher implements [Cipher].
func (c ShiftCipher) Encipher(plaintext []byte) []byte {
	return ShiftEncipher(plaintext, c.Key)
}

// Decipher implements [Cipher].
func (c ShiftCipher) Decipher(ciphertext []byte) []byte {
	return ShiftDecipher(ciphertext, c.Key)
}

// EncipherString is like Encipher, but takes and returns a string.
// The result may not be valid UTF-8.
func (c ShiftCipher) EncipherString(plaintext string) string {
	return string(c.Encipher([]byte(plaintext)))
}

// DecipherString is like Decipher, but takes and returns a string.
func (c ShiftCipher) DecipherString(ciphertext string) string {
	return string(c.Decipher([]byte(ciphertext)))
}

package classical

import (
	"github.com/cockroachdb/errors"
	"github.com/sp301415/numtheory/csprng"
	"github.com/sp301415/numtheory/euclid"
	"github.com/sp301415/numtheory/num"
)

// alphabetSize is the number of distinct byte values.
const alphabetSize = 256

// AffineCipher is an affine cipher over bytes:
//
//	E(x) = alpha*x + beta mod 256
//	D(y) = alpha^-1 * (y - beta) mod 256
type AffineCipher struct {
	alpha    byte
	beta     byte
	alphaInv byte
}

// NewAffineCipher creates a new AffineCipher.
// Returns ErrInvalidKey if alpha is not coprime to 256, i.e. if alpha is even.
func NewAffineCipher(alpha, beta byte) (*AffineCipher, error) {
	alphaInv, err := euclid.MultiplicativeInverse(int(alpha), alphabetSize)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, num.ErrInvalidKey), "affine cipher alpha %d", alpha)
	}

	return &AffineCipher{
		alpha:    alpha,
		beta:     beta,
		alphaInv: byte(alphaInv),
	}, nil
}

// GenerateAffineCipher creates an AffineCipher with a uniformly random valid key.
func GenerateAffineCipher(s *csprng.Sampler) *AffineCipher {
	alpha := byte(2*s.SampleN(alphabetSize/2) + 1)
	c, err := NewAffineCipher(alpha, s.SampleByte())
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns the multiplicative part of the key.
func (c *AffineCipher) Alpha() byte {
	return c.alpha
}

// Beta returns the additive part of the key.
func (c *AffineCipher) Beta() byte {
	return c.beta
}

// AlphaInverse returns the inverse of alpha modulo 256.
func (c *AffineCipher) AlphaInverse() byte {
	return c.alphaInv
}

// Encipher implements [Cipher].
func (c *AffineCipher) Encipher(plaintext []byte) []byte {
	ciphertext := make([]byte, len(plaintext))
	for i, b := range plaintext {
		ciphertext[i] = c.alpha*b + c.beta
	}
	return ciphertext
}

// Decipher implements [Cipher].
func (c *AffineCipher) Decipher(ciphertext []byte) []byte {
	plaintext := make([]byte, len(ciphertext))
	for i, b := range ciphertext {
		plaintext[i] = c.alphaInv * (b - c.beta)
	}
	return plaintext
}

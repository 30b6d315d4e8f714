package cryptox

import (
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2Params are the argon2id cost parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultArgon2Params matches the key derivation settings used for PINs.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// PinHasher derives PIN digests with an explicit per-record salt.
type PinHasher interface {
	Hash(pin string) (salt, hash []byte, err error)
	Verify(pin string, salt, hash []byte) (bool, error)
}

type Argon2Hasher struct {
	params Argon2Params
}

func NewArgon2Hasher(p Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: p}
}

func (h *Argon2Hasher) derive(pin string, salt []byte) []byte {
	p := h.params
	return argon2.IDKey([]byte(pin), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

func (h *Argon2Hasher) Hash(pin string) ([]byte, []byte, error) {
	salt := common.GenerateRandByteArray(h.params.SaltLen)
	if salt == nil {
		return nil, nil, fmt.Errorf("generate pin salt: %w", common.ErrorInternal)
	}
	return salt, h.derive(pin, salt), nil
}

func (h *Argon2Hasher) Verify(pin string, salt, hash []byte) (bool, error) {
	if len(salt) == 0 || len(hash) != int(h.params.KeyLen) {
		return false, common.ErrCorruptCredential
	}
	candidate := h.derive(pin, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, hash) == 1, nil
}

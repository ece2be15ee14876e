package store

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// sealVersion is prepended to every sealed blob and included as additional
// authenticated data, so tampering with it breaks authentication.
const sealVersion byte = 0x01

// hkdfInfoSnapshot is the HKDF info string for snapshot sealing keys.
// Domain separation: the same install secret can derive keys for other
// purposes without overlap. Changing it invalidates all sealed snapshots.
var hkdfInfoSnapshot = []byte("tokenledger.store.snapshot.v1")

// deriveSealKey derives the 32-byte sealing key from an install secret of
// any length via HKDF-SHA256.
func deriveSealKey(installKey []byte) ([]byte, error) {
	if len(installKey) == 0 {
		return nil, fmt.Errorf("install key is empty")
	}
	key := make([]byte, chacha20poly1305.KeySize)
	r := hkdf.New(sha256.New, installKey, nil, hkdfInfoSnapshot)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive sealing key: %w", err)
	}
	return key, nil
}

// seal encrypts plaintext with XChaCha20-Poly1305. Output layout:
// version byte, 24-byte nonce, ciphertext with tag.
func seal(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create AEAD: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, 1+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, sealVersion)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, []byte{sealVersion}), nil
}

// open decrypts a sealed blob. Any authentication failure, truncation, or
// unknown version comes back as ErrSealBroken.
func open(key, blob []byte) ([]byte, error) {
	if len(blob) < 1+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, ErrSealBroken
	}
	version := blob[0]
	if version != sealVersion {
		return nil, ErrSealBroken
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create AEAD: %w", err)
	}

	nonce := blob[1 : 1+chacha20poly1305.NonceSizeX]
	ciphertext := blob[1+chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte{version})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSealBroken, err)
	}
	return plaintext, nil
}

package backup

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Yedek dosyası düzeni: magic ∥ salt ∥ nonce ∥ ciphertext+tag.
// Anahtar parola ve salt'tan türetilir; ne parola ne anahtar diske yazılır.
const (
	artifactMagic = "ENVB1"

	saltLength    = 16
	nonceLength   = 12
	keyLength     = 32 // AES-256
	kdfIterations = 100_000
)

// ErrDecryptionFailed hem yanlış parolayı hem de bozulmuş/oynanmış dosyayı
// kapsar; GCM etiketi ikisini ayırt etmez.
var ErrDecryptionFailed = errors.New("yedek çözülemedi: parola hatalı veya dosya bozulmuş")

func deriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, kdfIterations, keyLength, sha256.New)
}

func encrypt(plaintext []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("salt üretilemedi: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("şifreleme başlatılamadı: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("şifreleme başlatılamadı: %w", err)
	}

	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("nonce üretilemedi: %w", err)
	}

	out := make([]byte, 0, len(artifactMagic)+saltLength+nonceLength+len(plaintext)+gcm.Overhead())
	out = append(out, artifactMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	out = gcm.Seal(out, nonce, plaintext, nil)
	return out, nil
}

func decrypt(artifact []byte, passphrase string) ([]byte, error) {
	header := len(artifactMagic) + saltLength + nonceLength
	if len(artifact) < header+1 {
		return nil, ErrDecryptionFailed
	}
	if !bytes.HasPrefix(artifact, []byte(artifactMagic)) {
		return nil, ErrDecryptionFailed
	}

	salt := artifact[len(artifactMagic) : len(artifactMagic)+saltLength]
	nonce := artifact[len(artifactMagic)+saltLength : header]
	ciphertext := artifact[header:]

	block, err := aes.NewCipher(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("şifre çözme başlatılamadı: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("şifre çözme başlatılamadı: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

package secure

import (
	"bytes"
	"io"

	"filippo.io/age"
)

// EncryptBundle encrypts a share bundle using age with a password-based
// recipient, for operators who want an encrypted-at-rest export of
// mersig split's output.
func EncryptBundle(plaintext []byte, password string) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(password)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w, err := age.Encrypt(buf, recipient)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(plaintext); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecryptBundle decrypts a share bundle produced by EncryptBundle.
func DecryptBundle(ciphertext []byte, password string) ([]byte, error) {
	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return nil, err
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		return nil, err
	}

	return io.ReadAll(r)
}

// EncryptBundleSecure encrypts the contents of a Bytes buffer.
func EncryptBundleSecure(b *Bytes, password string) ([]byte, error) {
	data := b.Bytes()
	if data == nil {
		return nil, nil
	}
	return EncryptBundle(data, password)
}

// DecryptBundleSecure decrypts ciphertext into a new Bytes buffer,
// zeroing the intermediate plaintext copy once it has been staged.
func DecryptBundleSecure(ciphertext []byte, password string) (*Bytes, error) {
	plaintext, err := DecryptBundle(ciphertext, password)
	if err != nil {
		return nil, err
	}

	b, err := FromSlice(plaintext)
	if err != nil {
		return nil, err
	}

	for i := range plaintext {
		plaintext[i] = 0
	}

	return b, nil
}

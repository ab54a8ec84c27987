package crypto

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	kdf, err := NewKDF()
	if err != nil {
		t.Fatalf("NewKDF failed: %v", err)
	}

	key1 := kdf.DeriveKey([]byte("correct horse"))
	key2 := kdf.DeriveKey([]byte("correct horse"))
	if !bytes.Equal(key1, key2) {
		t.Error("same passphrase and salt should derive the same key")
	}
	if len(key1) != KeySize {
		t.Errorf("derived key length = %d, want %d", len(key1), KeySize)
	}

	key3 := kdf.DeriveKey([]byte("battery staple"))
	if bytes.Equal(key1, key3) {
		t.Error("different passphrases should derive different keys")
	}
}

func TestDeriveKeySaltMatters(t *testing.T) {
	kdf1, err := NewKDF()
	if err != nil {
		t.Fatalf("NewKDF failed: %v", err)
	}
	kdf2, err := NewKDF()
	if err != nil {
		t.Fatalf("NewKDF failed: %v", err)
	}

	pass := []byte("same passphrase")
	if bytes.Equal(kdf1.DeriveKey(pass), kdf2.DeriveKey(pass)) {
		t.Error("different salts should derive different keys")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	key, err := GenerateRandom(KeySize)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}
	enc := NewEncryptor(key)

	hexPattern := regexp.MustCompile(`^[0-9a-f]*$`)

	for _, plaintext := range []string{
		"",
		"a",
		"github.com",
		"p@ss|word\nwith|delimiters",
		"unicode: пароль 密码",
	} {
		encoded, err := enc.EncodeField(plaintext)
		if err != nil {
			t.Fatalf("EncodeField(%q) failed: %v", plaintext, err)
		}
		if !hexPattern.MatchString(encoded) {
			t.Errorf("EncodeField(%q) = %q, not lowercase hex", plaintext, encoded)
		}
		if len(encoded)%2 != 0 {
			t.Errorf("EncodeField(%q) has odd length %d", plaintext, len(encoded))
		}

		decoded, err := enc.DecodeField(encoded)
		if err != nil {
			t.Fatalf("DecodeField failed for %q: %v", plaintext, err)
		}
		if decoded != plaintext {
			t.Errorf("round trip mismatch: got %q, want %q", decoded, plaintext)
		}
	}
}

func TestEncodeFieldNonceUnique(t *testing.T) {
	key, err := GenerateRandom(KeySize)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}
	enc := NewEncryptor(key)

	a, err := enc.EncodeField("same plaintext")
	if err != nil {
		t.Fatalf("EncodeField failed: %v", err)
	}
	b, err := enc.EncodeField("same plaintext")
	if err != nil {
		t.Fatalf("EncodeField failed: %v", err)
	}
	if a == b {
		t.Error("two encodings of the same plaintext should differ (fresh nonce)")
	}
}

func TestDecodeFieldWrongKey(t *testing.T) {
	key1, _ := GenerateRandom(KeySize)
	key2, _ := GenerateRandom(KeySize)
	enc1 := NewEncryptor(key1)
	enc2 := NewEncryptor(key2)

	encoded, err := enc1.EncodeField("secret")
	if err != nil {
		t.Fatalf("EncodeField failed: %v", err)
	}

	if _, err := enc2.DecodeField(encoded); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("decoding with wrong key: got %v, want ErrAuthFailed", err)
	}
}

func TestDecodeFieldMalformed(t *testing.T) {
	key, _ := GenerateRandom(KeySize)
	enc := NewEncryptor(key)

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not hex", "zz", ErrInvalidCiphertext},
		{"odd length", "abc", ErrInvalidCiphertext},
		{"too short", "0a0b0c", ErrInvalidCiphertext},
		{"tampered", func() string {
			s, _ := enc.EncodeField("secret")
			return s[:len(s)-2] + "00"
		}(), ErrAuthFailed},
	}

	for _, tt := range tests {
		if _, err := enc.DecodeField(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestClearBytes(t *testing.T) {
	b := []byte("sensitive")
	ClearBytes(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d not cleared: %d", i, v)
		}
	}
}

func TestEncryptorDestroy(t *testing.T) {
	key, _ := GenerateRandom(KeySize)
	enc := NewEncryptor(key)
	enc.Destroy()

	for i, v := range key {
		if v != 0 {
			t.Fatalf("key byte %d not cleared after Destroy: %d", i, v)
		}
	}
}

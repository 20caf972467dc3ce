package tinkffx

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/ffx"
)

func testMessageSpace(t *testing.T) *ffx.IntegerMessageSpace {
	t.Helper()
	ms, err := ffx.NewIntegerMessageSpace(big.NewInt(999999))
	if err != nil {
		t.Fatalf("failed to create message space: %v", err)
	}
	return ms
}

func TestKeyManagerBasics(t *testing.T) {
	km := NewKeyManager()

	if km.TypeURL() != FFXKeyTypeURL {
		t.Errorf("TypeURL() = %q, want %q", km.TypeURL(), FFXKeyTypeURL)
	}
	if !km.DoesSupport(FFXKeyTypeURL) {
		t.Error("DoesSupport should accept the FFX type URL")
	}
	if km.DoesSupport("type.googleapis.com/google.crypto.tink.AesGcmKey") {
		t.Error("DoesSupport should reject foreign type URLs")
	}
}

func TestKeyManagerNewKeyData(t *testing.T) {
	km := NewKeyManager()

	t.Run("DefaultTemplate", func(t *testing.T) {
		keyData, err := km.NewKeyData(nil)
		if err != nil {
			t.Fatalf("NewKeyData failed: %v", err)
		}
		if keyData.TypeUrl != FFXKeyTypeURL {
			t.Errorf("TypeUrl = %q, want %q", keyData.TypeUrl, FFXKeyTypeURL)
		}
		if len(keyData.Value) != 16 {
			t.Errorf("key material is %d bytes, want 16", len(keyData.Value))
		}
	})

	t.Run("FreshRandomness", func(t *testing.T) {
		k1, err := km.NewKeyData(nil)
		if err != nil {
			t.Fatalf("NewKeyData failed: %v", err)
		}
		k2, err := km.NewKeyData(nil)
		if err != nil {
			t.Fatalf("NewKeyData failed: %v", err)
		}
		if bytes.Equal(k1.Value, k2.Value) {
			t.Error("two generated keys are identical")
		}
	})

	t.Run("RejectsForeignKeySize", func(t *testing.T) {
		if _, err := km.NewKeyData([]byte{32}); err == nil {
			t.Error("expected error for a 32-byte key template")
		}
	})
}

func TestKeyManagerPrimitive(t *testing.T) {
	km := NewKeyManager()

	if _, err := km.Primitive(make([]byte, 8)); err == nil {
		t.Error("expected error for an 8-byte key")
	}

	primitive, err := km.Primitive(make([]byte, 16))
	if err != nil {
		t.Fatalf("Primitive failed: %v", err)
	}
	if _, ok := primitive.(*ffx.Key); !ok {
		t.Errorf("Primitive returned %T, want *ffx.Key", primitive)
	}
}

func TestKeyManagerNewKeyUnsupported(t *testing.T) {
	km := NewKeyManager()
	if _, err := km.NewKey(nil); err == nil {
		t.Error("NewKey should report that raw FFX keys have no proto form")
	}
}

func TestNewKeysetHandleFromKey(t *testing.T) {
	if _, err := getOrRegisterKeyManager(); err != nil {
		t.Fatalf("failed to register KeyManager: %v", err)
	}

	t.Run("RejectsBadSize", func(t *testing.T) {
		if _, err := NewKeysetHandleFromKey(make([]byte, 24)); err == nil {
			t.Error("expected error for a 24-byte key")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
		if err != nil {
			t.Fatalf("failed to decode key: %v", err)
		}
		handle, err := NewKeysetHandleFromKey(key)
		if err != nil {
			t.Fatalf("NewKeysetHandleFromKey failed: %v", err)
		}

		primitive, err := New(handle, testMessageSpace(t))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		plaintext := big.NewInt(12345)
		tweak := []byte("handle-test")
		ciphertext, err := primitive.Encrypt(plaintext, tweak)
		if err != nil {
			t.Fatalf("encrypt failed: %v", err)
		}
		decrypted, err := primitive.Decrypt(ciphertext, tweak)
		if err != nil {
			t.Fatalf("decrypt failed: %v", err)
		}
		if decrypted.Cmp(plaintext) != 0 {
			t.Errorf("round trip failed: %v -> %v -> %v", plaintext, ciphertext, decrypted)
		}
	})

	t.Run("SameKeySameCiphertext", func(t *testing.T) {
		// Two handles built from the same raw key must agree, since the
		// permutation depends only on key and tweak.
		key := make([]byte, 16)
		h1, err := NewKeysetHandleFromKey(key)
		if err != nil {
			t.Fatalf("NewKeysetHandleFromKey failed: %v", err)
		}
		h2, err := NewKeysetHandleFromKey(key)
		if err != nil {
			t.Fatalf("NewKeysetHandleFromKey failed: %v", err)
		}
		p1, err := New(h1, testMessageSpace(t))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		p2, err := New(h2, testMessageSpace(t))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		c1, err := p1.Encrypt(big.NewInt(777), []byte{})
		if err != nil {
			t.Fatalf("encrypt failed: %v", err)
		}
		c2, err := p2.Encrypt(big.NewInt(777), []byte{})
		if err != nil {
			t.Fatalf("encrypt failed: %v", err)
		}
		if c1.Cmp(c2) != 0 {
			t.Errorf("handles with the same key disagree: %v vs %v", c1, c2)
		}
	})
}

func TestFactoryWithGeneratedKeyset(t *testing.T) {
	if _, err := getOrRegisterKeyManager(); err != nil {
		t.Fatalf("failed to register KeyManager: %v", err)
	}

	handle, err := keyset.NewHandle(KeyTemplate())
	if err != nil {
		t.Fatalf("failed to create keyset handle: %v", err)
	}

	primitive, err := New(handle, testMessageSpace(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tweak := []byte("factory-test")
	for _, v := range []int64{0, 1, 999999, 123456} {
		plaintext := big.NewInt(v)
		ciphertext, err := primitive.Encrypt(plaintext, tweak)
		if err != nil {
			t.Fatalf("encrypt(%d) failed: %v", v, err)
		}
		if ciphertext.Sign() < 0 || ciphertext.Cmp(big.NewInt(999999)) > 0 {
			t.Fatalf("encrypt(%d) = %v is outside the message space", v, ciphertext)
		}
		decrypted, err := primitive.Decrypt(ciphertext, tweak)
		if err != nil {
			t.Fatalf("decrypt failed: %v", err)
		}
		if decrypted.Cmp(plaintext) != 0 {
			t.Errorf("round trip failed: %v -> %v -> %v", plaintext, ciphertext, decrypted)
		}
	}
}

func TestFactoryValidation(t *testing.T) {
	if _, err := getOrRegisterKeyManager(); err != nil {
		t.Fatalf("failed to register KeyManager: %v", err)
	}

	t.Run("NilHandle", func(t *testing.T) {
		if _, err := New(nil, testMessageSpace(t)); err == nil {
			t.Error("expected error for nil handle")
		}
	})

	t.Run("NilMessageSpace", func(t *testing.T) {
		handle, err := keyset.NewHandle(KeyTemplate())
		if err != nil {
			t.Fatalf("failed to create keyset handle: %v", err)
		}
		if _, err := New(handle, nil); err == nil {
			t.Error("expected error for nil message space")
		}
	})

	t.Run("MessageSpaceTooSmall", func(t *testing.T) {
		handle, err := keyset.NewHandle(KeyTemplate())
		if err != nil {
			t.Fatalf("failed to create keyset handle: %v", err)
		}
		ms, err := ffx.NewIntegerMessageSpace(big.NewInt(100))
		if err != nil {
			t.Fatalf("failed to create message space: %v", err)
		}
		if _, err := New(handle, ms); err == nil {
			t.Error("expected error for a domain below 8 bits")
		}
	})
}

package service

import (
	"errors"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestGenerateDefaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.PoolSize != 88 {
		t.Errorf("expected pool size 88, got %d", resp.PoolSize)
	}
	if resp.EntropyBits <= 0 {
		t.Errorf("expected positive entropy, got %v", resp.EntropyBits)
	}
}

func TestGenerateExplicitZeroLengthFails(t *testing.T) {
	// An absent length defaults to 16; an explicit zero is invalid.
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: intPtr(0)})
	if !errors.Is(err, crypto.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestGenerateSingleCharacter(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 1 {
		t.Errorf("expected a single character, got %q", resp.Password)
	}
}

func TestGenerateLengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: intPtr(MaxLength + 1)})
	if !errors.Is(err, ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerateCustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    intPtr(32),
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerateCustomPoolWithExclusions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    intPtr(8),
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
		Custom:    "abcdef",
		Exclude:   "ace",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PoolSize != 3 {
		t.Errorf("expected pool size 3, got %d", resp.PoolSize)
	}
	for _, c := range resp.Password {
		if c != 'b' && c != 'd' && c != 'f' {
			t.Errorf("unexpected character %q, pool is {b,d,f}", c)
		}
	}
}

func TestGenerateNoCharacterClasses(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestGenerateRequireEachClassTooShort(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:           intPtr(2),
		RequireEachClass: true,
	})
	if !errors.Is(err, crypto.ErrInsufficientLength) {
		t.Fatalf("expected ErrInsufficientLength, got %v", err)
	}
}

func TestEntropyNeverFails(t *testing.T) {
	svc := NewGeneratorService()

	tests := []struct {
		name string
		req  model.GenerateRequest
		want float64
	}{
		{"zero length", model.GenerateRequest{Length: intPtr(0)}, 0},
		{"negative length", model.GenerateRequest{Length: intPtr(-5)}, 0},
		{
			"no classes",
			model.GenerateRequest{
				Lowercase: boolPtr(false),
				Uppercase: boolPtr(false),
				Digits:    boolPtr(false),
				Symbols:   boolPtr(false),
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := svc.Entropy(tt.req)
			if resp.EntropyBits != tt.want {
				t.Errorf("Entropy() = %v, want %v", resp.EntropyBits, tt.want)
			}
		})
	}
}

func TestEntropyEightCharacterDefault(t *testing.T) {
	svc := NewGeneratorService()
	resp := svc.Entropy(model.GenerateRequest{Length: intPtr(8)})
	if resp.EntropyBits <= 50 || resp.EntropyBits >= 55 {
		t.Errorf("Entropy() = %v, want within (50, 55)", resp.EntropyBits)
	}
}

package service

import (
	"errors"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// MaxLength bounds request length at the service boundary. The core
// generator accepts any positive length; the cap keeps a single HTTP
// request from demanding pathological amounts of work.
const MaxLength = 256

var ErrLengthTooLong = errors.New("password length must be at most 256")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src crypto.Source
}

// NewGeneratorService creates a GeneratorService backed by the OS CSPRNG.
func NewGeneratorService() *GeneratorService {
	return NewGeneratorServiceWithSource(crypto.OSSource())
}

// NewGeneratorServiceWithSource creates a GeneratorService over an explicit
// random source, used by tests.
func NewGeneratorServiceWithSource(src crypto.Source) *GeneratorService {
	return &GeneratorService{src: src}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := optionsFrom(req)
	if opts.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := crypto.GenerateWith(s.src, opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:    password,
		Length:      opts.Length,
		PoolSize:    crypto.PoolSize(opts),
		EntropyBits: crypto.EntropyBits(opts),
	}, nil
}

// Entropy estimates the strength of a configuration without generating a
// password. It never fails: degenerate configurations report zero bits.
func (s *GeneratorService) Entropy(req model.GenerateRequest) model.EntropyResponse {
	opts := optionsFrom(req)
	return model.EntropyResponse{
		Length:      opts.Length,
		PoolSize:    crypto.PoolSize(opts),
		EntropyBits: crypto.EntropyBits(opts),
	}
}

// optionsFrom merges a partial request over the defaults. Absent fields
// take their default; explicit values pass through, including invalid ones
// so the core can reject them.
func optionsFrom(req model.GenerateRequest) crypto.Options {
	opts := crypto.DefaultOptions()
	if req.Length != nil {
		opts.Length = *req.Length
	}
	opts.Lowercase = boolOrDefault(req.Lowercase, opts.Lowercase)
	opts.Uppercase = boolOrDefault(req.Uppercase, opts.Uppercase)
	opts.Digits = boolOrDefault(req.Digits, opts.Digits)
	opts.Symbols = boolOrDefault(req.Symbols, opts.Symbols)
	opts.Custom = req.Custom
	opts.ExcludeSimilar = req.ExcludeSimilar
	opts.Exclude = req.Exclude
	opts.RequireEachClass = req.RequireEachClass
	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

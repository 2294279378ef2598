package crypto

import (
	"errors"
)

var (
	ErrInvalidLength      = errors.New("password length must be at least 1")
	ErrEmptyPool          = errors.New("character pool is empty after applying exclusions")
	ErrInsufficientLength = errors.New("password length is less than the number of required character classes")
)

// Generate creates a cryptographically secure random password using the
// operating system CSPRNG.
func Generate(opts Options) (string, error) {
	return GenerateWith(OSSource(), opts)
}

// GenerateWith creates a password drawing all randomness from src. Given a
// deterministic source it produces identical output across runs, which is
// how the assembler is tested.
//
// Validation happens before any randomness is consumed. With
// RequireEachClass set, one character is drawn from every non-empty
// selected class first, the remaining positions are filled from the full
// pool, and the buffer is shuffled so the guaranteed characters do not sit
// at predictable positions. Otherwise every position is an independent
// draw from the full pool.
func GenerateWith(src Source, opts Options) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}

	pool, classes := buildPools(opts)
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	if opts.RequireEachClass && len(classes) > opts.Length {
		return "", ErrInsufficientLength
	}

	sampler := NewSampler(src)
	out := make([]rune, 0, opts.Length)

	if opts.RequireEachClass {
		for _, class := range classes {
			i, err := sampler.Int(len(class))
			if err != nil {
				return "", err
			}
			out = append(out, class[i])
		}
	}

	for len(out) < opts.Length {
		i, err := sampler.Int(len(pool))
		if err != nil {
			return "", err
		}
		out = append(out, pool[i])
	}

	// Unconstrained positions are already i.i.d.; only the class-guarantee
	// prefix leaks structure and needs the shuffle.
	if opts.RequireEachClass {
		if err := shuffle(sampler, out); err != nil {
			return "", err
		}
	}

	return string(out), nil
}

// shuffle performs a Fisher-Yates shuffle driven by the sampler.
func shuffle(s *Sampler, runes []rune) error {
	for i := len(runes) - 1; i > 0; i-- {
		j, err := s.Int(i + 1)
		if err != nil {
			return err
		}
		runes[i], runes[j] = runes[j], runes[i]
	}
	return nil
}

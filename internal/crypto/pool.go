package crypto

// Built-in character classes and the similar-looking set excluded by
// Options.ExcludeSimilar.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	SimilarChars   = "il1Lo0O"
)

// Options configures the password generator. The zero value selects
// nothing; use DefaultOptions for the standard configuration.
type Options struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	Custom           string
	ExcludeSimilar   bool
	Exclude          string
	RequireEachClass bool
}

// DefaultOptions returns the standard configuration: 16 characters with all
// four built-in classes enabled.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// buildPools composes the sampling pool and the per-class pools from opts.
//
// The pool is the concatenation of the selected classes in declared order
// (lowercase, uppercase, digits, symbols, custom), with excluded characters
// removed and duplicates dropped while preserving first-insertion order.
// Class pools get the same exclusion filtering but keep their own
// membership, so a character shared between custom and a built-in class can
// satisfy either. Classes emptied entirely by exclusions yield no class
// pool: they cannot be represented, so they are not required.
func buildPools(opts Options) (pool []rune, classes [][]rune) {
	excluded := make(map[rune]struct{})
	for _, r := range opts.Exclude {
		excluded[r] = struct{}{}
	}
	if opts.ExcludeSimilar {
		for _, r := range SimilarChars {
			excluded[r] = struct{}{}
		}
	}

	var sets []string
	if opts.Lowercase {
		sets = append(sets, LowercaseChars)
	}
	if opts.Uppercase {
		sets = append(sets, UppercaseChars)
	}
	if opts.Digits {
		sets = append(sets, DigitChars)
	}
	if opts.Symbols {
		sets = append(sets, SymbolChars)
	}
	if opts.Custom != "" {
		sets = append(sets, opts.Custom)
	}

	seen := make(map[rune]struct{})
	for _, set := range sets {
		classSeen := make(map[rune]struct{})
		var class []rune
		for _, r := range set {
			if _, drop := excluded[r]; drop {
				continue
			}
			if _, dup := classSeen[r]; dup {
				continue
			}
			classSeen[r] = struct{}{}
			class = append(class, r)

			if _, dup := seen[r]; !dup {
				seen[r] = struct{}{}
				pool = append(pool, r)
			}
		}
		if len(class) > 0 {
			classes = append(classes, class)
		}
	}
	return pool, classes
}

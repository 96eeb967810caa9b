package main

import (
	"strconv"
	"strings"

	"github.com/adamluzsi/checked/pkg/compare"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrUnknownKey errorkit.Error = "unknown sort key"

const (
	keyNatural = "natural"
	keyLength  = "length"
	keyNumeric = "numeric"
	keyFold    = "fold"
)

const (
	nullsFirst = "first"
	nullsLast  = "last"
	nullsNone  = "none"
)

// keyRegistry returns the function based sort keys under the names
// they are saved with. The natural ordering needs no registration.
func keyRegistry() compare.Registry[*string] {
	reg := compare.Registry[*string]{}
	reg.Register(keyLength, compare.ByInt(func(line *string) (int, error) {
		if line == nil {
			return 0, compare.ErrNullArgument.F("length of a missing line")
		}
		return len(*line), nil
	}))
	reg.Register(keyNumeric, compare.ByFloat64(func(line *string) (float64, error) {
		if line == nil {
			return 0, compare.ErrNullArgument.F("number of a missing line")
		}
		return strconv.ParseFloat(strings.TrimSpace(*line), 64)
	}))
	reg.Register(keyFold, compare.By(func(line *string) (string, error) {
		if line == nil {
			return "", compare.ErrNullArgument.F("folding a missing line")
		}
		return strings.ToLower(*line), nil
	}))
	return reg
}

type orderingOptions struct {
	Keys    []string
	Reverse bool
	Nulls   string
}

// buildOrdering composes the keys in order, the later ones break the ties of the former ones.
// Reversal applies to the keys only, missing lines stay where Nulls puts them.
func buildOrdering(reg compare.Registry[*string], opts orderingOptions) (compare.Comparator[*string], error) {
	if len(opts.Keys) == 0 {
		return nil, ErrUnknownKey.F("no sort key given")
	}
	if err := checkNulls(opts.Nulls); err != nil {
		return nil, err
	}
	var c compare.Comparator[*string]
	for _, name := range opts.Keys {
		key, err := lookupKey(reg, name)
		if err != nil {
			return nil, err
		}
		if c == nil {
			c = key
			continue
		}
		c = compare.Then(c, key)
	}
	if opts.Reverse {
		c = compare.Reverse(c)
	}
	switch opts.Nulls {
	case nullsFirst:
		c = compare.NullsFirst(c)
	case nullsLast:
		c = compare.NullsLast(c)
	}
	return c, nil
}

func lookupKey(reg compare.Registry[*string], name string) (compare.Comparator[*string], error) {
	if name == keyNatural {
		return compare.NaturalOrder[string](), nil
	}
	key, ok := reg[name]
	if !ok {
		return nil, ErrUnknownKey.F("%q", name)
	}
	return key, nil
}

func checkNulls(v string) error {
	switch v {
	case nullsFirst, nullsLast, nullsNone:
		return nil
	default:
		return ErrInvalidConfig.F("nulls must be one of first, last or none, got %q", v)
	}
}

package compare

import (
	"cmp"
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"
)

const (
	// ErrNotSerializable is returned when a comparator, or one of its parts, has no description.
	ErrNotSerializable errorkit.Error = "comparator is not serializable"
	// ErrInvalidDescriptor is returned when a description can't be turned back into a comparator.
	ErrInvalidDescriptor errorkit.Error = "invalid comparator descriptor"
	// ErrUnknownOrdering is returned when a named ordering is missing from the Registry.
	ErrUnknownOrdering errorkit.Error = "unknown ordering"
)

// Kind names a node type in a comparator description.
type Kind string

const (
	KindNatural        Kind = "natural"
	KindReverseNatural Kind = "reverse-natural"
	KindReversed       Kind = "reversed"
	KindNulls          Kind = "nulls"
	KindThen           Kind = "then"
	KindNamed          Kind = "named"
)

// Descriptor is the persistable form of a comparator graph.
//
// Only the structure is recorded. Comparators built from functions
// can take part in a description by giving them a name with Named,
// and by registering the same name in the Registry used by Restore.
type Descriptor struct {
	Kind       Kind         `json:"kind" yaml:"kind"`
	Name       string       `json:"name,omitempty" yaml:"name,omitempty"`
	NullsFirst bool         `json:"nullsFirst,omitempty" yaml:"nullsFirst,omitempty"`
	Inner      []Descriptor `json:"inner,omitempty" yaml:"inner,omitempty"`
}

// Describer is implemented by comparators that can describe their own structure.
type Describer interface {
	Describe() (Descriptor, error)
}

// Describe returns the description of c.
// It fails with ErrNotSerializable when any part of c can't be described.
func Describe[T any](c Comparator[T]) (Descriptor, error) {
	required("comparator", c)
	d, ok := c.(Describer)
	if !ok {
		return Descriptor{}, ErrNotSerializable.F("%T", c)
	}
	return d.Describe()
}

// Named gives c a name under which it can be described and later restored from a Registry.
func Named[T any](name string, c Comparator[T]) Comparator[T] {
	required("comparator", c)
	return named[T]{Name: name, Inner: c}
}

type named[T any] struct {
	Name  string
	Inner Comparator[T]
}

func (n named[T]) Compare(left, right T) (int, error) {
	return n.Inner.Compare(left, right)
}

func (n named[T]) Describe() (Descriptor, error) {
	return Descriptor{Kind: KindNamed, Name: n.Name}, nil
}

// ThenComparing lets the named comparator compose the way its inner comparator does,
// so a named nil policy still runs before the tie-breaker.
func (n named[T]) ThenComparing(other Comparator[T]) Comparator[T] {
	required("other", other)
	shape := chain[T]{First: n, Then: other}
	if _, ok := n.Inner.(thenComparer[T]); !ok {
		return shape
	}
	return alias[T]{Eval: Then(n.Inner, other), Shape: shape}
}

func (n named[T]) Reversed() Comparator[T] {
	shape := reversed[T]{Inner: n}
	if _, ok := n.Inner.(reverser[T]); !ok {
		return shape
	}
	return alias[T]{Eval: Reverse(n.Inner), Shape: shape}
}

// alias orders with Eval and describes itself as Shape.
// Both must impose the same ordering.
type alias[T any] struct {
	Eval  Comparator[T]
	Shape Comparator[T]
}

func (a alias[T]) Compare(left, right T) (int, error) {
	return a.Eval.Compare(left, right)
}

func (a alias[T]) Describe() (Descriptor, error) {
	return Describe(a.Shape)
}

func (a alias[T]) ThenComparing(other Comparator[T]) Comparator[T] {
	required("other", other)
	return alias[T]{Eval: Then(a.Eval, other), Shape: chain[T]{First: a.Shape, Then: other}}
}

func (a alias[T]) Reversed() Comparator[T] {
	return alias[T]{Eval: Reverse(a.Eval), Shape: Reverse(a.Shape)}
}

// Registry resolves the named parts of a description.
type Registry[T any] map[string]Comparator[T]

// Register adds c to the registry under name, and returns the Named form of c.
func (r Registry[T]) Register(name string, c Comparator[T]) Comparator[T] {
	n := Named(name, c)
	r[name] = n
	return n
}

// Restore builds a comparator of T from its description.
// Named parts are resolved from reg.
//
// Natural and nulls nodes need pointer operands,
// use RestoreNullable or RestoreOrdered for descriptions that contain them.
func Restore[T any](d Descriptor, reg Registry[T]) (Comparator[T], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return restore(d, reg, func(d Descriptor, _ []Comparator[T]) (Comparator[T], error) {
		return nil, ErrInvalidDescriptor.F("%s can't be restored over %T", d.Kind, *new(T))
	})
}

// RestoreNullable builds a comparator of *T from its description, nulls nodes included.
// Natural nodes need an ordered T, use RestoreOrdered for them.
func RestoreNullable[T any](d Descriptor, reg Registry[*T]) (Comparator[*T], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return restore(d, reg, func(d Descriptor, inner []Comparator[*T]) (Comparator[*T], error) {
		if d.Kind == KindNulls {
			return restoreNulls[T](d, inner), nil
		}
		return nil, ErrInvalidDescriptor.F("%s can't be restored over %T", d.Kind, *new(*T))
	})
}

// RestoreOrdered builds a comparator of *T from its description.
// Every node kind is supported, and the natural orderings are restored as their canonical singletons.
func RestoreOrdered[T cmp.Ordered](d Descriptor, reg Registry[*T]) (Comparator[*T], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return restore(d, reg, func(d Descriptor, inner []Comparator[*T]) (Comparator[*T], error) {
		switch d.Kind {
		case KindNatural:
			return NaturalOrder[T](), nil
		case KindReverseNatural:
			return ReverseOrder[T](), nil
		default: // KindNulls
			return restoreNulls[T](d, inner), nil
		}
	})
}

func restoreNulls[T any](d Descriptor, inner []Comparator[*T]) Comparator[*T] {
	n := nulls[T]{First: d.NullsFirst}
	if len(inner) == 1 {
		n.Inner = inner[0]
	}
	return n
}

// restore handles the node kinds that work over any T, and leaves the rest to leaf.
func restore[T any](d Descriptor, reg Registry[T], leaf func(Descriptor, []Comparator[T]) (Comparator[T], error)) (Comparator[T], error) {
	var inner []Comparator[T]
	for _, id := range d.Inner {
		c, err := restore(id, reg, leaf)
		if err != nil {
			return nil, err
		}
		inner = append(inner, c)
	}
	switch d.Kind {
	case KindReversed:
		return Reverse(inner[0]), nil
	case KindThen:
		return Then(inner[0], inner[1]), nil
	case KindNamed:
		c, ok := reg[d.Name]
		if !ok || isNil(c) {
			return nil, ErrUnknownOrdering.F("%q", d.Name)
		}
		if n, ok := c.(named[T]); ok && n.Name == d.Name {
			return c, nil
		}
		return Named(d.Name, c), nil
	default:
		return leaf(d, inner)
	}
}

func (d Descriptor) arity(lo, hi int) error {
	if n := len(d.Inner); n < lo || hi < n {
		return ErrInvalidDescriptor.F("%s expects %d..%d inner descriptors, got %d", d.Kind, lo, hi, n)
	}
	return nil
}

// ParseDescriptor decodes a YAML or JSON encoded description.
func ParseDescriptor(data []byte) (Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, ErrInvalidDescriptor.Wrap(err)
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Validate checks the structure of the description without resolving names.
func (d Descriptor) Validate() error {
	var err error
	switch d.Kind {
	case KindNatural, KindReverseNatural:
		err = d.arity(0, 0)
	case KindReversed:
		err = d.arity(1, 1)
	case KindNulls:
		err = d.arity(0, 1)
	case KindThen:
		err = d.arity(2, 2)
	case KindNamed:
		err = d.arity(0, 0)
		if err == nil && d.Name == "" {
			err = ErrInvalidDescriptor.F("named descriptor without a name")
		}
	default:
		err = ErrInvalidDescriptor.F("unknown kind: %q", d.Kind)
	}
	if err != nil {
		return err
	}
	for _, inner := range d.Inner {
		if err := inner.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Marshal encodes the description as YAML.
func (d Descriptor) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// String renders the description in a compact functional notation,
// for example: reversed(nulls-first(then(named(length), natural)))
func (d Descriptor) String() string {
	switch d.Kind {
	case KindNulls:
		kind := "nulls-last"
		if d.NullsFirst {
			kind = "nulls-first"
		}
		return kind + d.args()
	case KindNamed:
		return fmt.Sprintf("named(%s)", d.Name)
	default:
		return string(d.Kind) + d.args()
	}
}

func (d Descriptor) args() string {
	if len(d.Inner) == 0 {
		if d.Kind == KindNulls {
			return "()"
		}
		return ""
	}
	var parts []string
	for _, inner := range d.Inner {
		parts = append(parts, inner.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

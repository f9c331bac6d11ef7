// Package pets implements the factory exercises over two stand-in animals.
// The plain factory dispatches a tagged Kind over a constructor map; the
// abstract factory wraps each animal behind a uniform three-accessor interface.
package pets

import (
	"errors"
	"fmt"
)

// Kind tags the supported pet variants.
type Kind string

const (
	KindDog Kind = "dog"
	KindCat Kind = "cat"
)

// DefaultKind is used when the caller does not pick a variant.
const DefaultKind = KindDog

// ErrUnknownKind is returned for a Kind outside the supported set.
var ErrUnknownKind = errors.New("unknown pet kind")

// Pet is the minimal capability every variant provides.
type Pet interface {
	Speak() string
}

// Dog is a concrete stand-in pet.
type Dog struct{}

func (Dog) Speak() string { return "woof" }

// Cat is a concrete stand-in pet.
type Cat struct{}

func (Cat) Speak() string { return "meaw" }

// One constructor per tag; only the requested variant is built.
var constructors = map[Kind]func() Pet{
	KindDog: func() Pet { return Dog{} },
	KindCat: func() Pet { return Cat{} },
}

// New builds the pet for the given kind.
func New(kind Kind) (Pet, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(), nil
}

// ParseKind validates a user-supplied kind string. An empty string selects
// DefaultKind.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return DefaultKind, nil
	}
	kind := Kind(s)
	if _, ok := constructors[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return kind, nil
}

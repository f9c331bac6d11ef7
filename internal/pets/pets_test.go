package pets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dog, err := New(KindDog)
	require.NoError(t, err)
	require.Equal(t, "woof", dog.Speak())

	cat, err := New(KindCat)
	require.NoError(t, err)
	require.Equal(t, "meaw", cat.Speak())
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Kind("fish"))
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("")
	require.NoError(t, err)
	require.Equal(t, DefaultKind, kind)

	kind, err = ParseKind("cat")
	require.NoError(t, err)
	require.Equal(t, KindCat, kind)

	_, err = ParseKind("fish")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestStoreReport(t *testing.T) {
	tests := []struct {
		kind Kind
		want Report
	}{
		{KindDog, Report{Type: "dog", Sound: "woof", Food: "dog food"}},
		{KindCat, Report{Type: "cat", Sound: "meaw", Food: "cat food"}},
	}

	for _, tt := range tests {
		factory, err := FactoryFor(tt.kind)
		require.NoError(t, err)

		got := NewStore(factory).Report()
		require.Equal(t, tt.want, got)
	}
}

func TestFactoryFor_UnknownKind(t *testing.T) {
	_, err := FactoryFor(Kind("hamster"))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

// The consumer only sees the Factory interface; a swap of the concrete factory
// changes the report without touching the Store.
func TestStoreIsVariantAgnostic(t *testing.T) {
	var factory Factory = NewDogFactory()
	require.Equal(t, "dog", NewStore(factory).Report().Type)

	factory = NewCatFactory()
	require.Equal(t, "cat", NewStore(factory).Report().Type)
}

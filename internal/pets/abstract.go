package pets

// Factory is the uniform accessor set every concrete pet factory exposes.
// Consumers work against this interface without knowing which variant they hold.
type Factory interface {
	Type() string
	Speak() string
	Food() string
}

// DogFactory wraps a Dog.
type DogFactory struct {
	dog Dog
}

func NewDogFactory() DogFactory { return DogFactory{} }

func (f DogFactory) Type() string  { return "dog" }
func (f DogFactory) Speak() string { return f.dog.Speak() }
func (f DogFactory) Food() string  { return "dog food" }

// CatFactory wraps a Cat.
type CatFactory struct {
	cat Cat
}

func NewCatFactory() CatFactory { return CatFactory{} }

func (f CatFactory) Type() string  { return "cat" }
func (f CatFactory) Speak() string { return f.cat.Speak() }
func (f CatFactory) Food() string  { return "cat food" }

// FactoryFor returns the concrete factory for a kind.
func FactoryFor(kind Kind) (Factory, error) {
	switch kind {
	case KindDog:
		return NewDogFactory(), nil
	case KindCat:
		return NewCatFactory(), nil
	default:
		return nil, ErrUnknownKind
	}
}

// Store is the abstract-factory consumer: it holds one Factory and reports
// its three accessors uniformly.
type Store struct {
	factory Factory
}

func NewStore(factory Factory) *Store {
	return &Store{factory: factory}
}

// Report describes the store's current stock.
type Report struct {
	Type  string
	Sound string
	Food  string
}

func (s *Store) Report() Report {
	return Report{
		Type:  s.factory.Type(),
		Sound: s.factory.Speak(),
		Food:  s.factory.Food(),
	}
}

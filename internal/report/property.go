package report

// Provider is a handle to a lazily computed value.
//
// Design decision: Providers defer evaluation until the value is actually
// needed. A report's output location, for example, is usually derived from a
// base output directory that is only known once CLI flags and config files
// have been merged; providers let reports be constructed before that point
// without guessing.
type Provider[T any] interface {
	// Get returns the value, computing it if necessary.
	// It returns an error if no value can be produced.
	Get() (T, error)

	// OrElse returns the value, or fallback if no value can be produced.
	OrElse(fallback T) T

	// IsPresent reports whether Get would succeed.
	IsPresent() bool
}

// fixedProvider is a Provider holding an already-known value.
type fixedProvider[T any] struct {
	value T
}

// ProviderOf returns a Provider that always yields value.
func ProviderOf[T any](value T) Provider[T] {
	return fixedProvider[T]{value: value}
}

func (p fixedProvider[T]) Get() (T, error)  { return p.value, nil }
func (p fixedProvider[T]) OrElse(T) T       { return p.value }
func (p fixedProvider[T]) IsPresent() bool  { return true }

// funcProvider computes its value from a function on every Get.
type funcProvider[T any] struct {
	fn func() (T, error)
}

// ProviderFunc returns a Provider that computes its value by calling fn.
// fn is invoked on every Get; implementations that are expensive to compute
// should memoize internally.
func ProviderFunc[T any](fn func() (T, error)) Provider[T] {
	return funcProvider[T]{fn: fn}
}

func (p funcProvider[T]) Get() (T, error) { return p.fn() }

func (p funcProvider[T]) OrElse(fallback T) T {
	v, err := p.fn()
	if err != nil {
		return fallback
	}
	return v
}

func (p funcProvider[T]) IsPresent() bool {
	_, err := p.fn()
	return err == nil
}

// Property is a settable Provider. It resolves, in order: the explicitly
// set value or provider, then the convention (a default installed by the
// owning component), and finally fails with ErrPropertyNotSet.
//
// Design decision: A Property carries no synchronization. Reports are
// configured before generation starts and only read afterwards; the generate
// runner never mutates reports concurrently. Adding a mutex here would
// suggest a thread-safety contract the report lifecycle does not have.
type Property[T any] struct {
	source     Provider[T]
	convention Provider[T]
	finalized  bool
}

// NewProperty creates an empty Property with no value and no convention.
func NewProperty[T any]() *Property[T] {
	return &Property[T]{}
}

// Set assigns an explicit value to the property.
// It returns ErrPropertyFinalized if Finalize was called.
func (p *Property[T]) Set(value T) error {
	return p.SetProvider(ProviderOf(value))
}

// SetProvider assigns a provider as the property's value source.
// It returns ErrPropertyFinalized if Finalize was called.
func (p *Property[T]) SetProvider(source Provider[T]) error {
	if p.finalized {
		return ErrPropertyFinalized
	}
	p.source = source
	return nil
}

// Convention installs the default value used when nothing was set.
// It returns the property to allow chaining during construction.
func (p *Property[T]) Convention(value T) *Property[T] {
	return p.ConventionProvider(ProviderOf(value))
}

// ConventionProvider installs a provider as the default value source.
func (p *Property[T]) ConventionProvider(source Provider[T]) *Property[T] {
	p.convention = source
	return p
}

// Finalize locks the property. Subsequent Set and SetProvider calls fail
// with ErrPropertyFinalized. The generate runner finalizes destinations
// once rendering begins so records always match what was written.
func (p *Property[T]) Finalize() {
	p.finalized = true
}

// Get resolves the property value.
func (p *Property[T]) Get() (T, error) {
	if p.source != nil {
		return p.source.Get()
	}
	if p.convention != nil {
		return p.convention.Get()
	}
	var zero T
	return zero, ErrPropertyNotSet
}

// OrElse resolves the property value, returning fallback when unset.
func (p *Property[T]) OrElse(fallback T) T {
	v, err := p.Get()
	if err != nil {
		return fallback
	}
	return v
}

// IsPresent reports whether Get would succeed.
func (p *Property[T]) IsPresent() bool {
	_, err := p.Get()
	return err == nil
}

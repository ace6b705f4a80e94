package assertion

// Selector is a chain narrowed to a derived value of type T.
// The value is absent whenever the chain was dead at narrowing time.
type Selector[T any] struct {
	chain *Chain
	value Maybe[T]
}

// Given narrows c to the value produced by fn. fn runs only while c is
// alive.
func Given[T any](c *Chain, fn func() T) *Selector[T] {
	s := &Selector[T]{chain: c}
	if c.alive() {
		s.value = Some(fn())
	}
	return s
}

// Select narrows s further. fn runs only while the chain is alive and the
// current value is present.
func Select[T, U any](s *Selector[T], fn func(T) U) *Selector[U] {
	next := &Selector[U]{chain: s.chain}
	if s.chain.alive() {
		next.value = MapMaybe(s.value, fn)
	}
	return next
}

// Check evaluates pred against the narrowed value if the chain is alive.
func (s *Selector[T]) Check(pred func(T) bool) *Selector[T] {
	v, ok := s.value.Get()
	if !ok || !s.chain.alive() {
		return s
	}
	if !pred(v) {
		s.chain.pending = true
	}
	return s
}

// ForCondition records an already computed condition.
func (s *Selector[T]) ForCondition(ok bool) *Selector[T] {
	s.chain.ForCondition(ok)
	return s
}

// FailWith reports the rendered template if the preceding check failed.
func (s *Selector[T]) FailWith(template string, args ...any) *SelectorContinuation[T] {
	s.chain.fail(template, args)
	return &SelectorContinuation[T]{selector: s}
}

// Value returns the narrowed value.
func (s *Selector[T]) Value() Maybe[T] {
	return s.value
}

// Chain returns the underlying chain.
func (s *Selector[T]) Chain() *Chain {
	return s.chain
}

// SelectorContinuation is returned by Selector.FailWith.
type SelectorContinuation[T any] struct {
	selector *Selector[T]
}

// Then continues on the same narrowed value.
func (k *SelectorContinuation[T]) Then() *Selector[T] {
	return k.selector
}

// Succeeded reports whether the chain is still alive.
func (k *SelectorContinuation[T]) Succeeded() bool {
	return k.selector.chain.Succeeded()
}

package model

// Decorator enriches a quiz after it has been loaded and before it is
// rendered. Decorators receive a copy owned by the caller pipeline.
type Decorator interface {
	Decorate(*Quiz) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Quiz) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(quiz *Quiz) error {
	return fn(quiz)
}

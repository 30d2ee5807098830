// Package validator wraps go-playground/validator behind an injectable type
// so handlers share one configured instance instead of a package global.
package validator

import "github.com/go-playground/validator/v10"

// Validator validates transport DTOs against their struct tags.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator. Custom rules can be added with RegisterValidation.
func New() *Validator {
	return &Validator{
		v: validator.New(),
	}
}

// Struct validates a struct against its validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single value against a tag expression.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function under a tag.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

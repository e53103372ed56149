package service

// InputValidator checks struct tags on use case inputs. Failures are
// *errors.ValidationError values listing every rejected field.
type InputValidator interface {
	Struct(s any) error
}

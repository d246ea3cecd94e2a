package domain

import "errors"

// Sentinel errors for variant selection.
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping with context.
//
// None of these are returned by products or factories. They exist only where a
// caller turns external input (a flag, a config value, a URL segment) into a
// factory.
var (
	// ErrInvalidVariant indicates a variant string could not be parsed
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrUnknownVariant indicates no factory is registered for the variant
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrNilFactory indicates a nil factory was handed to a session runner
	ErrNilFactory = errors.New("factory cannot be nil")

	// ErrNoVariants indicates a session batch was requested without variants
	ErrNoVariants = errors.New("at least one variant is required")
)

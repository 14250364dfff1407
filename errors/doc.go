/*
Package errors provides semantic error types for meshstore.

Every typed error matches one sentinel through errors.Is, so callers can
branch on the kind of failure without depending on message text:

	a, err := meshstore.Create("complex", m, 0)
	if errors.IsUnrecognizedTypeTag(err) {
	    // configuration mistake: the tag is not bool, size_t, int or double
	}

Sentinels:

	ErrUnrecognizedTypeTag  unknown value type tag
	ErrNotFound             named annotation or stored record missing
	ErrAlreadyExists        name already registered
	ErrInvalidInput         bad mesh, dimension or value
	ErrOutOfRange           entity index outside a mesh function
	ErrConditionFailed      conditional DynamoDB write rejected
	ErrNoIndexMap           no key template registered for a stored type

The typed errors keep matching after fmt.Errorf("...: %w", err) wrapping.
*/
package errors

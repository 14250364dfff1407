/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnrecognizedTypeTag is returned when a value type tag is not in the registry
	ErrUnrecognizedTypeTag = errors.New("mesh function type not recognised")

	// ErrNotFound is returned when a named annotation or record is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a name is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange is returned when an entity index is outside a mesh function
	ErrOutOfRange = errors.New("entity index out of range")

	// ErrConditionFailed is returned when a conditional write fails
	ErrConditionFailed = errors.New("condition check failed")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")
)

// UnrecognizedTypeTagError reports a value type tag outside the registry.
type UnrecognizedTypeTagError struct {
	Tag string
}

func (e *UnrecognizedTypeTagError) Error() string {
	return fmt.Sprintf("mesh function type %q not recognised", e.Tag)
}

func (e *UnrecognizedTypeTagError) Is(target error) bool {
	return target == ErrUnrecognizedTypeTag
}

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// OutOfRangeError reports an entity index outside [0, Size).
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("entity index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// Helper functions for creating errors

// NewUnrecognizedTypeTagError creates a new UnrecognizedTypeTagError
func NewUnrecognizedTypeTagError(tag string) error {
	return &UnrecognizedTypeTagError{Tag: tag}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Type: kind, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewOutOfRangeError creates a new OutOfRangeError
func NewOutOfRangeError(index, size int) error {
	return &OutOfRangeError{Index: index, Size: size}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// IsUnrecognizedTypeTag checks if an error is an unrecognized type tag error
func IsUnrecognizedTypeTag(err error) bool {
	return errors.Is(err, ErrUnrecognizedTypeTag)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

package task

import "fmt"

// NotFoundError is returned by operations that require an existing task.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no task named %q was found", e.Slug)
}

// AlreadyExistsError is returned when adding a task whose slug is already
// present in the catalog.
type AlreadyExistsError struct {
	Slug string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("a task named %q already exists", e.Slug)
}

// ValidationError is returned when a task definition or an import file is
// rejected before any state mutation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

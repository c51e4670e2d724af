package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Recurso string
	Err     error
}

func (e NotFoundError) Error() string {
	if e.Recurso == "" {
		return "no encontrado"
	}
	return fmt.Sprintf("%s no encontrado", e.Recurso)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Campo string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Campo != "":
		return fmt.Sprintf("%s: %s", e.Campo, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Campo != "":
		return fmt.Sprintf("%s invalido", e.Campo)
	default:
		return "error de validación"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Recurso string
	Msg     string
	Err     error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Recurso != "":
		return fmt.Sprintf("%s: %s", e.Recurso, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Recurso != "":
		return fmt.Sprintf("conflicto en %s", e.Recurso)
	default:
		return "conflicto"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "error interno"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

// AsValidation extrae la ValidationError para leer el campo afectado.
func AsValidation(err error, target *ValidationError) bool {
	return errors.As(err, target)
}

// Package core provides types and errors shared across herodex packages
package core

import (
	"github.com/pkg/errors"
)

// ErrHeroNotFound is returned when the requested hero does not exist
var ErrHeroNotFound = errors.New("hero not found")

// ErrInvalidID is returned when a hero id cannot be parsed as an object id
var ErrInvalidID = errors.New("invalid hero id")

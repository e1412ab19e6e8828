package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrMessageNotExtracted = errors.New("message not extracted")
	ErrHandlerTimeout      = errors.New("handler timeout")
	ErrHandlerPanic        = errors.New("handler panic")
	ErrNotConfigured       = errors.New("not configured")
)

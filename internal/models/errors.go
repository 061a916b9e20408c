package models

import (
	"errors"
)

var (
	ErrEmptyPrompt = errors.New("prompt is empty")
)

package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText         = errors.New("task text cannot be empty")
	ErrTaskNotFound      = errors.New("task not found")
	ErrItemNotFound      = errors.New("store item not found")
	ErrInsufficientFunds = errors.New("insufficient points")
	ErrInvalidState      = errors.New("invalid state")
	ErrMalformedRecord   = errors.New("malformed task record")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrConfigExists      = errors.New("config file already exists")
	ErrUnknownBackend    = errors.New("unknown storage backend")
	ErrWrongValueKind    = errors.New("stored value has a different kind")
)

package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")

	// Question errors
	ErrQuestionNotFound   = errors.New("question not found")
	ErrQuestionNumberUsed = errors.New("question number already in use")

	// Answer errors
	ErrAnswerNotFound = errors.New("answer not found")
	ErrNotAuthor      = errors.New("only approved authors can submit answers")
	ErrAlreadyLiked   = errors.New("answer already liked")
	ErrNotLiked       = errors.New("answer not liked")

	// Author profile errors
	ErrProfileNotFound      = errors.New("author profile not found")
	ErrProfileAlreadyExists = errors.New("author profile already exists")

	// Job errors
	ErrJobNotFound         = errors.New("job not found")
	ErrInvalidJobStatus    = errors.New("invalid job status")
	ErrJobAlreadyProcessed = errors.New("job already processed")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRole  = errors.New("invalid role")
)

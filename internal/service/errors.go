package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrUserAlreadyExists  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrDirectorNotFound   = errors.New("director not found")
)

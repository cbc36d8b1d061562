package users

import "errors"

var (
	// ErrInvalidInput возвращается при пустом телефоне
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("users: internal error")
)

// Package domain reúne os erros de persistência que as camadas de caso de
// uso entendem, independentes do driver em uso.
package domain

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
)

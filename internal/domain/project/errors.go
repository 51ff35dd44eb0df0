package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrFilterNotAllowed  = errors.New("filtering is restricted to admins")
	ErrProjectNameExists = errors.New("project name already exists")
)

package master

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department name already exists")
	ErrPositionNotFound     = errors.New("position not found")
)

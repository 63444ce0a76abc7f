package collections

import "errors"

var (
	ErrValueNotExisted = errors.New("value not existed")
)

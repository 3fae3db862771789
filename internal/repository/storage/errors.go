package storage

import "errors"

var ErrAddrNotFound = errors.New("redis address string is empty")

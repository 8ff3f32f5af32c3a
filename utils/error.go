package utils

import "errors"

var ErrorInvalidConfig = errors.New("invalid config")

package console

import (
	"errors"

	"github.com/ezrec/lc3vm/translate"
)

var f = translate.From

var (
	// Console errors
	ErrNoInput = errors.New(f("no input available"))
)

package console

import (
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Syscall seams, replaced by unit tests that run without a TTY.
var (
	tcgetattr = termios.Tcgetattr
	tcsetattr = termios.Tcsetattr
)

// RawMode is a scoped acquisition of the terminal: unbuffered, non-echoing
// input for the duration of a run. Restore must run on every exit path;
// it is safe to invoke from multiple paths and restores at most once.
type RawMode struct {
	fd    uintptr
	saved unix.Termios
	once  sync.Once
}

// EnterRawMode saves the terminal attributes for fd and disables canonical
// input processing and echo.
func EnterRawMode(fd uintptr) (raw *RawMode, err error) {
	raw = &RawMode{fd: fd}

	err = tcgetattr(fd, &raw.saved)
	if err != nil {
		return nil, err
	}

	attr := raw.saved
	attr.Lflag &^= unix.ICANON | unix.ECHO

	err = tcsetattr(fd, termios.TCSANOW, &attr)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

// Restore puts the terminal attributes back exactly once.
func (raw *RawMode) Restore() (err error) {
	raw.once.Do(func() {
		err = tcsetattr(raw.fd, termios.TCSANOW, &raw.saved)
	})

	return
}

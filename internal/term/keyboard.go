package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"github.com/gravitrone/listbox/internal/scroll"
)

// ErrInterrupted is returned when Control-C is read.
var ErrInterrupted = errors.New("interrupted")

const (
	charCtrlC = 3
	charLF    = '\n'
	charCR    = '\r'
	charEsc   = 27

	keyUp   = 'A'
	keyDown = 'B'
)

// Decoder turns a raw byte stream into list box events.
type Decoder struct {
	r       *bufio.Reader
	vimKeys bool
}

// NewDecoder reads keys from r. With vimKeys, k and j move up and down.
func NewDecoder(r io.Reader, vimKeys bool) *Decoder {
	return &Decoder{r: bufio.NewReader(r), vimKeys: vimKeys}
}

// ReadEvent blocks for the next key. ESC [ and ESC O sequences are read to
// their final byte before an event is returned.
func (d *Decoder) ReadEvent() (scroll.Event, error) {
	r, _, err := d.r.ReadRune()
	if err != nil {
		return scroll.EventIgnore, err
	}

	switch r {
	case charCR, charLF:
		return scroll.EventConfirm, nil
	case charCtrlC:
		return scroll.EventIgnore, ErrInterrupted
	case charEsc:
		return d.readEscape()
	case 'w':
		return scroll.EventUp, nil
	case 's':
		return scroll.EventDown, nil
	case 'k':
		if d.vimKeys {
			return scroll.EventUp, nil
		}
	case 'j':
		if d.vimKeys {
			return scroll.EventDown, nil
		}
	}
	return scroll.EventIgnore, nil
}

func (d *Decoder) readEscape() (scroll.Event, error) {
	intro, err := d.r.ReadByte()
	if err != nil {
		return scroll.EventIgnore, err
	}
	if intro != '[' && intro != 'O' {
		// A lone ESC: leave the next key for the following read.
		if err := d.r.UnreadByte(); err != nil {
			return scroll.EventIgnore, err
		}
		return scroll.EventIgnore, nil
	}

	// Skip parameter and intermediate bytes, e.g. ESC [ 1 ; 2 A.
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return scroll.EventIgnore, err
		}
		if b < 0x40 || b > 0x7e {
			continue
		}
		switch b {
		case keyUp:
			return scroll.EventUp, nil
		case keyDown:
			return scroll.EventDown, nil
		}
		return scroll.EventIgnore, nil
	}
}

// Keyboard reads events from a terminal in raw mode. Close cancels any
// pending read before restoring the terminal.
type Keyboard struct {
	*Decoder
	reader cancelreader.CancelReader
	fd     int
	state  *term.State
	closed bool
}

// OpenKeyboard switches f to raw mode. Close restores it.
func OpenKeyboard(f *os.File, vimKeys bool) (*Keyboard, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	kb, err := newKeyboard(f, vimKeys)
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, err
	}
	kb.fd, kb.state = fd, state
	return kb, nil
}

func newKeyboard(f *os.File, vimKeys bool) (*Keyboard, error) {
	reader, err := cancelreader.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open keyboard: %w", err)
	}
	return &Keyboard{Decoder: NewDecoder(reader, vimKeys), reader: reader}, nil
}

// Close unblocks a ReadEvent in progress, which then fails with
// cancelreader.ErrCanceled, and restores the terminal mode saved by
// OpenKeyboard.
func (k *Keyboard) Close() error {
	if k.closed {
		return nil
	}
	k.closed = true
	k.reader.Cancel()
	err := k.reader.Close()
	if k.state != nil {
		err = errors.Join(err, term.Restore(k.fd, k.state))
		k.state = nil
	}
	return err
}

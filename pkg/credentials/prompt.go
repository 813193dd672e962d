package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrPrompterClosed is returned when a closed Prompter is used again.
var ErrPrompterClosed = errors.New("prompter already closed")

// Prompter asks the user for one value at a time.
type Prompter interface {
	// Prompt shows label and waits for one line of input.
	Prompt(label string) (string, error)
	// Close releases the input stream.
	Close() error
}

type fdReader interface {
	io.Reader
	Fd() uintptr
}

// Terminal access, replaced in tests.
var (
	isTerminal = func(fd uintptr) bool {
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	readPassword = term.ReadPassword
)

// TerminalPrompter reads answers from In and writes prompts to Out.
// When In is a terminal, input is read without echo.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
	closed bool
}

// NewTerminalPrompter creates a prompter over in and out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{In: in, Out: out}
}

// Prompt writes label and reads one answer. End of input is an empty answer.
func (p *TerminalPrompter) Prompt(label string) (string, error) {
	if p.closed {
		return "", ErrPrompterClosed
	}
	_, _ = fmt.Fprint(p.Out, label)

	if f, ok := p.In.(fdReader); ok && isTerminal(f.Fd()) {
		b, err := readPassword(int(f.Fd())) //nolint:gosec // fd fits in int
		_, _ = fmt.Fprintln(p.Out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil
			}
			return "", fmt.Errorf("reading input: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		_, _ = fmt.Fprintln(p.Out)
	}
	return strings.TrimSpace(line), nil
}

// Close marks the prompter as released. The underlying stream is owned by
// the caller and is not closed.
func (p *TerminalPrompter) Close() error {
	if p.closed {
		return ErrPrompterClosed
	}
	p.closed = true
	p.reader = nil
	return nil
}

// NoInputPrompter answers every prompt with an empty string.
type NoInputPrompter struct {
	closed bool
}

func (p *NoInputPrompter) Prompt(string) (string, error) {
	if p.closed {
		return "", ErrPrompterClosed
	}
	return "", nil
}

func (p *NoInputPrompter) Close() error {
	if p.closed {
		return ErrPrompterClosed
	}
	p.closed = true
	return nil
}

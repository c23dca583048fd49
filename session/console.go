package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"bikeshare/domain/entities/filter"
)

// ErrInputClosed is returned when the user input ends before the session finishes
var ErrInputClosed = errors.New("input closed")

// Console sequential prompt/answer interaction with the user
type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Ask writes the prompt and returns the next line typed by the user, trimmed and in lower case
func (c *Console) Ask(prompt string) (string, error) {
	c.Print(prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return filter.Normalize(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("error reading user input: %w", err)
	}

	return filter.Normalize(line), nil
}

func (c *Console) Print(a ...any) {
	_, _ = fmt.Fprint(c.writer, a...)
}

func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.writer, a...)
}

func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.writer, format, a...)
}

func (c *Console) Writer() io.Writer {
	return c.writer
}

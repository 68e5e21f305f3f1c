package swizzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompts shown when the generator runs interactively.
const (
	LettersPrompt = "Enter letters you want to swizzle (e.g. ABC): "
	LengthPrompt  = "Max permutation length? "
)

// Input holds what the generator needs from the user.
type Input struct {
	Letters   string
	MaxLength int
}

// Prompt asks on w for every field of in that is still unset and reads the
// answers from r.
func Prompt(r io.Reader, w io.Writer, in *Input) error {
	br := bufio.NewReader(r)

	if in.Letters == "" {
		fmt.Fprint(w, LettersPrompt)
		line, err := readLine(br)
		if err != nil {
			return fmt.Errorf("failed to read letters: %w", err)
		}
		in.Letters = line
	}

	if in.MaxLength == 0 {
		fmt.Fprint(w, LengthPrompt)
		line, err := readLine(br)
		if err != nil {
			return fmt.Errorf("failed to read max permutation length: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrInvalidLength, line)
		}
		in.MaxLength = n
	}
	return nil
}

// readLine returns the next line without its terminator. A final line
// without a newline is accepted.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

package seriesio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/bitseries/series"
)

// ErrBadValue indicates a line that does not parse as a base-10 integer.
var ErrBadValue = errors.New("seriesio: invalid value")

// Read parses one integer per line from r. Surrounding whitespace and blank
// lines are ignored, so files with or without a trailing newline (and with
// CRLF endings) read the same. An empty input yields an empty, non-nil series.
func Read(r io.Reader) (series.Series, error) {
	out := series.Series{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %q: %w", line, text, ErrBadValue)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return out, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return s, nil
}

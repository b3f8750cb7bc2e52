package seriesio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/bitseries/series"
)

// FileMode is the permission used when WriteFile creates a file.
const FileMode os.FileMode = 0o644

// Write serializes s to w, one value per line, without a trailing newline.
// An empty series writes nothing.
// Complexity: O(n) time, O(1) extra memory beyond the bufio buffer.
func Write(w io.Writer, s series.Series) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 20)
	for i, v := range s {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("Write: %w", err)
			}
		}
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteFile truncates (or creates) the file at path and writes s to it.
// The file is closed on every path; a close failure is reported when the
// write itself succeeded.
func WriteFile(path string, s series.Series) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile(%s): close: %w", path, cerr)
		}
	}()

	if err = Write(f, s); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return nil
}

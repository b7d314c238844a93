// Package persist reads and writes the hand-ranks array's on-disk format: a
// little-endian uint32 count followed by that many little-endian int32
// values, with no version header. Writes go through the atomic
// create-temp-then-rename pattern so a reader never observes a partial file.
package persist

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/lox/omahahash/internal/fileutil"
)

// Write serializes array to path: a little-endian uint32 count, then that
// many little-endian int32 values, written atomically.
func Write(path string, array []int32) error {
	var buf bytes.Buffer
	buf.Grow(4 + 4*len(array))
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(array))); err != nil {
		return fmt.Errorf("persist: encode count: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, array); err != nil {
		return fmt.Errorf("persist: encode values: %w", err)
	}
	return fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644)
}

// Read parses the format Write produces. It returns an error if the file is
// shorter than its declared count promises.
func Read(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persist: open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("persist: read count: %w", err)
	}

	array := make([]int32, count)
	if err := binary.Read(r, binary.LittleEndian, &array); err != nil {
		return nil, fmt.Errorf("persist: read %d values: %w", count, err)
	}
	return array, nil
}

package container

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"sync"
)

// maxStreamSize bounds the decompressed record stream.
const maxStreamSize = 512 << 20 // 512 MiB

// scrubBlock is pushed through the writer after every save so its sliding
// window and token buffers hold zeros instead of the record stream. It spans
// twice the deflate window.
var scrubBlock = make([]byte, 128<<10)

// sharedWriter is reused across saves. gzip.Writer does not expose its
// internal buffers, so they are overwritten with scrubBlock instead.
var sharedWriter struct {
	sync.Mutex
	zw *gzip.Writer
}

func compress(plain []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(plain)/2 + 64)

	sharedWriter.Lock()
	defer sharedWriter.Unlock()

	if sharedWriter.zw == nil {
		sharedWriter.zw = gzip.NewWriter(&buf)
	} else {
		sharedWriter.zw.Reset(&buf)
	}
	zw := sharedWriter.zw
	defer scrubWriter(zw)

	if _, err := zw.Write(plain); err != nil {
		return nil, fmt.Errorf("compress record stream: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress record stream: %w", err)
	}
	return buf.Bytes(), nil
}

func scrubWriter(zw *gzip.Writer) {
	zw.Reset(io.Discard)
	_, _ = zw.Write(scrubBlock)
	_ = zw.Close()
}

func decompress(compressed []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecordStream, err)
	}
	defer zr.Close()

	plain, err := io.ReadAll(io.LimitReader(zr, maxStreamSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecordStream, err)
	}
	if len(plain) > maxStreamSize {
		return nil, fmt.Errorf("%w: record stream exceeds %d bytes", ErrCorruptRecordStream, maxStreamSize)
	}
	return plain, nil
}

package filebuffer

import (
	"bytes"
	"context"
	"fmt"
	"sync"
)

type buffersKey struct{}

func WithBuffers(ctx context.Context, buffers *BufferLookup) context.Context {
	return context.WithValue(ctx, buffersKey{}, buffers)
}

// Buffers returns the lookup stored in ctx. Buffers set on the lookup
// returned for a bare context are discarded.
func Buffers(ctx context.Context) *BufferLookup {
	buffers, ok := ctx.Value(buffersKey{}).(*BufferLookup)
	if !ok {
		return NewBuffers()
	}
	return buffers
}

type BufferLookup struct {
	fbs map[string]*FileBuffer
	mu  sync.Mutex
}

func NewBuffers() *BufferLookup {
	return &BufferLookup{
		fbs: make(map[string]*FileBuffer),
	}
}

func (b *BufferLookup) Get(filename string) *FileBuffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fbs[filename]
}

func (b *BufferLookup) Set(filename string, fb *FileBuffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fbs[filename] = fb
}

// FileBuffer is an io.Writer that indexes line endings as it is written, so
// that individual lines can be recalled when rendering diagnostics.
type FileBuffer struct {
	filename string
	buf      bytes.Buffer
	offsets  []int
	mu       sync.Mutex
}

func New(filename string) *FileBuffer {
	return &FileBuffer{filename: filename}
}

func (fb *FileBuffer) Filename() string {
	return fb.filename
}

// Len returns the number of lines, including a final line that is not
// terminated by a newline.
func (fb *FileBuffer) Len() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.len()
}

func (fb *FileBuffer) len() int {
	n := len(fb.offsets)
	if fb.buf.Len() > 0 && (n == 0 || fb.offsets[n-1] != fb.buf.Len()-1) {
		n++
	}
	return n
}

func (fb *FileBuffer) Bytes() []byte {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.buf.Bytes()
}

func (fb *FileBuffer) String() string {
	return string(fb.Bytes())
}

func (fb *FileBuffer) Write(p []byte) (n int, err error) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	offset := fb.buf.Len()
	n, err = fb.buf.Write(p)

	start := 0
	index := bytes.IndexByte(p[:n], '\n')
	for index >= 0 {
		fb.offsets = append(fb.offsets, offset+start+index)
		start += index + 1
		index = bytes.IndexByte(p[start:n], '\n')
	}
	return n, err
}

// Line returns the 0-indexed line without its trailing newline.
func (fb *FileBuffer) Line(ln int) ([]byte, error) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if ln < 0 || ln >= fb.len() {
		return nil, fmt.Errorf("line %d outside of offsets", ln)
	}

	start := 0
	if ln > 0 {
		start = fb.offsets[ln-1] + 1
	}

	end := fb.buf.Len()
	if ln < len(fb.offsets) {
		end = fb.offsets[ln]
	}

	line := make([]byte, end-start)
	copy(line, fb.buf.Bytes()[start:end])
	return line, nil
}

package bytefield

import "io"

// SeekReader is the stream contract consumed by Load operations. Fields
// position the stream themselves, so reads from two fields never depend on
// a shared cursor.
type SeekReader interface {
	io.Reader
	io.Seeker
}

// SeekWriter is the stream contract needed for writeback on loaded
// streams. A SeekReader that also implements io.Writer (such as *os.File)
// satisfies it.
type SeekWriter interface {
	io.Writer
	io.Seeker
}

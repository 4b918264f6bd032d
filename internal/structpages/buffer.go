package structpages

import (
	"bytes"
	"net/http"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// buffered holds the body and status of a response until close, so a failed
// render can be turned into an error response instead of half a page.
// Headers go straight to the underlying writer.
type buffered struct {
	http.ResponseWriter
	buf    *bytes.Buffer
	status int
}

func newBuffered(w http.ResponseWriter) *buffered {
	return &buffered{ResponseWriter: w, buf: bufferPool.Get().(*bytes.Buffer)}
}

func (w *buffered) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *buffered) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *buffered) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *buffered) close() error {
	defer w.release()
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
	if w.buf.Len() == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.buf.Bytes())
	return err
}

// discard drops anything buffered so far.
func (w *buffered) discard() {
	w.release()
}

func (w *buffered) release() {
	if w.buf == nil {
		return
	}
	w.buf.Reset()
	bufferPool.Put(w.buf)
	w.buf = nil
}

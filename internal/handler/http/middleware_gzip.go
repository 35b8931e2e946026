package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Descriptor payloads are long arrays of decimal floats, which compress
// very well, so gzip is offered on every route. Writers and readers are
// pooled; a request both decompresses its body and compresses the response
// when the respective headers ask for it.

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := decompressedBody(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponder{ResponseWriter: w, zw: zw}, r)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

// decompressedBody wraps the request body in a pooled gzip reader. Close
// returns the reader to the pool.
func decompressedBody(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &pooledGzipBody{zr: zr}, nil
}

type pooledGzipBody struct {
	zr *gzip.Reader
}

func (b *pooledGzipBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *pooledGzipBody) Close() error {
	err := b.zr.Close()
	gzipReaders.Put(b.zr)
	return err
}

type gzipResponder struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (g *gzipResponder) WriteHeader(statusCode int) {
	g.Header().Set("Content-Encoding", "gzip")
	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *gzipResponder) Write(data []byte) (int, error) {
	return g.zw.Write(data)
}

// Package compress decides whether a response body is gzip-encoded and encodes it.
package compress

import (
	"bytes"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/dmitrymomot/minicat/core/servlet"
)

// CompressionOn is the only Connector.Compression value that enables gzip.
const CompressionOn = "on"

// ShouldCompress reports whether body may be sent gzip-encoded. All of the
// following must hold:
//
//   - the request's Accept-Encoding contains "gzip"
//   - connector compression is "on"
//   - body is at least CompressionMinSize bytes
//   - the User-Agent contains none of NoCompressionUserAgents
//   - mimeType, without parameters, is one of CompressibleMimeTypes
func ShouldCompress(req *servlet.Request, body []byte, mimeType string, conn *servlet.Connector) bool {
	if conn == nil {
		return false
	}
	if !strings.Contains(req.Header("Accept-Encoding"), "gzip") {
		return false
	}
	if conn.Compression != CompressionOn {
		return false
	}
	if len(body) < conn.CompressionMinSize {
		return false
	}

	userAgent := req.Header("User-Agent")
	for _, ua := range strings.Split(conn.NoCompressionUserAgents, ",") {
		ua = strings.TrimSpace(ua)
		if ua != "" && strings.Contains(userAgent, ua) {
			return false
		}
	}

	mimeType, _, _ = strings.Cut(mimeType, ";")
	mimeType = strings.TrimSpace(mimeType)
	for _, mt := range strings.Split(conn.CompressibleMimeTypes, ",") {
		if strings.TrimSpace(mt) == mimeType {
			return true
		}
	}
	return false
}

var writers = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// Gzip returns body gzip-encoded at the default compression level.
func Gzip(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(body)/2 + 32)

	zw := writers.Get().(*gzip.Writer)
	defer writers.Put(zw)
	zw.Reset(&buf)

	if _, err := zw.Write(body); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

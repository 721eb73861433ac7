package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GzipOptions contiene la configuración del middleware de compresión
type GzipOptions struct {
	// ExcludedPaths son rutas que nunca se comprimen (health, metrics)
	ExcludedPaths []string
}

// ForceGzipOptions contiene la configuración de compresión forzada
type ForceGzipOptions struct {
	// CheckClientSupport verifica Accept-Encoding antes de forzar
	CheckClientSupport bool
}

// GzipReader descomprime los request bodies que llegan con
// Content-Encoding: gzip
func GzipReader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid gzip body"})
				return
			}
			defer reader.Close()
			c.Request.Body = io.NopCloser(reader)
			c.Request.Header.Del("Content-Encoding")
			c.Request.Header.Del("Content-Length")
		}
		c.Next()
	}
}

// GzipMiddleware comprime las respuestas cuando el cliente lo soporta
func GzipMiddleware(opts GzipOptions) gin.HandlerFunc {
	excluded := make(map[string]bool, len(opts.ExcludedPaths))
	for _, path := range opts.ExcludedPaths {
		excluded[path] = true
	}

	return func(c *gin.Context) {
		if excluded[c.Request.URL.Path] {
			c.Next()
			return
		}
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		compressResponse(c)
	}
}

// ForceGzipMiddleware comprime siempre la respuesta en las rutas donde se
// aplica, opcionalmente verificando soporte del cliente
func ForceGzipMiddleware(opts ForceGzipOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if opts.CheckClientSupport && !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		compressResponse(c)
	}
}

func compressResponse(c *gin.Context) {
	gz := gzip.NewWriter(c.Writer)
	writer := &gzipWriter{ResponseWriter: c.Writer, gz: gz}

	c.Header("Content-Encoding", "gzip")
	c.Header("Vary", "Accept-Encoding")
	c.Writer = writer

	defer func() {
		gz.Close()
		c.Header("Content-Length", "")
	}()

	c.Next()
}

type gzipWriter struct {
	gin.ResponseWriter
	gz *gzip.Writer
}

func (w *gzipWriter) Write(data []byte) (int, error) {
	return w.gz.Write(data)
}

func (w *gzipWriter) WriteString(s string) (int, error) {
	return w.gz.Write([]byte(s))
}

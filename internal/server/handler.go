package server

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/generator"
)

// GeneratePath is the single endpoint served by every engine
const GeneratePath = "/api/test-generator/generate"

// HeaderRequestID carries the request id on requests and responses
const HeaderRequestID = "X-Request-ID"

// ErrorBodyPrefix starts the body of every 500 response
const ErrorBodyPrefix = "Error generating tests: "

const (
	contentTypeText        = "text/plain"
	contentTypeTextCharset = "text/plain; charset=utf-8"
	allowedMethods         = "GET, POST, OPTIONS"
	allowedHeaders         = "Content-Type"
)

// Request is the engine-independent view of an incoming request
type Request struct {
	Method    string
	RequestID string
	Body      []byte
	TooLarge  bool
}

// Response is written back by the engine as-is
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Options holds handler settings
type Options struct {
	CORSOrigin   string
	MaxBodyBytes int64
}

// Handler implements the generate endpoint independent of the HTTP framework
type Handler struct {
	generator generator.TestGenerator
	cache     *ResultCache
	logger    *zap.Logger
	opts      Options
}

// NewHandler creates a new handler; cache may be nil
func NewHandler(gen generator.TestGenerator, cache *ResultCache, logger *zap.Logger, opts Options) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	return &Handler{
		generator: gen,
		cache:     cache,
		logger:    logger,
		opts:      opts,
	}
}

// MaxBodyBytes returns the request body limit
func (h *Handler) MaxBodyBytes() int64 {
	return h.opts.MaxBodyBytes
}

// ReadBody reads at most the configured limit from r and reports whether the body exceeded it
func (h *Handler) ReadBody(r io.Reader) ([]byte, bool, error) {
	if r == nil {
		return nil, false, nil
	}
	if h.opts.MaxBodyBytes <= 0 {
		body, err := io.ReadAll(r)
		return body, false, err
	}
	body, err := io.ReadAll(io.LimitReader(r, h.opts.MaxBodyBytes+1))
	if err != nil {
		return nil, false, err
	}
	if int64(len(body)) > h.opts.MaxBodyBytes {
		return nil, true, nil
	}
	return body, false, nil
}

// Handle produces the response for req
func (h *Handler) Handle(req Request) Response {
	start := time.Now()
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	resp, cached := h.respond(req, requestID)
	resp.Header.Set(HeaderRequestID, requestID)

	h.logger.Info("request handled",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.Int("status", resp.Status),
		zap.Int("bytes", len(resp.Body)),
		zap.Bool("cached", cached),
		zap.Duration("duration", time.Since(start)),
	)
	return resp
}

func (h *Handler) respond(req Request, requestID string) (Response, bool) {
	switch req.Method {
	case http.MethodOptions:
		resp := Response{Status: http.StatusNoContent, Header: http.Header{}}
		h.setCORS(resp.Header)
		return resp, false
	case http.MethodPost:
	default:
		resp := Response{Status: http.StatusMethodNotAllowed, Header: http.Header{}}
		resp.Header.Set("Allow", "POST, OPTIONS")
		return resp, false
	}

	if req.TooLarge {
		return textResponse(http.StatusRequestEntityTooLarge,
			"Request body exceeds "+strconv.FormatInt(h.opts.MaxBodyBytes, 10)+" bytes"), false
	}

	if out, ok := h.cache.Get(req.Body); ok {
		return h.success(out), true
	}

	out, err := h.generator.Generate(string(req.Body))
	if err != nil {
		h.logger.Warn("generation failed",
			zap.String("request_id", requestID),
			zap.Stringer("code", errors.CodeOf(err)),
			zap.Error(err),
		)
		return textResponse(http.StatusInternalServerError, ErrorBodyPrefix+err.Error()), false
	}

	h.cache.Set(req.Body, out)
	return h.success(out), false
}

func (h *Handler) success(out string) Response {
	resp := Response{
		Status: http.StatusOK,
		Header: http.Header{},
		Body:   []byte(out),
	}
	resp.Header.Set("Content-Type", contentTypeTextCharset)
	h.setCORS(resp.Header)
	return resp
}

func (h *Handler) setCORS(header http.Header) {
	header.Set("Access-Control-Allow-Origin", h.opts.CORSOrigin)
	header.Set("Access-Control-Allow-Methods", allowedMethods)
	header.Set("Access-Control-Allow-Headers", allowedHeaders)
}

func textResponse(status int, body string) Response {
	resp := Response{
		Status: status,
		Header: http.Header{},
		Body:   []byte(body),
	}
	resp.Header.Set("Content-Type", contentTypeText)
	return resp
}

// ServeHTTP adapts the handler to net/http; the echo and gin engines delegate to it
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := Request{
		Method:    r.Method,
		RequestID: r.Header.Get(HeaderRequestID),
	}
	if r.Method == http.MethodPost {
		body, tooLarge, err := h.ReadBody(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		req.Body, req.TooLarge = body, tooLarge
	}
	writeResponse(w, h.Handle(req))
}

func writeResponse(w http.ResponseWriter, resp Response) {
	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}

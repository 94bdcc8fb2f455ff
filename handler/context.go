package handler

import (
	"context"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Context is the request scope handed to every handler. It is the request's
// context.Context plus access to the request, the writer and, for datastar
// requests, the SSE generator.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// SSE returns the event generator of a datastar request, nil otherwise.
	// Creating it writes the stream headers, so it happens on first call.
	SSE() *datastar.ServerSentEventGenerator
}

type requestContext struct {
	context.Context
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

// NewContext binds w and r into a Context.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &requestContext{Context: r.Context(), w: w, r: r}
}

func (c *requestContext) Request() *http.Request              { return c.r }
func (c *requestContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *requestContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDataStar(c.r) {
		c.sse = datastar.NewSSE(c.w, c.r)
	}
	return c.sse
}

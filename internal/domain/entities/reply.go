package entities

import "net/http"

// ReplyKind tags the two interrupt shapes a gateway driver can produce.

type ReplyKind string

const (
	ReplyRedirect ReplyKind = "redirect"
	ReplyRender   ReplyKind = "render"
)

// Reply is the interrupt a driver returns when it cannot finish an action
// synchronously: the transport layer must answer now (redirect the user to a
// third party, or render a body) and the flow resumes on a later inbound call
// bearing the same token.
//
// A Reply is not an error. Every Reply converts to exactly one
// TransportResponse.

type Reply struct {
	Kind        ReplyKind
	URL         string
	StatusCode  int
	ContentType string
	Body        string
	Headers     map[string]string
}

// NewRedirectReply builds the "send the user to url" interrupt.
func NewRedirectReply(url string) *Reply {
	return &Reply{Kind: ReplyRedirect, URL: url}
}

// NewRenderReply builds the "render this body" interrupt.
func NewRenderReply(statusCode int, contentType, body string) *Reply {
	return &Reply{Kind: ReplyRender, StatusCode: statusCode, ContentType: contentType, Body: body}
}

// TransportResponse is the transport-level outcome of a flow operation:
// an HTTP redirect, an empty 204, or a rendered body.

type TransportResponse struct {
	StatusCode  int               `json:"status_code"`
	RedirectURL string            `json:"redirect_url,omitempty"`
	ContentType string            `json:"content_type,omitempty"`
	Body        string            `json:"body,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// IsRedirect reports whether the response is a redirect.
func (t TransportResponse) IsRedirect() bool {
	return t.RedirectURL != ""
}

// RedirectResponse is the normal-completion redirect.
func RedirectResponse(url string) TransportResponse {
	return TransportResponse{StatusCode: http.StatusFound, RedirectURL: url}
}

// NoContentResponse is the empty 204 used by notify and after-URL-less flows.
func NoContentResponse() TransportResponse {
	return TransportResponse{StatusCode: http.StatusNoContent}
}

package usecase

import (
	"net/http"

	"payflow/internal/domain/entities"
)

// ReplyConverter maps a gateway interrupt into the one transport response the
// handler must write.

type ReplyConverter struct{}

func NewReplyConverter() *ReplyConverter {
	return &ReplyConverter{}
}

func (c *ReplyConverter) Convert(reply *entities.Reply) entities.TransportResponse {
	if reply == nil {
		return entities.NoContentResponse()
	}

	switch reply.Kind {
	case entities.ReplyRedirect:
		code := reply.StatusCode
		if code == 0 {
			code = http.StatusFound
		}
		return entities.TransportResponse{
			StatusCode:  code,
			RedirectURL: reply.URL,
			Headers:     reply.Headers,
		}
	case entities.ReplyRender:
		code := reply.StatusCode
		if code == 0 {
			code = http.StatusOK
		}
		contentType := reply.ContentType
		if contentType == "" {
			contentType = "text/html; charset=utf-8"
		}
		return entities.TransportResponse{
			StatusCode:  code,
			ContentType: contentType,
			Body:        reply.Body,
			Headers:     reply.Headers,
		}
	default:
		return entities.TransportResponse{StatusCode: http.StatusInternalServerError}
	}
}

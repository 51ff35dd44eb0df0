package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	mailService "github.com/crewlog/crewlog-backend/internal/service/mail"
)

type MailHandler interface {
	SendContact(w http.ResponseWriter, r *http.Request)
}

type MailHandlerImpl struct {
	mailService *mailService.Service
}

func NewMailHandler(svc *mailService.Service) MailHandler {
	return &MailHandlerImpl{mailService: svc}
}

// SendContact implements MailHandler. Public endpoint for the website
// contact form.
func (h *MailHandlerImpl) SendContact(w http.ResponseWriter, r *http.Request) {
	var contactReq mailService.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&contactReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.mailService.SendContact(r.Context(), contactReq); err != nil {
		slog.Error("SendContact service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Message sent", nil)
}

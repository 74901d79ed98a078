package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"dconn.dev/portfolio/internal/services"
	"dconn.dev/portfolio/internal/views"
)

const maxContactBody = 64 << 10

// contactResponse is the JSON body of POST /contact
type contactResponse struct {
	Success bool   `json:"success"`
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ContactHandler handles contact form submissions
type ContactHandler struct {
	contactService *services.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: cs, logger: logger}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxContactBody))
	if err != nil {
		if errors.As(err, new(*http.MaxBytesError)) {
			h.respond(w, r, http.StatusRequestEntityTooLarge, contactResponse{Error: true, Message: "Your message is too long."})
			return
		}
		h.respond(w, r, http.StatusBadRequest, contactResponse{Error: true, Message: "Request body could not be read."})
		return
	}

	sub, err := services.DecodeContactSubmission(r.Header.Get("Content-Type"), body)
	if err != nil {
		h.respond(w, r, http.StatusBadRequest, contactResponse{Error: true, Message: validationMessage(err)})
		return
	}

	result, err := h.contactService.Submit(r.Context(), sub)
	if err != nil {
		var derr *services.DeliveryError
		fields := []zap.Field{
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.Error(err),
		}
		if errors.As(err, &derr) {
			fields = append(fields, zap.String("submission_id", derr.SubmissionID), zap.NamedError("cause", derr.Err))
		}
		h.logger.Error("contact delivery failed", fields...)
		h.respond(w, r, http.StatusInternalServerError, contactResponse{Error: true, Message: services.DeliveryFailureMessage})
		return
	}

	h.logger.Info("contact submission relayed", zap.String("submission_id", result.ID))
	h.respond(w, r, http.StatusOK, contactResponse{Success: true, Message: result.Message, ID: result.ID})
}

// respond answers script clients with JSON and plain form posts with a page
func (h *ContactHandler) respond(w http.ResponseWriter, r *http.Request, status int, resp contactResponse) {
	if wantsHTML(r) {
		page := views.Page{Title: "Contact", Path: "/contact"}
		if resp.Success {
			renderPage(w, r, h.logger, status, page, views.ContactSent(resp.Message))
			return
		}
		renderPage(w, r, h.logger, status, page, views.ErrorPage(status, "Message not sent", resp.Message))
		return
	}
	respondJSON(w, h.logger, status, resp)
}

func wantsHTML(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") &&
		strings.Contains(r.Header.Get("Accept"), "text/html")
}

func validationMessage(err error) string {
	var verr *services.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		return "Please provide your " + verr.Field + "."
	}
	return "Please provide your name, email and message."
}

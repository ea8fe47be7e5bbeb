package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"verifymail/functions/internal/mailer"
)

type callableRequest struct {
	Data *mailer.Request `json:"data"`
}

// httpStatusFor maps a lowercase callable error code to its envelope status
// and HTTP status.
func httpStatusFor(code string) (string, int) {
	switch code {
	case "invalid-argument":
		return statusInvalidArgument, http.StatusBadRequest
	default:
		return statusInternal, http.StatusInternalServerError
	}
}

func (a *API) handleSendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusBadRequest, statusInvalidArgument, "request must be POST")
		return
	}
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		writeError(w, http.StatusBadRequest, statusInvalidArgument, "content type must be application/json")
		return
	}

	var req callableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, statusInvalidArgument, "invalid request body")
		return
	}
	if req.Data == nil {
		writeError(w, http.StatusBadRequest, statusInvalidArgument, "request body is missing data")
		return
	}

	resp, err := a.sender.SendVerificationEmail(r.Context(), *req.Data)
	if err != nil {
		var mailErr *mailer.MailError
		if errors.As(err, &mailErr) {
			status, httpStatus := httpStatusFor(mailErr.Code)
			writeError(w, httpStatus, status, mailErr.Message)
			return
		}
		a.logger.ErrorContext(r.Context(), "unexpected send error", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, statusInternal, "INTERNAL")
		return
	}

	writeResult(w, resp)
}

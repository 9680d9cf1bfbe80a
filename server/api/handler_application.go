package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/pipeline"
)

func (h *Handler) handleApplication(w http.ResponseWriter, r *http.Request) {
	p, err := h.Pipeline()

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	validationOnly, _ := strconv.ParseBool(r.URL.Query().Get("validation_only"))

	options := &pipeline.RunOptions{
		ValidationOnly: validationOnly,
	}

	result, err := p.Run(r.Context(), options)

	if err != nil {
		slog.ErrorContext(r.Context(), "application run failed", "error", err)

		writeError(w, http.StatusBadGateway, err)
		return
	}

	slog.InfoContext(r.Context(), "application processed", "id", result.ID, "validation_only", validationOnly)

	writeJson(w, result)
}

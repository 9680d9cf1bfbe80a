package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/tool/docqa"

	"github.com/go-chi/chi/v5/middleware"
)

type AnswerRequest struct {
	Tool string `json:"tool,omitempty"`

	Paths    []string `json:"paths"`
	Question string   `json:"question"`
}

type AnswerResponse struct {
	ID string `json:"id"`

	Answer string `json:"answer"`
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id := req.Tool

	if id == "" {
		id = "document_qa"
	}

	p, err := h.Tool(id)

	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	tools, err := p.Tools(r.Context())

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if len(tools) == 0 {
		writeError(w, http.StatusNotFound, errors.New("tool not found: "+id))
		return
	}

	paths := make([]any, 0, len(req.Paths))

	for _, path := range req.Paths {
		paths = append(paths, path)
	}

	result, err := p.Execute(r.Context(), tools[0].Name, map[string]any{
		"paths":    paths,
		"question": req.Question,
	})

	if err != nil {
		writeError(w, answerErrorCode(err), err)
		return
	}

	answer, _ := result.(string)

	writeJson(w, AnswerResponse{
		ID: middleware.GetReqID(r.Context()),

		Answer: answer,
	})
}

func answerErrorCode(err error) int {
	var unsupported *docqa.UnsupportedFileTypeError

	if errors.Is(err, docqa.ErrBatchSize) || errors.As(err, &unsupported) {
		return http.StatusBadRequest
	}

	if errors.Is(err, fs.ErrNotExist) {
		return http.StatusNotFound
	}

	var upload *docqa.UploadError
	var inference *docqa.InferenceError

	if errors.As(err, &upload) || errors.As(err, &inference) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

type examService interface {
	Get(ctx context.Context, rawID string) (*domain.Exam, error)
	Delete(ctx context.Context, rawID string) (*domain.Exam, error)
}

// ExamHandler serves the exam REST endpoints.
type ExamHandler struct {
	svc examService
	log *slog.Logger
}

// NewExamHandler creates an ExamHandler.
func NewExamHandler(svc examService, logger *slog.Logger) *ExamHandler {
	return &ExamHandler{svc: svc, log: logger.With("handler", "exam")}
}

type examResponse struct {
	ID                 domain.ID  `json:"id"`
	CategoryID         domain.ID  `json:"categoryId"`
	OwnerID            domain.ID  `json:"ownerId"`
	QuestionCount      int        `json:"questionCount"`
	AnsweredCount      int        `json:"answeredCount"`
	QuestionNumber     int        `json:"questionNumber"`
	CorrectAnswerCount *int       `json:"correctAnswerCount"`
	CompletedAt        *time.Time `json:"completedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func toExamResponse(e *domain.Exam) examResponse {
	return examResponse{
		ID:                 e.ID,
		CategoryID:         e.CategoryID,
		OwnerID:            e.OwnerID,
		QuestionCount:      len(e.Questions),
		AnsweredCount:      e.AnsweredCount(),
		QuestionNumber:     e.QuestionNumber,
		CorrectAnswerCount: e.VisibleCorrectAnswerCount(),
		CompletedAt:        e.CompletedAt,
		CreatedAt:          e.CreatedAt,
	}
}

// Get handles GET /exams/{examId}.
func (h *ExamHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Get(r.Context(), mux.Vars(r)["examId"])
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toExamResponse(e))
}

// Delete handles DELETE /exams/{examId}.
func (h *ExamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.Delete(r.Context(), mux.Vars(r)["examId"]); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

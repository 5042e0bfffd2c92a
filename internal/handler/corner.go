package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service"
)

type CornerHandler struct {
	corner *service.CornerService
}

func NewCornerHandler(corner *service.CornerService) *CornerHandler {
	return &CornerHandler{corner: corner}
}

func (h *CornerHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/corner/questions", h.CreateQuestion)
		r.Get("/corner/questions", h.ListQuestions)
		r.Get("/corner/questions/{question_id}", h.GetQuestion)
		r.Post("/corner/questions/{question_id}/answers", h.CreateAnswer)
		r.Post("/corner/questions/{question_id}/vote", h.Vote)
		r.Post("/corner/questions/{question_id}/answers/{answer_id}/accept", h.AcceptAnswer)
	})
}

func (h *CornerHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var input model.CreateCornerQuestionInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	question, err := h.corner.CreateQuestion(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, question)
}

func (h *CornerHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.corner.ListQuestions(r.Context(), parseListParams(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if questions == nil {
		questions = []*model.CornerQuestion{}
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *CornerHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "question_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	question, answers, err := h.corner.GetQuestion(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"question": question, "answers": answers})
}

func (h *CornerHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "question_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	var input model.CreateCornerAnswerInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	answer, err := h.corner.CreateAnswer(r.Context(), id, &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, answer)
}

func (h *CornerHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "question_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	var input model.VoteInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	votes, err := h.corner.Vote(r.Context(), id, &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"votes": votes})
}

func (h *CornerHandler) AcceptAnswer(w http.ResponseWriter, r *http.Request) {
	questionId, err := parsePathID(r, "question_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	answerId, err := parsePathID(r, "answer_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := h.corner.AcceptAnswer(r.Context(), questionId, answerId); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service"
)

type AssignmentHandler struct {
	assignments *service.AssignmentService
}

func NewAssignmentHandler(assignments *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

func (h *AssignmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/classrooms/{classroom_id}/assignments", h.Create)
		r.Get("/classrooms/{classroom_id}/assignments", h.List)
		r.Get("/classrooms/{classroom_id}/assignments/{assignment_id}", h.Get)
		r.Post("/classrooms/{classroom_id}/assignments/{assignment_id}/submissions", h.Submit)
		r.Get("/classrooms/{classroom_id}/assignments/{assignment_id}/submissions", h.ListSubmissions)
		r.Post("/classrooms/{classroom_id}/assignments/{assignment_id}/grade", h.Grade)
		r.Get("/classrooms/{classroom_id}/assignments/{assignment_id}/questions", h.ListQuestions)
		r.Post("/classrooms/{classroom_id}/assignments/{assignment_id}/questions", h.AskQuestion)
		r.Post("/classrooms/{classroom_id}/assignments/{assignment_id}/questions/{question_id}/answers", h.AnswerQuestion)
	})
}

func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	classroomId, err := parsePathID(r, "classroom_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	var input model.CreateAssignmentInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	assignment, err := h.assignments.Create(r.Context(), classroomId, &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	classroomId, err := parsePathID(r, "classroom_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	assignments, err := h.assignments.List(r.Context(), classroomId)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if assignments == nil {
		assignments = []*model.Assignment{}
	}
	writeJSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	classroomId, assignmentId, err := parseAssignmentPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	assignment, err := h.assignments.Get(r.Context(), classroomId, assignmentId)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assignment)
}

// Submit accepts either a JSON body with "content" or a multipart form with a
// "file" field, matching the assignment's submission type.
func (h *AssignmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	classroomId, assignmentId, err := parseAssignmentPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	input, err := parseSubmissionBody(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	submission, err := h.assignments.Submit(r.Context(), classroomId, assignmentId, input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, submission)
}

func (h *AssignmentHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	classroomId, assignmentId, err := parseAssignmentPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	submissions, err := h.assignments.ListSubmissions(r.Context(), classroomId, assignmentId)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if submissions == nil {
		submissions = []*model.Submission{}
	}
	writeJSON(w, http.StatusOK, submissions)
}

func (h *AssignmentHandler) Grade(w http.ResponseWriter, r *http.Request) {
	classroomId, assignmentId, err := parseAssignmentPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	var input model.GradeSubmissionInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	submission, err := h.assignments.Grade(r.Context(), classroomId, assignmentId, &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submission)
}

func (h *AssignmentHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	classroomId, assignmentId, err := parseAssignmentPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	questions, err := h.assignments.ListQuestions(r.Context(), classroomId, assignmentId)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if questions == nil {
		questions = []*model.Question{}
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *AssignmentHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	classroomId, assignmentId, err := parseAssignmentPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	var body struct {
		Question string `json:"question" validate:"required,max=5000"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, r, err)
		return
	}
	question, err := h.assignments.AskQuestion(r.Context(), classroomId, assignmentId, body.Question)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, question)
}

func (h *AssignmentHandler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	classroomId, assignmentId, err := parseAssignmentPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	questionId, err := parsePathID(r, "question_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	var body struct {
		Answer string `json:"answer" validate:"required,max=5000"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeErr(w, r, err)
		return
	}
	answer, err := h.assignments.AnswerQuestion(r.Context(), classroomId, assignmentId, questionId, body.Answer)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, answer)
}

func parseAssignmentPath(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	classroomId, err := parsePathID(r, "classroom_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	assignmentId, err := parsePathID(r, "assignment_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return classroomId, assignmentId, nil
}

// parseSubmissionBody accepts a multipart form carrying a "file" part and a
// "content" field, or a plain JSON body with "content". Which parts are
// required depends on the assignment's submission type, so a missing file is
// left for the service to judge.
func parseSubmissionBody(r *http.Request) (*model.SubmitAssignmentInput, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("%w: invalid multipart form", errdefs.ErrValidation)
		}
		input := &model.SubmitAssignmentInput{Content: r.FormValue("content")}
		file, header, err := r.FormFile("file")
		switch {
		case err == nil:
			input.File = &model.FileUpload{
				Reader:      file,
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
			}
		case errors.Is(err, http.ErrMissingFile):
		default:
			return nil, fmt.Errorf("%w: malformed file field", errdefs.ErrValidation)
		}
		return input, nil
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}
	return &model.SubmitAssignmentInput{Content: body.Content}, nil
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service"
)

type CommunityHandler struct {
	community *service.CommunityService
}

func NewCommunityHandler(community *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{community: community}
}

func (h *CommunityHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/discussions", h.CreateDiscussion)
		r.Get("/discussions", h.ListDiscussions)
		r.Get("/discussions/{discussion_id}", h.GetDiscussion)
		r.Patch("/discussions/{discussion_id}", h.UpdateDiscussion)
		r.Delete("/discussions/{discussion_id}", h.DeleteDiscussion)
		r.Post("/discussions/{discussion_id}/like", h.ToggleLike)

		r.Post("/groups", h.CreateGroup)
		r.Get("/groups", h.ListGroups)
		r.Get("/groups/{group_id}", h.GetGroup)
		r.Delete("/groups/{group_id}", h.DeleteGroup)
		r.Post("/groups/{group_id}/membership", h.ToggleMembership)

		r.Post("/events", h.CreateEvent)
		r.Get("/events", h.ListEvents)
		r.Get("/events/{event_id}", h.GetEvent)
		r.Delete("/events/{event_id}", h.DeleteEvent)
		r.Post("/events/{event_id}/attendance", h.ToggleAttendance)

		r.Post("/projects", h.CreateProject)
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{project_id}", h.GetProject)
		r.Delete("/projects/{project_id}", h.DeleteProject)
	})
}

func (h *CommunityHandler) CreateDiscussion(w http.ResponseWriter, r *http.Request) {
	var input model.CreateDiscussionInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	discussion, err := h.community.CreateDiscussion(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, discussion)
}

func (h *CommunityHandler) ListDiscussions(w http.ResponseWriter, r *http.Request) {
	discussions, err := h.community.ListDiscussions(r.Context(), parseListParams(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if discussions == nil {
		discussions = []*model.Discussion{}
	}
	writeJSON(w, http.StatusOK, discussions)
}

func (h *CommunityHandler) GetDiscussion(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "discussion_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	discussion, err := h.community.GetDiscussion(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, discussion)
}

func (h *CommunityHandler) UpdateDiscussion(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "discussion_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	var input model.UpdateDiscussionInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	discussion, err := h.community.UpdateDiscussion(r.Context(), id, &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, discussion)
}

func (h *CommunityHandler) DeleteDiscussion(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "discussion_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := h.community.DeleteDiscussion(r.Context(), id); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommunityHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "discussion_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	liked, likes, err := h.community.ToggleDiscussionLike(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"liked": liked, "likes": likes})
}

func (h *CommunityHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var input model.CreateGroupInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	group, err := h.community.CreateGroup(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (h *CommunityHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.community.ListGroups(r.Context(), parseListParams(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if groups == nil {
		groups = []*model.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *CommunityHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "group_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	group, err := h.community.GetGroup(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *CommunityHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "group_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := h.community.DeleteGroup(r.Context(), id); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommunityHandler) ToggleMembership(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "group_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	joined, members, err := h.community.ToggleGroupMembership(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"joined": joined, "memberCount": members})
}

func (h *CommunityHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input model.CreateEventInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	event, err := h.community.CreateEvent(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *CommunityHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.community.ListEvents(r.Context(), parseListParams(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if events == nil {
		events = []*model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CommunityHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "event_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	event, err := h.community.GetEvent(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *CommunityHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "event_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := h.community.DeleteEvent(r.Context(), id); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommunityHandler) ToggleAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "event_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	attending, attendees, err := h.community.ToggleEventAttendance(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"attending": attending, "attendeeCount": attendees})
}

func (h *CommunityHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var input model.CreateProjectInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	project, err := h.community.CreateProject(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *CommunityHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.community.ListProjects(r.Context(), parseListParams(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *CommunityHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "project_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	project, err := h.community.GetProject(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *CommunityHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "project_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := h.community.DeleteProject(r.Context(), id); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/avis-hq/avis-backend-go/internal/domain/task"
	"github.com/avis-hq/avis-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddComment(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{
		taskService: taskService,
	}
}

// List implements TaskHandler. Status and priority filters come from the
// query string.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	filter := task.Filter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}

	tasks, err := h.taskService.List(r.Context(), s, filter)
	if err != nil {
		slog.Error("List tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// Get implements TaskHandler.
func (h *TaskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	found, err := h.taskService.Get(r.Context(), s, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	var createReq task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create task validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.taskService.Create(r.Context(), s, createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task created", "title", createReq.Title, "assignee", createReq.AssigneeID)
	response.Created(w, "Task created successfully", created)
}

// Update implements TaskHandler.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq task.UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update task validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.taskService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated successfully", updated)
}

// UpdateStatus implements TaskHandler.
func (h *TaskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	var statusReq task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Update task status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := statusReq.Validate(); err != nil {
		slog.Error("Update task status validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.taskService.UpdateStatus(r.Context(), s, chi.URLParam(r, "id"), statusReq)
	if err != nil {
		slog.Error("Update task status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", updated)
}

// Delete implements TaskHandler.
func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}

// AddComment implements TaskHandler.
func (h *TaskHandlerImpl) AddComment(w http.ResponseWriter, r *http.Request) {
	s, ok := session(w, r)
	if !ok {
		return
	}

	var commentReq task.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&commentReq); err != nil {
		slog.Error("Add comment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := commentReq.Validate(); err != nil {
		slog.Error("Add comment validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	comment, err := h.taskService.AddComment(r.Context(), s, chi.URLParam(r, "id"), commentReq)
	if err != nil {
		slog.Error("Add comment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment added", comment)
}

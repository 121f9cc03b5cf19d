package handler

import (
	"strconv"

	"humanness-tasks/internal/service"
	"humanness-tasks/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for submitted tasks.
type TaskHandler struct {
	service service.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service service.TaskServicer) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks godoc
// @Summary      List submitted tasks
// @Description  Retrieve a paginated snapshot of every submitted task, oldest first
// @Tags         tasks
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10, max: 50)"
// @Success      200    {object}  response.Response{data=models.SubmittedTaskListResponse}
// @Failure      500    {object}  response.Response
// @Router       /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListTasks(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

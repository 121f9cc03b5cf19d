package handler

import (
	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/internal/middleware"
	"humanness-tasks/internal/models"
	"humanness-tasks/internal/service"
	"humanness-tasks/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles HTTP requests for the task flow of one session.
type SessionHandler struct {
	service service.SessionServicer
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service service.SessionServicer) *SessionHandler {
	return &SessionHandler{service: service}
}

// sessionID returns the authenticated session ID or writes a 401.
func sessionID(c *gin.Context) (string, bool) {
	id := middleware.GetSessionID(c)
	if id == "" {
		response.Unauthorized(c, apperrors.ErrUnauthorized.Error())
		return "", false
	}
	return id, true
}

// CreateSession godoc
// @Summary      Start a flow session
// @Description  Create a new session at the start screen and return its bearer token
// @Tags         session
// @Produce      json
// @Success      201  {object}  response.Response{data=service.SessionTokenResponse}
// @Failure      500  {object}  response.Response
// @Router       /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	result, err := h.service.CreateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, result)
}

// GetSession godoc
// @Summary      Get session state
// @Description  Retrieve the current screen, noise check, reading task and recording of the session
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response{data=session.View}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.service.GetSession(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, view)
}

// EndSession godoc
// @Summary      End the session
// @Description  Discard the session and its task history. Submitted tasks are kept.
// @Tags         session
// @Success      204
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /session [delete]
func (h *SessionHandler) EndSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.service.EndSession(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

// Advance godoc
// @Summary      Move to another screen
// @Description  Advance the flow to the given screen. Leaving the noise check requires a quiet test.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      models.AdvanceRequest  true  "Target screen"
// @Success      200   {object}  response.Response{data=session.View}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Security     BearerAuth
// @Router       /session/advance [post]
func (h *SessionHandler) Advance(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req models.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.service.Advance(c.Request.Context(), id, req.Screen)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, view)
}

// GoBack godoc
// @Summary      Go back one screen
// @Description  Return to the previous screen of the flow
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response{data=session.View}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Security     BearerAuth
// @Router       /session/back [post]
func (h *SessionHandler) GoBack(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.service.GoBack(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, view)
}

// History godoc
// @Summary      Get session task history
// @Description  Retrieve the tasks submitted during this session, oldest first
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response{data=models.TaskHistoryResponse}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /session/history [get]
func (h *SessionHandler) History(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// RecordingStatus godoc
// @Summary      Get recording status
// @Description  Retrieve the recording state with the live elapsed time
// @Tags         recording
// @Produce      json
// @Success      200  {object}  response.Response{data=recording.Session}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Security     BearerAuth
// @Router       /session/recording [get]
func (h *SessionHandler) RecordingStatus(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	rec, err := h.service.RecordingStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, rec)
}

// StartRecording godoc
// @Summary      Press the record button
// @Description  Start a new recording at zero elapsed seconds
// @Tags         recording
// @Produce      json
// @Success      200  {object}  response.Response{data=recording.Session}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Security     BearerAuth
// @Router       /session/recording/start [post]
func (h *SessionHandler) StartRecording(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	rec, err := h.service.StartRecording(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, rec)
}

// StopRecording godoc
// @Summary      Release the record button
// @Description  Stop the recording and classify its duration. Recordings outside 10 to 20 seconds are returned with a 422.
// @Tags         recording
// @Produce      json
// @Success      200  {object}  response.Response{data=recording.Session}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response{data=recording.Session}
// @Security     BearerAuth
// @Router       /session/recording/stop [post]
func (h *SessionHandler) StopRecording(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	rec, err := h.service.StopRecording(c.Request.Context(), id)
	if err != nil {
		respondAdvisory(c, err, rec)
		return
	}

	response.Success(c, rec)
}

// ResetRecording godoc
// @Summary      Record again
// @Description  Discard the current recording and return to idle
// @Tags         recording
// @Produce      json
// @Success      200  {object}  response.Response{data=recording.Session}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Security     BearerAuth
// @Router       /session/recording/reset [post]
func (h *SessionHandler) ResetRecording(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	rec, err := h.service.ResetRecording(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, rec)
}

// Submit godoc
// @Summary      Submit the text reading task
// @Description  Record the task once the recording is valid and every quality check is confirmed. Returns a pre-signed URL for uploading the audio.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      models.SubmitTaskRequest  true  "Quality checks"
// @Success      201   {object}  response.Response{data=models.SubmitTaskResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /session/submit [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req models.SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Submit(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, result)
}

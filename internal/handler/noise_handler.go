package handler

import (
	"humanness-tasks/internal/noise"
	"humanness-tasks/internal/service"
	"humanness-tasks/pkg/response"

	"github.com/gin-gonic/gin"
)

// Server-sent event names of the noise test stream.
const (
	EventSample = "sample"
	EventResult = "result"
	EventError  = "error"
)

// NoiseHandler handles HTTP requests for the noise check.
type NoiseHandler struct {
	service service.SessionServicer
}

// NewNoiseHandler creates a new NoiseHandler.
func NewNoiseHandler(service service.SessionServicer) *NoiseHandler {
	return &NoiseHandler{service: service}
}

// RunNoiseTest godoc
// @Summary      Run the noise test
// @Description  Sample ambient noise and return the verdict. A noisy result is returned with a 422.
// @Tags         noise
// @Produce      json
// @Success      200  {object}  response.Response{data=noise.Result}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response{data=noise.Result}
// @Security     BearerAuth
// @Router       /session/noise-test [post]
func (h *NoiseHandler) RunNoiseTest(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.service.RunNoiseTest(c.Request.Context(), id, nil)
	if err != nil {
		respondAdvisory(c, err, result)
		return
	}

	response.Success(c, result)
}

// StreamNoiseTest godoc
// @Summary      Run the noise test as a stream
// @Description  Sample ambient noise, sending each reading as a "sample" event and the verdict as a "result" event. Failures are sent as an "error" event. The token may be passed as the token query parameter.
// @Tags         noise
// @Produce      text/event-stream
// @Param        token  query     string  false  "Session token for clients that cannot set headers"
// @Success      200    {string}  string  "event stream"
// @Failure      401    {object}  response.Response
// @Security     BearerAuth
// @Router       /session/noise-test/stream [get]
func (h *NoiseHandler) StreamNoiseTest(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	readings := make(chan noise.Reading)
	done := make(chan struct{})

	var (
		result *noise.Result
		err    error
	)
	go func() {
		defer close(done)
		result, err = h.service.RunNoiseTest(c.Request.Context(), id, func(r noise.Reading) {
			select {
			case readings <- r:
			case <-c.Request.Context().Done():
			}
		})
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	for {
		select {
		case r := <-readings:
			c.SSEvent(EventSample, r)
			c.Writer.Flush()
		case <-done:
			switch {
			case result != nil:
				c.SSEvent(EventResult, result)
			case err != nil:
				c.SSEvent(EventError, gin.H{"error": err.Error(), "status": statusFor(err)})
			}
			c.Writer.Flush()
			return
		}
	}
}

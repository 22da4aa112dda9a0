package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/notmyst33d/schedapi-ssr/internal/middleware"
	"github.com/notmyst33d/schedapi-ssr/internal/page"
	"github.com/notmyst33d/schedapi-ssr/internal/response"
	"github.com/notmyst33d/schedapi-ssr/internal/service"
	"github.com/notmyst33d/schedapi-ssr/internal/validator"
)

// scheduleQuery is the typed query string of the page. The intent flags
// (custom, current, next) are presence-only and read from the raw query
// instead, since their values carry no meaning.
type scheduleQuery struct {
	Week  *int   `form:"week" binding:"omitempty,min=1"`
	Group string `form:"group"`
}

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	renderer        *page.Renderer
	log             zerolog.Logger
}

func NewScheduleHandler(scheduleService *service.ScheduleService, renderer *page.Renderer, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		renderer:        renderer,
		log:             log.With().Str("component", "schedule_handler").Logger(),
	}
}

// GetPage godoc
// GET /
func (h *ScheduleHandler) GetPage(c *gin.Context) {
	var q scheduleQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailFields(c, http.StatusBadRequest, fields)
		return
	}

	rawQuery := c.Request.URL.Query()
	req := service.PageRequest{
		GroupID: q.Group,
		Week:    q.Week,
		Current: rawQuery.Has("current"),
		Next:    rawQuery.Has("next"),
		Device:  middleware.GetDeviceClass(c),
	}

	data, err := h.scheduleService.BuildPage(c.Request.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("page build failed")
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	doc, err := h.renderer.Render(data)
	if err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("template render failed")
		response.Fail(c, http.StatusInternalServerError)
		return
	}

	if err := response.HTML(c, http.StatusOK, doc); err != nil {
		h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("charset transcoding failed")
		response.Fail(c, http.StatusInternalServerError)
	}
}

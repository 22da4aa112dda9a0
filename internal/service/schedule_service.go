package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/notmyst33d/schedapi-ssr/internal/layout"
	"github.com/notmyst33d/schedapi-ssr/internal/model"
	"github.com/notmyst33d/schedapi-ssr/internal/page"
	"github.com/notmyst33d/schedapi-ssr/internal/schedapi"
	"github.com/notmyst33d/schedapi-ssr/internal/week"
)

// PageRequest carries the decoded request inputs for one page render.
// Current and Next reflect parameter presence only.
type PageRequest struct {
	GroupID string
	Week    *int
	Current bool
	Next    bool
	Device  model.DeviceClass
}

// ScheduleService orchestrates the sequential backend fetches for one
// request: product name, group roster, then epoch and schedule when a
// group is selected. No state is shared between requests.
type ScheduleService struct {
	api *schedapi.Client
	now func() time.Time
	log zerolog.Logger
}

func NewScheduleService(api *schedapi.Client, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		api: api,
		now: time.Now,
		log: log.With().Str("component", "schedule_service").Logger(),
	}
}

// BuildPage assembles the page data for a request. Fetch errors are
// returned as-is: the handler turns them into a request-level failure,
// with no retries and no partial render.
func (s *ScheduleService) BuildPage(ctx context.Context, req PageRequest) (page.Data, error) {
	data := page.Data{
		SelectedID: model.NoGroup,
		WeekValue:  "1",
		Mobile:     req.Device == model.DeviceMobile,
	}
	if req.Week != nil {
		// Echo an explicit week in the form even before a group is
		// chosen; resolution below may still override it.
		data.WeekValue = strconv.Itoa(*req.Week)
	}

	name, err := s.api.ProductName(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("product name fetch failed")
		return page.Data{}, err
	}
	data.ProductName = name

	groups, err := s.api.Groups(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("group list fetch failed")
		return page.Data{}, err
	}
	data.Groups = groups

	if !model.GroupSelected(req.GroupID) {
		data.Message = layout.PromptSelectGroup
		return data, nil
	}
	data.SelectedID = req.GroupID

	epoch, err := s.api.Epoch(ctx, req.GroupID)
	if err != nil {
		s.log.Error().Err(err).Str("group", req.GroupID).Msg("epoch fetch failed")
		return page.Data{}, err
	}

	explicit := 0
	if req.Week != nil {
		explicit = *req.Week
	}
	intent := week.ParseIntent(req.Week, req.Current, req.Next)
	wk, ok := week.Resolve(s.now(), epoch, intent, explicit)
	if !ok {
		// Group chosen but no week requested in any form.
		data.Message = layout.PromptSelectGroup
		return data, nil
	}
	data.WeekValue = strconv.Itoa(wk)

	days, err := s.api.Schedule(ctx, req.GroupID, wk)
	if err != nil {
		s.log.Error().Err(err).Str("group", req.GroupID).Int("week", wk).Msg("schedule fetch failed")
		return page.Data{}, err
	}

	if model.TotalLessons(days) == 0 {
		data.Message = layout.NoDataMessage(wk)
		return data, nil
	}

	data.Schedule = &layout.Schedule{
		Caption: layout.Caption(epoch, wk),
		Rows:    layout.Build(days, req.Device),
	}
	return data, nil
}

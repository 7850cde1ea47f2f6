package datepicker

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-trip-itinerary/internal/api"
	"github.com/FACorreiaa/go-trip-itinerary/internal/tripdate"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GetCalendar(w http.ResponseWriter, r *http.Request)
	SelectDate(w http.ResponseWriter, r *http.Request)
	ClearSelection(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewHandlerImpl(logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{logger: logger, now: time.Now}
}

// SelectRequest carries the picker state plus the clicked day.
type SelectRequest struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Clicked string `json:"clicked"`
	MinDate string `json:"min,omitempty"`
}

func (h *HandlerImpl) minDate(raw string) (civil.Date, error) {
	if raw == "" {
		return tripdate.Today(h.now()), nil
	}
	return tripdate.Parse(raw)
}

// GetCalendar godoc
// @Summary      Calendar month grid
// @Description  Renders one month of the date-range picker with disabled, start, end and in-range flags.
// @Tags         Calendar
// @Produce      json
// @Param        year  query int    false "Year (defaults to the start date or today)"
// @Param        month query int    false "Month 1-12"
// @Param        start query string false "Selected start date YYYY-MM-DD"
// @Param        end   query string false "Selected end date YYYY-MM-DD"
// @Param        min   query string false "First selectable date, defaults to today"
// @Param        lang  query string false "zh-TW or en"
// @Success      200 {object} Grid
// @Failure      400 {object} types.Response
// @Router       /calendar [get]
func (h *HandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DatePickerHandler").Start(r.Context(), "GetCalendar")
	defer span.End()
	l := h.logger.With(slog.String("handler", "GetCalendar"))

	q := r.URL.Query()
	minDate, err := h.minDate(q.Get("min"))
	if err != nil {
		l.WarnContext(ctx, "Invalid min date", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid min date")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Query parameter 'min' must be YYYY-MM-DD")
		return
	}

	sel := Selection{Start: q.Get("start"), End: q.Get("end")}
	view := NewSelector(minDate, sel).View()
	if y := q.Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Query parameter 'year' must be a number")
			return
		}
		view.Year = year
	}
	if m := q.Get("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			api.ErrorResponse(w, r, http.StatusBadRequest, "Query parameter 'month' must be between 1 and 12")
			return
		}
		view.Month = time.Month(month)
	}

	span.SetAttributes(attribute.Int("calendar.year", view.Year), attribute.Int("calendar.month", int(view.Month)))
	grid := BuildGrid(view, sel, minDate).Localize(types.Language(q.Get("lang")))
	api.WriteJSONResponse(w, r, http.StatusOK, grid)
}

// SelectDate godoc
// @Summary      Click a day in the picker
// @Description  Applies the two-click range selection to the given state. Past days are ignored.
// @Tags         Calendar
// @Accept       json
// @Produce      json
// @Param        request body SelectRequest true "Current selection and clicked day"
// @Success      200 {object} Result
// @Failure      400 {object} types.Response
// @Router       /calendar/select [post]
func (h *HandlerImpl) SelectDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DatePickerHandler").Start(r.Context(), "SelectDate")
	defer span.End()
	l := h.logger.With(slog.String("handler", "SelectDate"))

	var req SelectRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	clicked, err := tripdate.Parse(req.Clicked)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Field 'clicked' must be YYYY-MM-DD")
		return
	}
	minDate, err := h.minDate(req.MinDate)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Field 'min' must be YYYY-MM-DD")
		return
	}

	res := Transition(Selection{Start: req.Start, End: req.End}, clicked, minDate)
	span.SetAttributes(attribute.String("picker.state", res.State.String()), attribute.Bool("picker.close", res.Close))
	l.DebugContext(ctx, "Date selected",
		slog.String("clicked", req.Clicked),
		slog.String("state", res.State.String()),
		slog.Bool("changed", res.Changed))
	api.WriteJSONResponse(w, r, http.StatusOK, res)
}

// ClearSelection godoc
// @Summary      Clear the picker
// @Tags         Calendar
// @Produce      json
// @Success      200 {object} Selection
// @Router       /calendar/clear [post]
func (h *HandlerImpl) ClearSelection(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, Selection{})
}

package datepicker

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/FACorreiaa/go-trip-itinerary/internal/tripdate"
)

// CloseDelay is how long a client should wait before dismissing the picker after a
// range completes, so the end date gets rendered first.
const CloseDelay = 200 * time.Millisecond

type State int

const (
	Empty State = iota
	StartOnly
	Complete
)

func (s State) String() string {
	switch s {
	case StartOnly:
		return "start_only"
	case Complete:
		return "complete"
	default:
		return "empty"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Selection is the picker's current range. Empty strings mean "not chosen yet".
type Selection struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// State classifies the selection. A start that does not parse counts as no start.
func (s Selection) State() State {
	if _, err := tripdate.Parse(s.Start); s.Start == "" || err != nil {
		return Empty
	}
	if s.End == "" {
		return StartOnly
	}
	return Complete
}

// Result is the outcome of one click.
type Result struct {
	Selection
	State        State         `json:"state"`
	Changed      bool          `json:"changed"`
	Close        bool          `json:"close"`
	CloseDelay   time.Duration `json:"-"`
	CloseDelayMs int64         `json:"closeDelayMs,omitempty"`
}

type transition func(sel Selection, clicked civil.Date) (Selection, bool)

func startFresh(_ Selection, clicked civil.Date) (Selection, bool) {
	return Selection{Start: tripdate.Format(clicked)}, false
}

func completeRange(sel Selection, clicked civil.Date) (Selection, bool) {
	start, _ := tripdate.Parse(sel.Start)
	if clicked.Before(start) {
		return Selection{Start: tripdate.Format(clicked)}, false
	}
	return Selection{Start: sel.Start, End: tripdate.Format(clicked)}, true
}

var transitions = map[State]transition{
	Empty:     startFresh,
	StartOnly: completeRange,
	Complete:  startFresh,
}

// Transition applies a click on clicked to sel. Dates before minDate are disabled
// and leave the selection untouched.
func Transition(sel Selection, clicked, minDate civil.Date) Result {
	if clicked.Before(minDate) {
		return Result{Selection: sel, State: sel.State()}
	}
	next, closePicker := transitions[sel.State()](sel, clicked)
	res := Result{
		Selection: next,
		State:     next.State(),
		Changed:   next != sel,
		Close:     closePicker,
	}
	if closePicker {
		res.CloseDelay = CloseDelay
		res.CloseDelayMs = CloseDelay.Milliseconds()
	}
	return res
}

// Selector keeps a selection and the displayed month for one picker instance.
// It is not safe for concurrent use.
type Selector struct {
	selection Selection
	minDate   civil.Date
	view      View
}

// NewSelector starts a picker. The view opens on the selection's start date when
// there is one, otherwise on minDate.
func NewSelector(minDate civil.Date, initial Selection) *Selector {
	view := ViewOf(minDate)
	if start, err := tripdate.Parse(initial.Start); initial.Start != "" && err == nil {
		view = ViewOf(start)
	}
	return &Selector{selection: initial, minDate: minDate, view: view}
}

func (s *Selector) Select(clicked civil.Date) Result {
	res := Transition(s.selection, clicked, s.minDate)
	s.selection = res.Selection
	return res
}

func (s *Selector) Clear() Selection {
	s.selection = Selection{}
	return s.selection
}

func (s *Selector) Selection() Selection { return s.selection }

func (s *Selector) View() View { return s.view }

func (s *Selector) ChangeMonth(offset int) View {
	s.view = s.view.ChangeMonth(offset)
	return s.view
}

func (s *Selector) ChangeYear(offset int) View {
	s.view = s.view.ChangeYear(offset)
	return s.view
}

// Grid renders the currently displayed month.
func (s *Selector) Grid() Grid {
	return BuildGrid(s.view, s.selection, s.minDate)
}

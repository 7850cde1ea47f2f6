package datepicker

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/FACorreiaa/go-trip-itinerary/internal/tripdate"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// View is the month shown by the picker. Navigating it never touches the selection.
type View struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func ViewOf(d civil.Date) View {
	return View{Year: d.Year, Month: d.Month}
}

func (v View) ChangeMonth(offset int) View {
	idx := v.Year*12 + int(v.Month) - 1 + offset
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return View{Year: year, Month: time.Month(month + 1)}
}

func (v View) ChangeYear(offset int) View {
	return View{Year: v.Year + offset, Month: v.Month}
}

// DaysIn returns the number of days in the viewed month.
func (v View) DaysIn() int {
	return civil.Date{Year: v.Year, Month: v.Month + 1, Day: 0}.In(time.UTC).Day()
}

// FirstWeekday is the weekday of the 1st, used to pad the grid (Sunday first).
func (v View) FirstWeekday() time.Weekday {
	return tripdate.Weekday(civil.Date{Year: v.Year, Month: v.Month, Day: 1})
}

var (
	monthNamesZh = [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"}
	monthNamesEn = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	weekdaysZh   = []string{"日", "一", "二", "三", "四", "五", "六"}
	weekdaysEn   = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
)

// Title is the header text for the viewed month.
func (v View) Title(lang types.Language) string {
	if lang.IsEnglish() {
		return fmt.Sprintf("%d %s", v.Year, monthNamesEn[v.Month-1])
	}
	return fmt.Sprintf("%d 年 %s", v.Year, monthNamesZh[v.Month-1])
}

func WeekdayHeaders(lang types.Language) []string {
	if lang.IsEnglish() {
		return weekdaysEn
	}
	return weekdaysZh
}

type Cell struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Disabled bool   `json:"disabled"`
	IsStart  bool   `json:"isStart"`
	IsEnd    bool   `json:"isEnd"`
	InRange  bool   `json:"inRange"`
	Weekend  bool   `json:"weekend"`
}

type Grid struct {
	View
	Title    string   `json:"title"`
	Weekdays []string `json:"weekdays"`
	Blanks   int      `json:"blanks"`
	Cells    []Cell   `json:"cells"`
}

// BuildGrid lays out one month. Days before minDate are disabled; the start and end
// cells are flagged and days strictly between them are in range.
func BuildGrid(v View, sel Selection, minDate civil.Date) Grid {
	var start, end civil.Date
	hasStart, hasEnd := false, false
	if d, err := tripdate.Parse(sel.Start); sel.Start != "" && err == nil {
		start, hasStart = d, true
	}
	if d, err := tripdate.Parse(sel.End); sel.End != "" && err == nil {
		end, hasEnd = d, true
	}

	n := v.DaysIn()
	cells := make([]Cell, 0, n)
	for day := 1; day <= n; day++ {
		d := civil.Date{Year: v.Year, Month: v.Month, Day: day}
		wd := tripdate.Weekday(d)
		cells = append(cells, Cell{
			Day:      day,
			Date:     tripdate.Format(d),
			Disabled: d.Before(minDate),
			IsStart:  hasStart && d == start,
			IsEnd:    hasEnd && d == end,
			InRange:  hasStart && hasEnd && d.After(start) && d.Before(end),
			Weekend:  wd == time.Saturday || wd == time.Sunday,
		})
	}
	return Grid{
		View:   v,
		Blanks: int(v.FirstWeekday()),
		Cells:  cells,
	}
}

// Localize fills in the header texts for lang.
func (g Grid) Localize(lang types.Language) Grid {
	g.Title = g.View.Title(lang)
	g.Weekdays = WeekdayHeaders(lang)
	return g
}

package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/raphi011/shakti/internal/ui/static"
	"github.com/raphi011/shakti/internal/ui/styles"
)

// DefaultWeeks is the heatmap width used when none is given.
const DefaultWeeks = 12

const cell = "■"

var weekdays = []string{"Mon", "", "Wed", "", "Fri", "", "Sun"}

// Level buckets seconds relative to peak into a heat level between 0
// (nothing logged) and len(styles.Heat)-1.
func Level(seconds, peak int) int {
	top := len(styles.Heat) - 1
	if seconds <= 0 || peak <= 0 {
		return 0
	}
	level := (seconds*top + peak - 1) / peak
	return max(1, min(level, top))
}

// Grid lays out seconds per day for the weeks ending with the week that
// contains end. Rows are weekdays starting on Monday, columns are weeks.
func Grid(l Log, end time.Time, weeks int) (grid [7][]int, start time.Time) {
	if weeks < 1 {
		weeks = 1
	}
	end = truncateDay(end)
	offset := (int(end.Weekday()) + 6) % 7 // days since Monday
	start = end.AddDate(0, 0, -offset-7*(weeks-1))

	for row := range grid {
		grid[row] = make([]int, weeks)
	}
	for week := 0; week < weeks; week++ {
		for row := 0; row < 7; row++ {
			day := start.AddDate(0, 0, week*7+row)
			grid[row][week] = l[day.Format(DateLayout)]
		}
	}
	return grid, start
}

// Heatmap renders a weekday by week activity chart ending at end.
func Heatmap(l Log, end time.Time, weeks int) string {
	grid, start := Grid(l, end, weeks)

	peak := 0
	for _, row := range grid {
		for _, secs := range row {
			peak = max(peak, secs)
		}
	}

	var b strings.Builder
	last := start.AddDate(0, 0, 7*len(grid[0])-1)
	b.WriteString(styles.HeadingStyle.Render(fmt.Sprintf("Work activity %s to %s",
		start.Format(DateLayout), last.Format(DateLayout))))
	b.WriteString("\n")

	for row, label := range weekdays {
		fmt.Fprintf(&b, "%-4s", label)
		for _, secs := range grid[row] {
			b.WriteString(styles.HeatStyle(Level(secs, peak)).Render(cell))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", 4))
	b.WriteString(styles.MutedStyle.Render("less "))
	for level := range styles.Heat {
		b.WriteString(styles.HeatStyle(level).Render(cell))
		b.WriteString(" ")
	}
	b.WriteString(styles.MutedStyle.Render("more"))
	b.WriteString("\n")
	return b.String()
}

// Summary renders the totals table.
func Summary(l Log) string {
	rows := [][]string{
		{"Days tracked", fmt.Sprintf("%d", len(l))},
		{"Total hours", fmt.Sprintf("%.2f", l.Total().Hours())},
	}
	if len(l) > 0 {
		rows = append(rows, []string{"Average per day", fmt.Sprintf("%.2f", l.Total().Hours()/float64(len(l)))})
	}
	if best, ok := l.Busiest(); ok {
		rows = append(rows, []string{"Busiest day", fmt.Sprintf("%s (%.2f h)", best.Date.Format(DateLayout), best.Hours())})
	}
	return static.RenderTable([]string{"METRIC", "VALUE"}, rows)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package sigfetch

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

// 256-color palette indexes.
const (
	UserColor = 212
	TextColor = 219
)

const (
	leaf  = "\x1b[38;5;112m"
	body  = "\x1b[38;5;196m"
	Reset = "\x1b[0m"
)

// Logo rows carry their own color escapes; the last one resets.
var Logo = [...]string{
	leaf + "   (    ((     ",
	leaf + " ((  (((  ((   ",
	body + " #%#" + leaf + "(" + body + "###" + leaf + "(" + body + "###   ",
	body + "##" + leaf + "((" + body + "##" + leaf + "(" + body + "##" + leaf + "(" + body + "#%#  ",
	body + "##%#####%####  ",
	body + " #########%#   ",
	body + "  ###%#####    ",
	body + "    ###%#      ",
	body + "      #        " + Reset,
}

// InfoLine is an optional line of text printed to the right of the logo.
type InfoLine struct {
	Text    string
	Present bool
}

var Absent = InfoLine{}

func Some(text string) InfoLine {
	return InfoLine{Text: text, Present: true}
}

func Colorize(text string, color int) string {
	return fmt.Sprintf("\x1b[38;5;%dm%s%s", color, text, Reset)
}

// Render writes one line per logo row. Present lines are packed in order
// and paired with the rows top-down; leftover rows are printed bare.
func Render(out io.Writer, lines []InfoLine) error {
	info := make([]InfoLine, 0, len(Logo))
	for _, line := range lines {
		if line.Present && len(info) < len(Logo) {
			info = append(info, line)
		}
	}
	for len(info) < len(Logo) {
		info = append(info, Absent)
	}

	w := bufio.NewWriter(out)
	for i, art := range Logo {
		if info[i].Present {
			fmt.Fprintf(w, "%s %s\n", art, info[i].Text) //nolint:errcheck
		} else {
			fmt.Fprintf(w, "%s\n", art) //nolint:errcheck
		}
	}

	return w.Flush()
}

func (m Mem) Format() string {
	return fmt.Sprintf("%dMiB / %dMiB ", m.Used()/1024, m.Total/1024)
}

func (u Uptime) Format() string {
	buf := new(bytes.Buffer)
	w := bufio.NewWriter(buf)
	sec := u.Length

	if sec < 60 {
		return formatFloor(sec) + " Seconds"
	}

	totalMinutes := sec / 60
	totalHours := totalMinutes / 60
	mins := math.Mod(totalMinutes, 60)

	if totalHours >= 1 {
		unit := "Hours"
		if totalHours < 2 {
			unit = "Hour"
		}
		fmt.Fprintf(w, "%s %s ", formatFloor(totalHours), unit) //nolint:errcheck
	}

	if mins >= 1 {
		unit := "Minutes"
		if mins < 2 {
			unit = "Minute"
		}
		fmt.Fprintf(w, "%s %s", formatFloor(mins), unit) //nolint:errcheck
	}

	w.Flush() //nolint:errcheck
	return buf.String()
}

func formatFloor(v float64) string {
	return strconv.FormatFloat(math.Floor(v), 'f', -1, 64)
}

package ux

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Out receives all terminal output. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// ContractNumber prints the preview line for a contract number. The line
// is left uncoloured so scripts can read it.
func ContractNumber(number string) {
	fmt.Fprintf(Out, "Contract Number: %s\n", number)
}

// RunHeader prints a timestamped header for a generation run.
func RunHeader(number, template string) {
	fmt.Fprintf(Out, "\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Fprintf(Out, "%s[%s]%s  %sContract %s%s — %s\n",
		Dim, timestamp(), Reset, Bold, number, Reset, template)
	fmt.Fprintf(Out, "%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// StepDone prints a completed step.
func StepDone(step, detail string) {
	fmt.Fprintf(Out, "%s[%s]%s  %s✓ %s%s %s\n",
		Dim, timestamp(), Reset, Green, step, Reset, detail)
}

// Saved prints a written output file.
func Saved(kind, path string) {
	fmt.Fprintf(Out, "%s[%s]%s  %s✓ saved %s%s %s\n",
		Dim, timestamp(), Reset, Green, kind, Reset, path)
}

// Skipped prints an output that was not produced.
func Skipped(reason string) {
	fmt.Fprintf(Out, "%s[%s]%s  %s– skipped: %s%s\n",
		Dim, timestamp(), Reset, Dim, reason, Reset)
}

// Warn prints a non-fatal problem.
func Warn(msg string) {
	fmt.Fprintf(Out, "%s[%s]%s  %s⚠ %s%s\n",
		Dim, timestamp(), Reset, Yellow, msg, Reset)
}

// Fail prints a failed run.
func Fail(msg string) {
	fmt.Fprintf(Out, "%s[%s]%s  %s✗ %s%s\n",
		Dim, timestamp(), Reset, Red, msg, Reset)
}

// TokenRow is one line of a placeholder table.
type TokenRow struct {
	Token    string
	Strategy string
	Value    string
}

// Tokens prints resolved placeholders as an aligned table.
func Tokens(rows []TokenRow) {
	if len(rows) == 0 {
		fmt.Fprintf(Out, "  %s(no placeholders)%s\n", Dim, Reset)
		return
	}
	width := 0
	for _, r := range rows {
		if n := len(r.Token) + 2; n > width {
			width = n
		}
	}
	for _, r := range rows {
		value := r.Value
		if value == "" {
			value = Dim + "(empty)" + Reset
		}
		fmt.Fprintf(Out, "  %s%-*s%s %s%-15s%s %s\n",
			Cyan, width, "["+r.Token+"]", Reset, Dim, r.Strategy, Reset, value)
	}
}

// Success prints a final success message.
func Success(outputs int, elapsed time.Duration) {
	m := int(elapsed.Minutes())
	s := int(elapsed.Seconds()) % 60
	fmt.Fprintf(Out, "\n%s[%s]%s  %s%s══ %d file(s) written (%dm %02ds) ══%s\n\n",
		Dim, timestamp(), Reset, Bold, Green, outputs, m, s, Reset)
}

package ux

import (
	"fmt"

	"github.com/jorge-barreto/contractgen/internal/manifest"
)

// RenderStatus prints the last recorded run for a contract.
func RenderStatus(m *manifest.Manifest, manifestPath string) {
	fmt.Fprintf(Out, "%sContract:%s %s\n", Bold, Reset, m.ContractNumber)
	switch m.Status {
	case manifest.StatusCompleted:
		fmt.Fprintf(Out, "%sState:%s    %s%scompleted%s\n", Bold, Reset, Green, Bold, Reset)
	case manifest.StatusFailed:
		fmt.Fprintf(Out, "%sState:%s    %s%sfailed%s — %s\n", Bold, Reset, Red, Bold, Reset, m.Error)
	default:
		fmt.Fprintf(Out, "%sState:%s    %s\n", Bold, Reset, m.Status)
	}
	fmt.Fprintf(Out, "%sRun:%s      %s %s(%s)%s\n", Bold, Reset, m.RunID, Dim, m.Started.Format("2006-01-02 15:04:05"), Reset)
	fmt.Fprintf(Out, "%sTemplate:%s %s\n", Bold, Reset, m.Template)

	if len(m.Steps) > 0 {
		fmt.Fprintf(Out, "\n%sSteps:%s\n", Bold, Reset)
		for i, s := range m.Steps {
			dur := ""
			if s.Duration != "" {
				dur = fmt.Sprintf("(%s)", s.Duration)
			}
			fmt.Fprintf(Out, "  %s%d%s  %-12s %s\n", Dim, i+1, Reset, s.Name, dur)
		}
	}

	if len(m.Tokens) > 0 {
		fmt.Fprintf(Out, "\n%sPlaceholders:%s\n", Bold, Reset)
		rows := make([]TokenRow, 0, len(m.Tokens))
		for _, t := range m.Tokens {
			rows = append(rows, TokenRow{Token: t.Token, Strategy: t.Strategy, Value: t.Value})
		}
		Tokens(rows)
	}

	fmt.Fprintf(Out, "\n%sOutputs:%s\n", Bold, Reset)
	if len(m.Outputs) == 0 {
		fmt.Fprintf(Out, "  %s(none)%s\n", Dim, Reset)
	}
	for _, o := range m.Outputs {
		fmt.Fprintf(Out, "  %s%-12s%s %s\n", Dim, o.Kind, Reset, o.Path)
	}
	for _, s := range m.Skipped {
		fmt.Fprintf(Out, "  %sskipped%s      %s\n", Dim, Reset, s)
	}
	fmt.Fprintf(Out, "\n%s%s%s\n\n", Dim, manifestPath, Reset)
}

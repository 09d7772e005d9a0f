package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clock/internal/clockface"
	"github.com/vovakirdan/tui-clock/internal/font"
)

var dialDescriptions = map[clockface.DialType]string{
	clockface.DialNumbers:       "Arabic numerals 1-12",
	clockface.DialRomanNumerals: "Roman numerals I-XII",
	clockface.DialCircleMarks:   "A dot at every hour",
	clockface.DialNone:          "No marks",
}

var dialsCmd = &cobra.Command{
	Use:   "dials",
	Short: "List dial types and built-in fonts",
	Long:  `Shows the values accepted by dial.type and dial.font in a style file.`,
	Args:  cobra.NoArgs,
	Run:   runDials,
}

func runDials(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Dial types (dial.type):")
	for _, d := range clockface.DialTypes {
		fmt.Fprintf(out, "  %-8s  %s\n", d, dialDescriptions[d])
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Built-in fonts (dial.font):")
	for _, name := range font.BuiltinNames() {
		fmt.Fprintf(out, "  %s\n", name)
	}
}

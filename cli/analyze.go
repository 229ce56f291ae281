package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"classical-cipher-backend/analysis"
	"classical-cipher-backend/report"
	"classical-cipher-backend/textio"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Recover the key of a Vigenère ciphertext",
		Long: `Estimate the key length with the Kasiski examination, falling back to the
Friedman test, then recover the key by frequency analysis and decrypt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphertext, err := readInput(cmd)
			if err != nil {
				return err
			}

			if chartPath, _ := cmd.Flags().GetString("chart"); chartPath != "" {
				var buf bytes.Buffer
				if err := report.RenderFrequencyChart(&buf, "Ciphertext letter frequencies", ciphertext); err != nil {
					return err
				}
				if err := textio.WriteText(chartPath, buf.String()); err != nil {
					return err
				}
			}

			result, err := analysis.Break(ciphertext)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				return writeOutput(cmd, string(data))
			}
			return writeOutput(cmd, formatResult(result))
		},
	}

	cmd.Flags().String("chart", "", "Write an HTML letter-frequency chart to this file")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	addInputFlags(cmd)
	return cmd
}

func formatResult(r *analysis.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Kasiski candidates: %v\n", r.Candidates)
	fmt.Fprintf(&b, "Index of coincidence: %.4f\n", r.IndexOfCoincidence)
	if r.FriedmanEstimate != nil {
		fmt.Fprintf(&b, "Friedman estimate: %d\n", *r.FriedmanEstimate)
	} else {
		b.WriteString("Friedman estimate: n/a\n")
	}
	fmt.Fprintf(&b, "Key length: %d (%s)\n", r.KeyLength, r.Method)
	fmt.Fprintf(&b, "Key: %s\n", r.Key)
	fmt.Fprintf(&b, "Plaintext:\n%s", r.Plaintext)
	return b.String()
}

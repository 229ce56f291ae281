// Package cli implements the cipherlab command line.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"classical-cipher-backend/config"
	"classical-cipher-backend/textio"
)

type app struct {
	configPath string
	cfg        config.Config
}

// NewRootCommand builds the cipherlab command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cipherlab",
		Short: "Classical cipher toolkit",
		Long: `Encrypt, decrypt and break classical ciphers.

Supported ciphers: vigenere, transposition, double_transposition, playfair
and cascade (Vigenère followed by Playfair).

EXAMPLES:
  cipherlab encrypt --cipher vigenere --key LEMON --text "attack at dawn"
  cipherlab decrypt --cipher double_transposition --key SECRET --key CRYPTO --in msg.txt
  cipherlab analyze --in cipher.txt --chart freq.html
  cipherlab serve`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: "+config.DefaultPath+" if present)")

	root.AddCommand(
		newServeCommand(a),
		newCipherCommand(a, true),
		newCipherCommand(a, false),
		newAnalyzeCommand(a),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "Input text")
	cmd.Flags().StringP("in", "i", "", "Input file")
	cmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
}

// readInput takes --text, then --in, then stdin.
func readInput(cmd *cobra.Command) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}
	if path, _ := cmd.Flags().GetString("in"); path != "" {
		return textio.ReadText(path)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return "", fmt.Errorf("no input text provided, use --text, --in, or pipe to stdin")
	}
	return text, nil
}

func writeOutput(cmd *cobra.Command, content string) error {
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		return textio.WriteText(path, content)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
	return err
}

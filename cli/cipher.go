package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"classical-cipher-backend/crypto"
)

func newCipherCommand(a *app, encode bool) *cobra.Command {
	use, short := "decrypt", "Decrypt text with a classical cipher"
	if encode {
		use, short = "encrypt", "Encrypt text with a classical cipher"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

Keys default to the configured ones. Double transposition takes the column
key then the row key; cascade takes the Vigenère key then the Playfair key.
The cascade only encrypts: Playfair drops letters the Vigenère stage needs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("cipher")
			keys, _ := cmd.Flags().GetStringArray("key")

			codec, err := a.buildCodec(name, keys)
			if err != nil {
				return err
			}
			text, err := readInput(cmd)
			if err != nil {
				return err
			}

			var result string
			if encode {
				result, err = codec.Encode(text)
			} else {
				result, err = codec.Decode(text)
			}
			if err != nil {
				return fmt.Errorf("%s failed: %w", use, err)
			}
			return writeOutput(cmd, result)
		},
	}

	cmd.Flags().StringP("cipher", "c", string(crypto.KindVigenere), "Cipher (vigenere, transposition, double_transposition, playfair, cascade)")
	cmd.Flags().StringArrayP("key", "k", nil, "Key, repeat for ciphers that take several")
	addInputFlags(cmd)
	return cmd
}

func (a *app) buildCodec(name string, keys []string) (crypto.Codec, error) {
	kind, err := crypto.ParseKind(name)
	if err != nil {
		return nil, err
	}
	if kind != crypto.KindChain {
		if len(keys) == 0 {
			keys = a.cfg.Keys.ForKind(kind)
		}
		return crypto.New(kind, keys...)
	}

	stageKeys := []string{a.cfg.Keys.CascadeVigenere, a.cfg.Keys.CascadePlayfair}
	if len(keys) > len(stageKeys) {
		return nil, fmt.Errorf("cascade takes at most %d keys, got %d", len(stageKeys), len(keys))
	}
	copy(stageKeys, keys)

	vigenere, err := crypto.NewVigenere(stageKeys[0])
	if err != nil {
		return nil, fmt.Errorf("cascade vigenere key: %w", err)
	}
	playfair, err := crypto.NewPlayfair(stageKeys[1])
	if err != nil {
		return nil, fmt.Errorf("cascade playfair key: %w", err)
	}
	return crypto.NewChain(vigenere, playfair)
}

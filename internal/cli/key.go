package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/tabquery/internal/querykey"
)

// KeyResult describes one key in every form it can be rendered in.
type KeyResult struct {
	Kind    string   `json:"kind"`
	Encoded string   `json:"encoded"`
	Parts   []string `json:"parts"`
	Display string   `json:"display"`
	SQL     string   `json:"sql"`
}

func (r KeyResult) writeText(w io.Writer) error {
	fmt.Fprintf(w, "%s\n", r.Kind)
	fmt.Fprintf(w, "  encoded: %s\n", r.Encoded)
	for i, p := range r.Parts {
		fmt.Fprintf(w, "  part %d:  %s\n", i, p)
	}
	fmt.Fprintf(w, "  display: %s\n", r.Display)
	fmt.Fprintf(w, "  sql:     %s\n", r.SQL)
	return nil
}

func keyResult(k querykey.QueryKey, kind string) KeyResult {
	return KeyResult{
		Kind:    kind,
		Encoded: k.String(),
		Parts:   k.Parts(),
		Display: k.DisplayString(),
		SQL:     k.SQLString(),
	}
}

// NewKeyCommand creates the key command and its parse/build subcommands.
func NewKeyCommand(rootOpts *RootOptions) *cobra.Command {
	var schema bool

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Encode and decode field and schema keys",
	}
	cmd.PersistentFlags().BoolVar(&schema, "schema", false, "treat the key as a schema key (\".\" divider)")

	parse := &cobra.Command{
		Use:           "parse <encoded>",
		Short:         "Decode an encoded key into its parts",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			var r KeyResult
			if schema {
				r = keyResult(querykey.SchemaKeyFromString(args[0]), "SchemaKey")
			} else {
				r = keyResult(querykey.FieldKeyFromString(args[0]), "FieldKey")
			}
			return f.Success(r, r.writeText)
		},
	}

	build := &cobra.Command{
		Use:   "build <part>...",
		Short: "Build a key from unencoded parts",
		Long: `Build a key from unencoded parts, root first.

Empty parts are skipped; at least one non-empty part is required.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			r, err := buildKey(schema, args)
			if err != nil {
				return f.Fail(err)
			}
			return f.Success(r, r.writeText)
		},
	}

	cmd.AddCommand(parse, build)
	return cmd
}

// buildKey builds a key from parts. Each part is a separate argument so
// empty ones are skipped. All-empty input is an argument error.
func buildKey(schema bool, parts []string) (KeyResult, error) {
	args := make([]any, len(parts))
	for i, p := range parts {
		args[i] = p
	}
	if schema {
		k, err := querykey.SchemaKeyFromParts(args...)
		if err != nil || k == nil {
			return KeyResult{}, noParts(err)
		}
		return keyResult(k, "SchemaKey"), nil
	}
	k, err := querykey.FieldKeyFromParts(args...)
	if err != nil || k == nil {
		return KeyResult{}, noParts(err)
	}
	return keyResult(k, "FieldKey"), nil
}

func noParts(err error) error {
	if err != nil {
		return err
	}
	return NewExitError(ExitCommandError, "no non-empty parts given")
}

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/tabquery/internal/filtertype"
)

// FilterTypeInfo is the listing entry for one operator.
type FilterTypeInfo struct {
	Name          string `json:"name"`
	URLSuffix     string `json:"url_suffix"`
	DisplayText   string `json:"display_text"`
	DisplaySymbol string `json:"display_symbol,omitempty"`
	ValueRequired bool   `json:"value_required"`
	Separator     string `json:"separator,omitempty"`
	Opposite      string `json:"opposite,omitempty"`
	Default       bool   `json:"default,omitempty"`
}

func filterTypeInfo(ft filtertype.FilterType) FilterTypeInfo {
	info := FilterTypeInfo{
		Name:          ft.Name(),
		URLSuffix:     ft.URLSuffix(),
		DisplayText:   ft.DisplayText(),
		DisplaySymbol: ft.DisplaySymbol(),
		ValueRequired: ft.IsDataValueRequired(),
		Separator:     ft.MultiValueSeparator(),
	}
	if opp := ft.Opposite(); opp != nil {
		info.Opposite = opp.URLSuffix()
	}
	return info
}

// NewFiltersCommand creates the filters command.
func NewFiltersCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		jsonType  string
		mvEnabled bool
	)

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List filter operators",
		Long: `List filter operators and their URL suffixes.

With --type, only operators applicable to that JSON column type are listed
and the default operator for the type is marked.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			infos, err := listFilterTypes(jsonType, mvEnabled)
			if err != nil {
				return f.Fail(err)
			}
			return f.Success(infos, func(w io.Writer) error {
				return writeFilterTable(w, infos)
			})
		},
	}

	cmd.Flags().StringVarP(&jsonType, "type", "t", "", "JSON column type (int, float, string, boolean, date)")
	cmd.Flags().BoolVar(&mvEnabled, "mv", false, "include missing-value operators")

	return cmd
}

func listFilterTypes(jsonType string, mvEnabled bool) ([]FilterTypeInfo, error) {
	if jsonType == "" {
		all := filtertype.All()
		infos := make([]FilterTypeInfo, len(all))
		for i, ft := range all {
			infos[i] = filterTypeInfo(ft)
		}
		return infos, nil
	}

	types := filtertype.ForJSONType(jsonType, mvEnabled)
	if types == nil {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown JSON type %q", jsonType))
	}
	def := filtertype.DefaultForJSONType(jsonType)
	infos := make([]FilterTypeInfo, len(types))
	for i, ft := range types {
		infos[i] = filterTypeInfo(ft)
		infos[i].Default = ft == def
	}
	return infos, nil
}

func writeFilterTable(w io.Writer, infos []FilterTypeInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSUFFIX\tTEXT\tVALUE\tOPPOSITE")
	for _, info := range infos {
		name := info.Name
		if info.Default {
			name += " *"
		}
		value := "-"
		if info.ValueRequired {
			value = "yes"
			if info.Separator != "" {
				value = "list(" + info.Separator + ")"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name, dash(info.URLSuffix), info.DisplayText, value, dash(info.Opposite))
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

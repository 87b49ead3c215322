// Package registry has commands for inspecting the field registry and the supported languages.
package registry

import (
	"encoding/json"
	"fmt"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/locale"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

var Group = &cobra.Group{
	ID:    "registry",
	Title: "Field registry",
}

func init() {
	Fields.Flags().String("locale", locale.English, "locale of the labels and questions")
	Fields.Flags().Bool("json", false, "print the fields as JSON")
}

// LoadRegistry reads the registry with the overrides given in the --fields flag.
func LoadRegistry(cmd *cobra.Command) (*fields.Registry, error) {
	path, err := cmd.Flags().GetString("fields")
	if err != nil {
		return nil, errors.Wrap(err, "fields flag")
	}
	registry, err := fields.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "load field registry")
	}
	return registry, nil
}

type fieldRow struct {
	Key      fields.Key `json:"key"`
	Label    string     `json:"label"`
	Question string     `json:"question"`
	Pattern  string     `json:"pattern"`
	FreeText bool       `json:"freeText"`
}

var Fields = &cobra.Command{
	Use:     "fields",
	GroupID: "registry",
	Short:   "List fields",
	Long:    "Lists the FIR fields in the order the guided session asks for them",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := LoadRegistry(cmd)
		if err != nil {
			return err
		}
		loc, err := cmd.Flags().GetString("locale")
		if err != nil {
			return errors.Wrap(err, "locale flag")
		}
		if !locale.Supported(loc) {
			return errors.New(fmt.Sprintf("unsupported locale %q", loc))
		}
		rows := make([]fieldRow, 0, registry.Len())
		for _, def := range registry.Definitions() {
			rows = append(rows, fieldRow{
				Key:      def.Key,
				Label:    registry.Label(def.Key, loc),
				Question: registry.Question(def.Key, loc),
				Pattern:  def.Pattern.String(),
				FreeText: def.FreeText,
			})
		}

		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return errors.Wrap(err, "json flag")
		}
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return errors.Wrap(enc.Encode(rows), "encode fields")
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // two spaces between columns
		_, _ = fmt.Fprintln(w, "KEY\tLABEL\tQUESTION")
		for _, row := range rows {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", row.Key, row.Label, row.Question)
		}
		return errors.Wrap(w.Flush(), "flush fields")
	},
}

var Languages = &cobra.Command{
	Use:     "languages",
	GroupID: "registry",
	Short:   "List languages",
	Long:    "Lists the languages a report can be drafted in",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // two spaces between columns
		_, _ = fmt.Fprintln(w, "CODE\tNAME\tNATIVE\tSPEECH")
		for _, l := range locale.Languages() {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Code, l.Name, l.NativeName, l.SpeechTag)
		}
		return errors.Wrap(w.Flush(), "flush languages")
	},
}

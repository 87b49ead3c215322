package pipeline

import (
	"encoding/json"
	"fmt"
	"github.com/myrjola/smartcop/cmd/cli/registry"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/extract"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/spf13/cobra"
	"strings"
)

func init() {
	Extract.Flags().String("key", "", "extract only this field, as the guided session does")
}

var Extract = &cobra.Command{
	Use:     "extract [text]",
	GroupID: "pipeline",
	Short:   "Extract fields",
	Long:    `Extracts field values from an utterance without calling any provider`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.LoadRegistry(cmd)
		if err != nil {
			return err
		}
		engine := extract.New(reg)
		text := strings.Join(args, " ")

		key, err := cmd.Flags().GetString("key")
		if err != nil {
			return errors.Wrap(err, "key flag")
		}
		if key != "" {
			var value string
			if value, err = engine.ExtractField(text, fields.Key(key)); err != nil {
				return errors.Wrap(err, "extract field")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return errors.Wrap(err, "print value")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(engine.ExtractAll(text)), "encode extraction")
	},
}

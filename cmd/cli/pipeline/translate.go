package pipeline

import (
	"context"
	"encoding/json"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/locale"
	"github.com/spf13/cobra"
	"strings"
)

func init() {
	Translate.Flags().String("from", "hi", "source locale")
	Translate.Flags().String("to", locale.English, "target locale")
}

var Translate = &cobra.Command{
	Use:     "translate [text]",
	GroupID: "pipeline",
	Short:   "Translate text",
	Long: `Translates text through the provider relay. The output names the provider that answered and whether the
relay degraded to the original text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProviders(cmd)
		if err != nil {
			return err
		}
		defer p.close()
		var from, to string
		if from, err = cmd.Flags().GetString("from"); err != nil {
			return errors.Wrap(err, "from flag")
		}
		if to, err = cmd.Flags().GetString("to"); err != nil {
			return errors.Wrap(err, "to flag")
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		translation := p.relay().Translate(ctx, strings.Join(args, " "), from, to)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(translation), "encode translation")
	},
}

package pipeline

import (
	"context"
	"fmt"
	"github.com/myrjola/smartcop/cmd/cli/registry"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/locale"
	"github.com/spf13/cobra"
	"os"
)

func init() {
	Speak.Flags().String("locale", "hi", "locale of the question")
	Speak.Flags().String("out", "./question.mp3", "path to the synthesized audio file")
}

var Speak = &cobra.Command{
	Use:     "speak [field]",
	GroupID: "pipeline",
	Short:   "Synthesize question",
	Long:    `Synthesizes the question of a field with the configured speech providers`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.LoadRegistry(cmd)
		if err != nil {
			return err
		}
		key := fields.Key(args[0])
		if _, err = reg.Lookup(key); err != nil {
			return errors.Wrap(err, "lookup field")
		}
		loc, err := cmd.Flags().GetString("locale")
		if err != nil {
			return errors.Wrap(err, "locale flag")
		}
		if !locale.Supported(loc) {
			return errors.New(fmt.Sprintf("unsupported locale %q", loc))
		}
		outPath, err := cmd.Flags().GetString("out")
		if err != nil {
			return errors.Wrap(err, "out flag")
		}
		p, err := newProviders(cmd)
		if err != nil {
			return err
		}
		defer p.close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		question := reg.Question(key, loc)
		audio, err := p.synthesizer().Synthesize(ctx, question, loc)
		if err != nil {
			return errors.Wrap(err, "synthesize question")
		}
		if audio.Fallback {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "no speech provider answered, speak %q with a %s voice\n",
				audio.Text, audio.Lang)
			return errors.Wrap(err, "print fallback")
		}
		if err = os.WriteFile(outPath, audio.Data, 0o600); err != nil { //nolint:mnd // owner only
			return errors.Wrap(err, "write audio")
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s audio from %s to %s\n", audio.ContentType, audio.Provider,
			outPath)
		return errors.Wrap(err, "print result")
	},
}

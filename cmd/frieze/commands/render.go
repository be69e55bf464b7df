package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frieze/config"
)

func newRenderCommand() *cobra.Command {
	var (
		configPath string
		name       string
		asMatrix   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build and print the friezes listed in a YAML file",
		Example: `  frieze render --config friezes.yaml
  frieze render -c friezes.yaml --name pentagon`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.Load(configPath)
			if err != nil {
				return err
			}
			entries := file.Friezes
			if name != "" {
				e, ok := file.Lookup(name)
				if !ok {
					return fmt.Errorf("no frieze named %q in %s", name, configPath)
				}
				entries = []config.Entry{e}
			}

			log.Debug().Str("config", configPath).Int("friezes", len(entries)).Msg("Rendering friezes")

			out := cmd.OutOrStdout()
			for i, e := range entries {
				f, err := file.Build(e, log.Logger)
				if err != nil {
					return err
				}
				if i > 0 {
					if _, err = fmt.Fprintln(out); err != nil {
						return err
					}
				}
				if _, err = fmt.Fprintf(out, "# %s (%s)\n", e.Name, f.Kind); err != nil {
					return err
				}
				if err = printFrieze(out, f, asMatrix); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file listing the friezes")
	cmd.Flags().StringVarP(&name, "name", "n", "", "render only the named frieze")
	cmd.Flags().BoolVar(&asMatrix, "matrix", false, "print each lattice as a matrix")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

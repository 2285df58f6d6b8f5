package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/pnaconstructions/pnasite/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the pnasite config file with an interactive wizard",
	Long: `Asks for the HTTP port, the image directory, the EmailJS ids and the
slideshow behaviour, then writes them to the file named by --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("%s already exists. Overwrite", cfgFile),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) {
					fmt.Fprintln(os.Stderr, "Keeping the existing config.")
					return nil
				}
				return err
			}
		}

		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Next: run `pnasite serve` and open http://localhost:%d\n", cfg.Server.Port)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config without asking")
	rootCmd.AddCommand(initCmd)
}

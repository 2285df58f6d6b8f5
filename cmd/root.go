package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pnasite",
	Short: "Website server for PNA Constructions",
	Long: `pnasite serves the PNA Constructions website: the home, about and
projects pages, the contact form relayed to EmailJS, and the live page
session that drives the slideshows and scroll animations. It can also
export the site as static files.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".pnasite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pnaconstructions/pnasite/internal/progress"
	"github.com/pnaconstructions/pnasite/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the website as static files",
	Long: `Writes every page, the stylesheet, the script and the image assets to a
directory that any static host can serve. Exported pages run the slideshows
and scroll animations in the browser and send the contact form straight to
EmailJS.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to export.output_dir)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	generator := &site.Generator{
		Renderer:  renderer.WithRelay(cfg.Mail.Endpoint, cfg.Mail.Credentials()),
		AssetsDir: cfg.Server.AssetsDir,
		OutputDir: outputDir,
		Include:   cfg.Export.Include,
		Exclude:   cfg.Export.Exclude,
		Reporter:  progress.NewReporter(os.Stderr),
	}
	res, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages, %d assets)\n", outputDir, res.Pages, res.Assets)
	return nil
}

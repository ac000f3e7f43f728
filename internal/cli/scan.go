package cli

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/lutece-go/lutece-sql/core/catalog"
	"github.com/lutece-go/lutece-sql/core/version"
	"github.com/lutece-go/lutece-sql/internal/filesystem"
	"github.com/lutece-go/lutece-sql/internal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func SetupScanCommand() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "List the migration scripts of the source directory",
		Long: `Scan walks the source directory and lists its migration scripts grouped by plugin: creation scripts
first, then upgrade scripts ordered by version. Upgrade scripts going backward or covering the same versions
twice are reported as errors.

With --from and/or --to, only the upgrade scripts applying between those versions are listed.`,
		RunE: runScanCommand,
	}

	scanCmd.Flags().SortFlags = false
	scanCmd.Flags().String("plugin", "", "Only list the scripts of this plugin (e.g., forms, forms-template, core).")
	scanCmd.Flags().String("from", "", "Installed version; lists upgrade scripts starting at or after it.")
	scanCmd.Flags().String("to", "", "Target version; lists upgrade scripts leading at most to it.")

	return scanCmd
}

func runScanCommand(cmd *cobra.Command, args []string) error {
	logger, err := logger.NewLogger()
	if err != nil {
		log.Fatal(err)
		return err
	}

	projectConfig, err := loadProjectConfig(cmd, logger)
	if err != nil {
		return err
	}

	plugin, err := cmd.Flags().GetString("plugin")
	if err != nil {
		return err
	}

	from, to, err := extractVersionRange(cmd)
	if err != nil {
		logError(logger, ErrParseVersion, err)
		return genError(ErrParseVersion, err)
	}

	c, err := filesystem.LoadCatalog(logger, projectConfig.Source)
	if err != nil {
		logError(logger, ErrLoadCatalog, err)
		return genError(ErrLoadCatalog, err)
	}

	if c.Len() < 1 {
		logger.Warn("No migration scripts found", zap.String("source", projectConfig.Source))
		return nil
	}

	errs := c.Validate()
	if len(errs) > 0 {
		logErrors(logger, ErrValidation, errs)
		return errors.Join(errs...)
	}

	plugins := c.Plugins()
	if plugin != "" {
		plugins = []string{plugin}
	}

	out := cmd.OutOrStdout()
	for _, name := range plugins {
		if from != nil || to != nil {
			printScripts(out, name, c.LatestVersion(name), c.UpgradeScripts(name, from, to))
			continue
		}
		printScripts(out, name, c.LatestVersion(name), c.Scripts(name))
	}

	logger.Info("Scan done", zap.Int("scripts", c.Len()), zap.Int("plugins", len(c.Plugins())))

	return nil
}

func extractVersionRange(cmd *cobra.Command) (*version.Version, *version.Version, error) {
	from, err := extractVersion(cmd, "from")
	if err != nil {
		return nil, nil, err
	}

	to, err := extractVersion(cmd, "to")
	if err != nil {
		return nil, nil, err
	}

	return from, to, nil
}

func extractVersion(cmd *cobra.Command, name string) (*version.Version, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	text, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}

	return version.Parse(text)
}

func printScripts(out io.Writer, plugin string, latest *version.Version, scripts []*catalog.Script) {
	if latest != nil {
		fmt.Fprintf(out, "%s (latest %s)\n", plugin, latest)
	} else {
		fmt.Fprintln(out, plugin)
	}

	for _, script := range scripts {
		fmt.Fprintf(out, "\t%s\n", formatPathInfo(script.Path, script.Info))
	}
}

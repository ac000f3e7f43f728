package cli

import (
	"io"
	"log"
	"os"

	"github.com/lutece-go/lutece-sql/core/enums"
	"github.com/lutece-go/lutece-sql/core/sqlfilter"
	"github.com/lutece-go/lutece-sql/internal/cli/flags"
	"github.com/lutece-go/lutece-sql/internal/filesystem"
	"github.com/lutece-go/lutece-sql/internal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func SetupFilterCommand() *cobra.Command {
	filterCmd := &cobra.Command{
		Use:   "filter <file>...",
		Short: "Rewrite SQL files for a database vendor",
		Long: `Filter applies, line by line and in declaration order, the regexp.<vendor>.* rules of the regexp
file to the given SQL files and writes the result to the standard output or to --output.

The vendor is taken from --vendor, then from the configuration file, then from the portal.url of
db.properties, and defaults to mysql.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFilterCommand,
	}

	filterCmd.Flags().SortFlags = false
	flags.SetupFilterConfigFlags(filterCmd)
	filterCmd.Flags().StringP("output", "o", "", "Output file. Standard output when empty.")

	return filterCmd
}

func runFilterCommand(cmd *cobra.Command, args []string) error {
	logger, err := logger.NewLogger()
	if err != nil {
		log.Fatal(err)
		return err
	}

	projectConfig, err := loadProjectConfig(cmd, logger)
	if err != nil {
		return err
	}

	vendor, err := resolveVendor(logger, &projectConfig.Filter)
	if err != nil {
		logError(logger, ErrFindVendor, err)
		return genError(ErrFindVendor, err)
	}

	filter, err := sqlfilter.LoadFile(projectConfig.Filter.RegexpFile, vendor)
	if err != nil {
		logError(logger, ErrLoadFilter, err)
		return genError(ErrLoadFilter, err)
	}

	logger.Info("Loaded SQL filter", zap.String("vendor", filter.Vendor()), zap.Int("rules", len(filter.Rules())))
	if _, ok := enums.MapStringToVendorType[filter.Vendor()]; !ok {
		logger.Warn("Unknown vendor", zap.String("vendor", filter.Vendor()))
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if output == "" {
		return filterFiles(logger, filter, args, cmd.OutOrStdout())
	}

	file, err := os.Create(output)
	if err != nil {
		logError(logger, ErrOpenOutput, err)
		return genError(ErrOpenOutput, err)
	}

	err = filterFiles(logger, filter, args, file)
	closeErr := closeOutput(logger, file)
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	logger.Info("Filtered SQL written", zap.String("output", output))

	return nil
}

func filterFiles(logger *zap.Logger, filter *sqlfilter.Filter, paths []string, out io.Writer) error {
	for _, path := range paths {
		err := filesystem.FilterFile(filter, path, out)
		if err != nil {
			logError(logger, ErrFilterFile, err)
			return genError(ErrFilterFile, err)
		}
	}

	return nil
}

// closeOutput closes the output file, reporting a failure as ErrOpenOutput.
func closeOutput(logger *zap.Logger, output io.Closer) error {
	err := output.Close()
	if err != nil {
		logError(logger, ErrOpenOutput, err)
		return genError(ErrOpenOutput, err)
	}
	return nil
}

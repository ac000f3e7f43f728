package cli

import (
	"fmt"
	"log"

	"github.com/lutece-go/lutece-sql/core/enums"
	"github.com/lutece-go/lutece-sql/core/sqlfilter"
	"github.com/lutece-go/lutece-sql/internal/cli/flags"
	"github.com/lutece-go/lutece-sql/internal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func SetupVendorCommand() *cobra.Command {
	vendorCmd := &cobra.Command{
		Use:   "vendor [jdbc-url]",
		Short: "Print the database vendor",
		Long: `Vendor prints the database vendor of a JDBC URL such as jdbc:mysql://localhost/lutece.
Without argument, it prints the vendor the filter command would use.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVendorCommand,
	}

	vendorCmd.Flags().SortFlags = false
	flags.SetupFilterConfigFlags(vendorCmd)

	return vendorCmd
}

func runVendorCommand(cmd *cobra.Command, args []string) error {
	logger, err := logger.NewLogger()
	if err != nil {
		log.Fatal(err)
		return err
	}

	vendor := ""
	if len(args) == 1 {
		vendor, err = sqlfilter.FindVendor(args[0])
		if err != nil {
			logError(logger, ErrFindVendor, err)
			return genError(ErrFindVendor, err)
		}
	} else {
		projectConfig, err := loadProjectConfig(cmd, logger)
		if err != nil {
			return err
		}

		vendor, err = resolveVendor(logger, &projectConfig.Filter)
		if err != nil {
			logError(logger, ErrFindVendor, err)
			return genError(ErrFindVendor, err)
		}
	}

	if vendor == "" {
		vendor = sqlfilter.DEFAULT_VENDOR
	}

	if _, ok := enums.MapStringToVendorType[vendor]; !ok {
		logger.Warn("Unknown vendor, build.properties may have no rules for it", zap.String("vendor", vendor))
	}

	fmt.Fprintln(cmd.OutOrStdout(), vendor)
	return nil
}

package cli

import (
	"fmt"
	"log"

	"github.com/lutece-go/lutece-sql/core/pathinfo"
	"github.com/lutece-go/lutece-sql/internal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func SetupClassifyCommand() *cobra.Command {
	classifyCmd := &cobra.Command{
		Use:   "classify <path>...",
		Short: "Tell what SQL script paths are",
		Long: `Classify prints, for every given path relative to the source directory (e.g.
sql/plugins/forms/upgrade/update_db_forms-1.0.0-1.1.0.sql), whether it is a creation or an upgrade script,
the plugin it belongs to and, for upgrades, the versions it goes from and to.
Paths that are not migration scripts are reported with a dash.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassifyCommand,
	}

	return classifyCmd
}

func runClassifyCommand(cmd *cobra.Command, args []string) error {
	logger, err := logger.NewLogger()
	if err != nil {
		log.Fatal(err)
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range args {
		info := pathinfo.Classify(path)
		if info == nil {
			logger.Warn("Not a migration script", zap.String("path", path))
			fmt.Fprintf(out, "%s\t-\n", path)
			continue
		}

		fmt.Fprintln(out, formatPathInfo(path, info))
	}

	return nil
}

func formatPathInfo(path string, info *pathinfo.PathInfo) string {
	if info.IsCreate() {
		return fmt.Sprintf("%s\t%s\t%s", path, info.Type().Name(), info.FullName())
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s", path, info.Type().Name(), info.FullName(), info.SrcVersion(),
		info.DstVersion())
}

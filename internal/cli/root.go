package cli

import (
	"fmt"

	"github.com/lutece-go/lutece-sql/internal/cli/flags"
	"github.com/lutece-go/lutece-sql/internal/conf"
	"github.com/spf13/cobra"
)

func SetupRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lutece-sql",
		Short: "lutece-sql classifies and normalizes the SQL scripts of Lutece plugins.",
		Long: `lutece-sql knows the layout of the SQL scripts shipped with the Lutece core and its plugins.
It tells creation scripts from upgrade scripts, which plugin or module they belong to and which versions
an upgrade goes from and to. It also rewrites SQL for a database vendor using the regexp rules of
build.properties.`,
		RunE: runRootCommand,
	}

	rootCmd.Flags().BoolP("version", "V", false, "Display the current version.")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().SortFlags = false
	rootCmd.SilenceUsage = true

	flags.SetupGlobalFlags(rootCmd)

	initCmd := SetupInitCommand()
	classifyCmd := SetupClassifyCommand()
	scanCmd := SetupScanCommand()
	filterCmd := SetupFilterCommand()
	vendorCmd := SetupVendorCommand()

	rootCmd.AddCommand(initCmd, classifyCmd, scanCmd, filterCmd, vendorCmd)

	return rootCmd
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	showVersion, err := cmd.Flags().GetBool("version")
	if err != nil {
		return err
	}

	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), conf.VERSION)
		return nil
	}

	cmd.Help()
	return nil
}

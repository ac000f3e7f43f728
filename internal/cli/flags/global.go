package flags

import (
	"github.com/lutece-go/lutece-sql/core/conf"
	internalConf "github.com/lutece-go/lutece-sql/internal/conf"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	Location string
	Source   string
}

func SetupGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("location", "l", ".", "Project directory.")
	cmd.PersistentFlags().StringP("source", "s", internalConf.DEFAULT_SOURCE_DIR, "Source directory holding sql/.")
}

func ExtractGlobalFlags(cmd *cobra.Command) (*globalFlags, error) {
	flags := &globalFlags{}
	err := (error)(nil)

	flags.Location, err = cmd.Flags().GetString("location")
	if err != nil {
		return nil, err
	}

	flags.Source, err = cmd.Flags().GetString("source")
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func MergeSource(cmd *cobra.Command, config *conf.ProjectConfig) error {
	err := (error)(nil)

	if cmd.Flags().Changed("source") {
		config.Source, err = cmd.Flags().GetString("source")
		if err != nil {
			return err
		}
	}

	return nil
}

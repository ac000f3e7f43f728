package flags

import (
	"github.com/lutece-go/lutece-sql/core/conf"
	"github.com/spf13/cobra"
)

func SetupFilterConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("regexp-file", "build.properties", "Properties file holding the regexp.<vendor>.* rules.")
	cmd.Flags().String("db-properties", "webapp/WEB-INF/conf/db.properties", "db.properties used to guess the vendor.")
	cmd.Flags().String("vendor", "", "Database vendor (e.g., mysql, postgresql). Guessed from db.properties when empty.")
}

// HasFilterConfigFlags reports whether cmd was set up with SetupFilterConfigFlags.
func HasFilterConfigFlags(cmd *cobra.Command) bool {
	return cmd.Flags().Lookup("regexp-file") != nil
}

func ExtractFilterConfigFlags(cmd *cobra.Command, config *conf.FilterConfig) error {
	var err error

	config.RegexpFile, err = cmd.Flags().GetString("regexp-file")
	if err != nil {
		return err
	}

	config.DBProperties, err = cmd.Flags().GetString("db-properties")
	if err != nil {
		return err
	}

	config.Vendor, err = cmd.Flags().GetString("vendor")
	if err != nil {
		return err
	}

	return nil
}

func MergeFilterConfigFlags(cmd *cobra.Command, config *conf.FilterConfig) error {
	var err error

	if cmd.Flags().Changed("regexp-file") {
		config.RegexpFile, err = cmd.Flags().GetString("regexp-file")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("db-properties") {
		config.DBProperties, err = cmd.Flags().GetString("db-properties")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("vendor") {
		config.Vendor, err = cmd.Flags().GetString("vendor")
		if err != nil {
			return err
		}
	}

	return nil
}

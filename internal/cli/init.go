package cli

import (
	"log"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"

	"github.com/lutece-go/lutece-sql/core/conf"
	"github.com/lutece-go/lutece-sql/internal/cli/flags"
	internalConf "github.com/lutece-go/lutece-sql/internal/conf"
	"github.com/lutece-go/lutece-sql/internal/filesystem"
	"github.com/lutece-go/lutece-sql/internal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func SetupInitCommand() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a lutece-sql project",
		Long: `Initialize a lutece-sql project by writing the configuration file (lutece-sql.yaml) in the specified
location, filled with the default values, and by creating the sql/ directory of the source directory.

If the configuration file already exists, the command warns and exits without making changes.`,
		RunE: runInitCommand,
	}

	return initCmd
}

func runInitCommand(cmd *cobra.Command, args []string) error {
	logger, err := logger.NewLogger()
	if err != nil {
		log.Fatal(err)
		return err
	}

	globalFlags, err := flags.ExtractGlobalFlags(cmd)
	if err != nil {
		logError(logger, ErrExtractGlobalFlags, err)
		return genError(ErrExtractGlobalFlags, err)
	}

	configFilePath := filepath.Join(globalFlags.Location, internalConf.DEFAULT_PROJECT_FILE)

	exists, err := filesystem.CheckFSObject(configFilePath)
	if err != nil {
		logError(logger, ErrCheckFile, err)
		return genError(ErrCheckFile, err)
	}

	if exists {
		logger.Warn("project already initialized", zap.String("location", configFilePath))
		return nil
	}

	err = insertConfigFile(configFilePath, globalFlags.Source)
	if err != nil {
		logError(logger, ErrWriteConfig, err)
		return genError(ErrWriteConfig, err)
	}

	sqlDir := filepath.Join(resolvePath(globalFlags.Location, globalFlags.Source), "sql")
	err = os.MkdirAll(sqlDir, os.ModePerm)
	if err != nil {
		logError(logger, ErrWriteConfig, err)
		os.RemoveAll(configFilePath) // Rollback
		return genError(ErrWriteConfig, err)
	}

	logger.Info("lutece-sql project successfully initialized", zap.String("configuration file", configFilePath),
		zap.String("sql directory", sqlDir))

	return nil
}

func insertConfigFile(configFilePath string, source string) error {
	// Default config
	config := conf.ProjectConfig{}
	err := defaults.Set(&config)
	if err != nil {
		return err
	}
	config.Source = source

	content, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	err = os.WriteFile(configFilePath, content, os.ModePerm)
	if err != nil {
		return err
	}

	return nil
}

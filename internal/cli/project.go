package cli

import (
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/lutece-go/lutece-sql/core/conf"
	"github.com/lutece-go/lutece-sql/core/sqlfilter"
	"github.com/lutece-go/lutece-sql/internal/cli/flags"
	internalConf "github.com/lutece-go/lutece-sql/internal/conf"
	"github.com/lutece-go/lutece-sql/internal/filesystem"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadProjectConfig reads the project file when there is one and applies the flags over it.
// Relative paths of the result are resolved against the project location.
func loadProjectConfig(cmd *cobra.Command, logger *zap.Logger) (*conf.ProjectConfig, error) {
	globalFlags, err := flags.ExtractGlobalFlags(cmd)
	if err != nil {
		logError(logger, ErrExtractGlobalFlags, err)
		return nil, genError(ErrExtractGlobalFlags, err)
	}

	configFilePath := filepath.Join(globalFlags.Location, internalConf.DEFAULT_PROJECT_FILE)
	exists, err := filesystem.CheckFSObject(configFilePath)
	if err != nil {
		logError(logger, ErrCheckFile, err)
		return nil, genError(ErrCheckFile, err)
	}

	projectConfig := &conf.ProjectConfig{}
	if exists {
		logger.Info("Located config file", zap.String("path", configFilePath))

		err = conf.LoadConfigFromFile(configFilePath, projectConfig)
		if err != nil {
			logError(logger, ErrLoadConfigFromFile, err)
			return nil, genError(ErrLoadConfigFromFile, err)
		}

		err = flags.MergeSource(cmd, projectConfig)
		if err != nil {
			logError(logger, ErrMergeFlags, err)
			return nil, genError(ErrMergeFlags, err)
		}

		if flags.HasFilterConfigFlags(cmd) {
			err = flags.MergeFilterConfigFlags(cmd, &projectConfig.Filter)
			if err != nil {
				logError(logger, ErrMergeFlags, err)
				return nil, genError(ErrMergeFlags, err)
			}
		}

	} else {
		err = defaults.Set(projectConfig)
		if err != nil {
			return nil, err
		}

		projectConfig.Source = globalFlags.Source

		if flags.HasFilterConfigFlags(cmd) {
			err = flags.ExtractFilterConfigFlags(cmd, &projectConfig.Filter)
			if err != nil {
				logError(logger, ErrExtractFlags, err)
				return nil, genError(ErrExtractFlags, err)
			}
		}
	}

	projectConfig.Source = resolvePath(globalFlags.Location, projectConfig.Source)
	projectConfig.Filter.RegexpFile = resolvePath(globalFlags.Location, projectConfig.Filter.RegexpFile)
	projectConfig.Filter.DBProperties = resolvePath(globalFlags.Location, projectConfig.Filter.DBProperties)

	return projectConfig, nil
}

func resolvePath(location string, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(location, path)
}

// resolveVendor picks the configured vendor, then the one of db.properties. An empty result lets
// the filter fall back to its default vendor.
func resolveVendor(logger *zap.Logger, config *conf.FilterConfig) (string, error) {
	if config.Vendor != "" {
		return config.Vendor, nil
	}

	exists, err := filesystem.CheckFSObject(config.DBProperties)
	if err != nil {
		return "", err
	}
	if !exists {
		logger.Debug("No db.properties found", zap.String("path", config.DBProperties))
		return "", nil
	}

	vendor, err := sqlfilter.FindVendorFromFile(config.DBProperties)
	if err != nil {
		return "", err
	}

	if vendor != "" {
		logger.Info("Vendor found in db.properties", zap.String("vendor", vendor))
	}
	return vendor, nil
}

package cli

import (
	"fmt"

	"go.uber.org/zap"
)

func genError(description string, err error) error {
	return fmt.Errorf("%s: %w", description, err)
}

func logError(logger *zap.Logger, description string, err error) {
	logger.Error(description, zap.Error(err))
}

func logErrors(logger *zap.Logger, description string, errs []error) {
	for _, err := range errs {
		logger.Error(description, zap.Error(err))
	}
}

var (
	ErrExtractGlobalFlags = "Error extracting global flags"
	ErrCheckFile          = "Error checking file existence"
	ErrLoadConfigFromFile = "Error loading configuration from file"
	ErrMergeFlags         = "Error merging configuration flags"
	ErrExtractFlags       = "Error extracting configuration flags"
	ErrWriteConfig        = "Error writing configuration file"
	ErrLoadCatalog        = "Error loading migration scripts"
	ErrValidation         = "Validation error"
	ErrParseVersion       = "Error parsing version"
	ErrFindVendor         = "Error finding database vendor"
	ErrLoadFilter         = "Error loading SQL filter"
	ErrFilterFile         = "Error filtering SQL file"
	ErrOpenOutput         = "Error opening output file"
)

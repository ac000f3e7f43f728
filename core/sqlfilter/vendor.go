package sqlfilter

import (
	"regexp"

	"github.com/lutece-go/lutece-sql/core/errs"
)

// PORTAL_URL_KEY holds the JDBC URL in db.properties.
const PORTAL_URL_KEY = "portal.url"

// Same expression as the build-config ant scripts.
var jdbcVendorRegex = regexp.MustCompile(`^jdbc:(.*?):.*$`)

// FindVendor extracts the vendor from a JDBC URL shaped like jdbc:<vendor>:<anything>.
// Any other shape gives a *errs.ParseError carrying the URL.
func FindVendor(jdbcURL string) (string, error) {
	matches := jdbcVendorRegex.FindStringSubmatch(jdbcURL)
	if matches == nil {
		return "", errs.NewParseError(errs.KIND_JDBC_URL, jdbcURL, nil)
	}
	return matches[1], nil
}

// FindVendorInProperties reads the vendor from the portal.url property. It returns "" when the
// property is absent.
func FindVendorInProperties(src PropertySource) (string, error) {
	jdbcURL := src.GetString(PORTAL_URL_KEY, "")
	if jdbcURL == "" {
		return "", nil
	}
	return FindVendor(jdbcURL)
}

// FindVendorFromFile reads the vendor from a db.properties file.
func FindVendorFromFile(path string) (string, error) {
	props, err := readProperties(fileOpener(path))
	if err != nil {
		return "", err
	}
	return FindVendorInProperties(props)
}

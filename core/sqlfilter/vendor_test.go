package sqlfilter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lutece-go/lutece-sql/core/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindVendor(t *testing.T) {
	tests := []struct {
		url    string
		vendor string
	}{
		{"jdbc:mysql://host/db", "mysql"},
		{"jdbc:mysql://localhost/lutece?autoReconnect=true&useUnicode=yes", "mysql"},
		{"jdbc:postgresql://localhost:5432/lutece", "postgresql"},
		{"jdbc:oracle:thin:@localhost:1521:XE", "oracle"},
		{"jdbc:hsqldb:file:target/lutece", "hsqldb"},
		{"jdbc::nothing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			vendor, err := FindVendor(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.vendor, vendor)
		})
	}
}

func TestFindVendorErrors(t *testing.T) {
	for _, url := range []string{"not-a-jdbc-url", "", "jdbc:mysql", "JDBC:mysql://host/db", "jdbc:my\nsql:x"} {
		vendor, err := FindVendor(url)
		assert.Empty(t, vendor)
		require.Error(t, err, url)

		assert.True(t, errors.Is(err, errs.ErrParse))

		var parseErr *errs.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, errs.KIND_JDBC_URL, parseErr.Kind)
		assert.Equal(t, url, parseErr.Input)
		assert.Contains(t, err.Error(), url)
	}
}

func TestFindVendorInProperties(t *testing.T) {
	vendor, err := FindVendorInProperties(mapSource{PORTAL_URL_KEY: "jdbc:postgresql://localhost/lutece"})
	require.NoError(t, err)
	assert.Equal(t, "postgresql", vendor)

	vendor, err = FindVendorInProperties(mapSource{})
	require.NoError(t, err)
	assert.Empty(t, vendor)

	_, err = FindVendorInProperties(mapSource{PORTAL_URL_KEY: "localhost"})
	assert.ErrorIs(t, err, errs.ErrParse)
}

func TestFindVendorFromFile(t *testing.T) {
	dir := t.TempDir()

	dbProperties := filepath.Join(dir, "db.properties")
	content := "portal.poolservice=fr.paris.lutece.util.pool.service.LuteceConnectionService\n" +
		"portal.driver=org.postgresql.Driver\n" +
		"portal.url=jdbc:postgresql://localhost:5432/lutece\n" +
		"portal.user=lutece\n"
	err := os.WriteFile(dbProperties, []byte(content), os.ModePerm)
	require.NoError(t, err)

	vendor, err := FindVendorFromFile(dbProperties)
	require.NoError(t, err)
	assert.Equal(t, "postgresql", vendor)

	_, err = FindVendorFromFile(filepath.Join(dir, "missing.properties"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "lutece-sql.yaml")
	content := "source: ./lutece-core/src\nfilter:\n  vendor: postgresql\n"
	err := os.WriteFile(configPath, []byte(content), os.ModePerm)
	require.NoError(t, err)

	config := &ProjectConfig{}
	err = LoadConfigFromFile(configPath, config)
	require.NoError(t, err)

	assert.Equal(t, "./lutece-core/src", config.Source)
	assert.Equal(t, "postgresql", config.Filter.Vendor)
	assert.Equal(t, "build.properties", config.Filter.RegexpFile) // Default kept
	assert.Equal(t, "webapp/WEB-INF/conf/db.properties", config.Filter.DBProperties)
}

func TestLoadConfigFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	err := LoadConfigFromFile(filepath.Join(dir, "missing.yaml"), &ProjectConfig{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	invalidPath := filepath.Join(dir, "invalid.yaml")
	err = os.WriteFile(invalidPath, []byte("source: [unterminated"), os.ModePerm)
	require.NoError(t, err)

	err = LoadConfigFromFile(invalidPath, &ProjectConfig{})
	assert.Error(t, err)
}

func TestLoadConfigFromFileStrict(t *testing.T) {
	dir := t.TempDir()

	unknownPath := filepath.Join(dir, "unknown.yaml")
	err := os.WriteFile(unknownPath, []byte("filter:\n  vendr: oracle\n"), os.ModePerm)
	require.NoError(t, err)

	err = LoadConfigFromFile(unknownPath, &ProjectConfig{})
	assert.ErrorContains(t, err, "vendr")

	emptyPath := filepath.Join(dir, "empty.yaml")
	err = os.WriteFile(emptyPath, nil, os.ModePerm)
	require.NoError(t, err)

	config := &ProjectConfig{}
	err = LoadConfigFromFile(emptyPath, config)
	require.NoError(t, err)
	assert.Equal(t, "src", config.Source)
}

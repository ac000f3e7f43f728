package filesystem

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/lutece-go/lutece-sql/core/sqlfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "build.properties", "regexp.postgresql.list=backquote\n"+
		"regexp.postgresql.backquote=`\n"+
		"replace.postgresql.backquote=\n")
	writeFile(t, dir, "create_db_forms.sql", "DROP TABLE IF EXISTS `forms_form`;\r\n"+
		"CREATE TABLE `forms_form` (\n"+
		"`id` int);")

	filter, err := sqlfilter.LoadFile(filepath.Join(dir, "build.properties"), "postgresql")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	err = FilterFile(filter, filepath.Join(dir, "create_db_forms.sql"), out)
	require.NoError(t, err)

	assert.Equal(t, "DROP TABLE IF EXISTS forms_form;\r\nCREATE TABLE forms_form (\nid int);", out.String())
}

func TestFilterFileMissing(t *testing.T) {
	filter, err := sqlfilter.New(nil, "")
	require.NoError(t, err)

	err = FilterFile(filter, filepath.Join(t.TempDir(), "missing.sql"), &bytes.Buffer{})
	assert.Error(t, err)
}

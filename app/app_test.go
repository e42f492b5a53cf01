package app

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func etcPath(t *testing.T) string {
	t.Helper()

	projectRoot, err := filepath.Abs("../")
	require.NoError(t, err)

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		dumpJSON = false
		migrateAll = false
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestConfigDump(t *testing.T) {
	t.Setenv("SITEADMIN_DB_PASSWORD", "s3cret")

	out, err := run(t, "config", "dump", "--config", etcPath(t))
	require.NoError(t, err)
	assert.Contains(t, out, "GormEngine")
	assert.NotContains(t, out, "s3cret")

	out, err = run(t, "config", "dump", "--json", "--config", etcPath(t))
	require.NoError(t, err)
	assert.Contains(t, out, `"GormEngine": "mysql"`)
	assert.NotContains(t, out, "s3cret")
}

func TestMigrateAndUserAdd(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "site.db")
	t.Setenv("SITEADMIN_CONFIG_JSON", `{"DB":{"GormEngine":"sqlite","Name":"`+filepath.ToSlash(dbFile)+`","Extras":""}}`)

	_, err := run(t, "migrate", "--all", "--config", etcPath(t))
	require.NoError(t, err)

	out, err := run(t, "user", "add",
		"--username", "admin", "--email", "admin@example.com", "--password", "changeme",
		"--config", etcPath(t))
	require.NoError(t, err)
	assert.Contains(t, out, `created user "admin" with id 1`)

	_, err = run(t, "user", "add",
		"--username", "admin", "--email", "other@example.com", "--password", "changeme",
		"--config", etcPath(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is already taken")
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "migrate", "--config", t.TempDir())
	require.Error(t, err)
}

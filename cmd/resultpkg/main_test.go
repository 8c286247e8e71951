package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdata = filepath.Join("..", "..", "internal", "manifest", "testdata")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestValidate_Ok(t *testing.T) {
	out, err := run(t, "validate", filepath.Join(testdata, "result_py.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok ")
	assert.NotContains(t, out, "fail ")
}

func TestValidate_ManyInArgumentOrder(t *testing.T) {
	paths := []string{
		filepath.Join(testdata, "broken_rules.yaml"),
		filepath.Join(testdata, "result_py.yaml"),
		filepath.Join(testdata, "unknown_key.yaml"),
		filepath.Join(testdata, "warnings.yaml"),
	}

	out, err := run(t, append([]string{"validate", "-w", "3"}, paths...)...)
	require.ErrorIs(t, err, errValidationFailed)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var reports []string
	for _, l := range lines {
		if strings.HasPrefix(l, "ok ") || strings.HasPrefix(l, "fail ") {
			reports = append(reports, l)
		}
	}
	require.Len(t, reports, 4)
	assert.True(t, strings.HasPrefix(reports[0], "fail "+paths[0]))
	assert.Equal(t, "ok "+paths[1], reports[1])
	assert.True(t, strings.HasPrefix(reports[2], "fail "+paths[2]))
	assert.Equal(t, "ok "+paths[3], reports[3])
}

func TestValidate_CancelledRunFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths := []string{
		filepath.Join(testdata, "result_py.yaml"),
		filepath.Join(testdata, "warnings.yaml"),
	}

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error", "validate"}, paths...))

	err := cmd.ExecuteContext(ctx)
	require.ErrorIs(t, err, errValidationFailed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var reports []string
	for _, l := range lines {
		if strings.HasPrefix(l, "fail ") {
			reports = append(reports, l)
		}
	}
	require.Len(t, reports, 2, out.String())
	assert.True(t, strings.HasPrefix(reports[0], "fail "+paths[0]+": "))
	assert.True(t, strings.HasPrefix(reports[1], "fail "+paths[1]+": "))
	assert.NotContains(t, out.String(), "fail : ")
}

func TestValidate_PrintsWarnings(t *testing.T) {
	path := filepath.Join(testdata, "warnings.yaml")
	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok "+path+"\n")
	assert.Contains(t, out, "warn "+path+": ")
}

func TestValidate_RequiresArgs(t *testing.T) {
	_, err := run(t, "validate")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", filepath.Join(testdata, "result_py.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "name: result_py\n"), out)
	assert.Contains(t, out, "author_email: zsck@riseup.net")
}

func TestShow_MissingFile(t *testing.T) {
	_, err := run(t, "show", filepath.Join(testdata, "missing.yaml"))
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud", "show", filepath.Join(testdata, "result_py.yaml")})
	assert.Error(t, cmd.Execute())
}

package manifest

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/result/internal/logger"
)

func fieldsOf(err error) []string {
	var out []string
	for _, e := range flatten(err) {
		var fe *FieldError
		if errors.As(e, &fe) {
			out = append(out, fe.Field)
		}
	}
	return out
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func TestLoad_ResultPy(t *testing.T) {
	t.Parallel()

	res := Load(filepath.Join("testdata", "result_py.yaml"))
	require.True(t, res.IsOk(), "load failed: %v", res.Err())

	m := res.Value()
	assert.Equal(t, "result_py", m.Name)
	assert.Equal(t, []string{"result_py"}, m.Packages)
	assert.Equal(t, "0.1.0", m.Version)
	assert.Equal(t, "zsck@riseup.net", m.AuthorEmail)
	assert.Len(t, m.Keywords, 4)
	assert.Len(t, m.Classifiers, 3)
}

func TestCheck_ResultPy(t *testing.T) {
	t.Parallel()

	res := Check(context.Background(), filepath.Join("testdata", "result_py.yaml"))
	require.True(t, res.IsOk(), "check failed: %v", res.Err())
	assert.Empty(t, Warnings(res.Value()))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	res := Load(filepath.Join("testdata", "nope.yaml"))
	assert.True(t, res.IsErr())
	assert.NotErrorIs(t, res.Err(), ErrInvalidManifest)
}

func TestLoad_UnknownKeyRejectedBySchema(t *testing.T) {
	t.Parallel()

	res := Load(filepath.Join("testdata", "unknown_key.yaml"))
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Err(), ErrInvalidManifest)
	assert.ErrorContains(t, res.Err(), "unknown_key.yaml")
}

func TestParse_SchemaFailures(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":            "",
		"not an object":    "- a\n- b\n",
		"missing version":  "name: x\npackages: [x]\n",
		"boolean version":  "name: x\npackages: [x]\nversion: true\n",
		"empty packages":   "name: x\npackages: []\nversion: 1.0.0\n",
		"keywords as text": "name: x\npackages: [x]\nversion: 1.0.0\nkeywords: rust\n",
		"broken yaml":      "name: [x\n",
	}
	for name, doc := range cases {
		name, doc := name, doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := Parse([]byte(doc))
			require.True(t, res.IsErr())
			assert.ErrorIs(t, res.Err(), ErrInvalidManifest)
		})
	}
}

func TestCheck_UnquotedNumericVersion(t *testing.T) {
	t.Parallel()

	res := Check(context.Background(), filepath.Join("testdata", "numeric_version.yaml"))
	require.True(t, res.IsOk(), "check failed: %v", res.Err())
	assert.Equal(t, "0.1", res.Value().Version)

	res = Parse([]byte("name: x\npackages: [x]\nversion: 1.10\n"))
	require.True(t, res.IsOk(), "parse failed: %v", res.Err())
	assert.Equal(t, "1.10", res.Value().Version)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	t.Parallel()

	res := Check(context.Background(), filepath.Join("testdata", "broken_rules.yaml"))
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Err(), ErrInvalidManifest)
	assert.ElementsMatch(t,
		[]string{"name", "packages", "version", "author_email", "url", "keywords", "classifiers"},
		fieldsOf(res.Err()))
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	res := Validate(context.Background(), nil)
	assert.ErrorIs(t, res.Err(), ErrInvalidManifest)
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	t.Parallel()

	res := Validate(context.Background(), &Manifest{Name: "x", Packages: []string{"x"}, Version: "1"})
	assert.True(t, res.IsOk(), "unexpected: %v", res.Err())
}

func TestValidate_AuthorEmailWithDisplayName(t *testing.T) {
	t.Parallel()

	m := &Manifest{Name: "x", Packages: []string{"x"}, Version: "1.0", AuthorEmail: "Jane <jane@example.org>"}
	assert.Equal(t, []string{"author_email"}, fieldsOf(Validate(context.Background(), m).Err()))
}

func TestWarnings(t *testing.T) {
	t.Parallel()

	res := Load(filepath.Join("testdata", "warnings.yaml"))
	require.True(t, res.IsOk(), "load failed: %v", res.Err())

	warnings := Warnings(res.Value())
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "not one of the declared packages")
	assert.Contains(t, warnings[1], "does not reference version 0.2.0")

	dashed := &Manifest{Name: "result-py", Packages: []string{"result_py"}}
	assert.Empty(t, Warnings(dashed))
}

func TestCheck_LogsOnlyAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger.Init(zap.New(core).Sugar())
	t.Cleanup(func() { logger.Init(nil) })

	res := Check(context.Background(), filepath.Join("testdata", "warnings.yaml"))
	require.True(t, res.IsOk(), "check failed: %v", res.Err())
	require.NotZero(t, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, zapcore.DebugLevel, entry.Level, entry.Message)
	}
}

func TestMarshal_RoundTripsKeys(t *testing.T) {
	t.Parallel()

	res := Load(filepath.Join("testdata", "result_py.yaml"))
	require.True(t, res.IsOk())

	out, err := Marshal(res.Value())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(out, &raw))
	assert.Equal(t, "zsck@riseup.net", raw["author_email"])
	assert.Equal(t, "0.1.0", raw["version"])
	assert.True(t, Parse(out).IsOk())
}

func TestSemVer(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		"0.1.0":        "v0.1.0",
		"1":            "v1.0.0",
		"1.2":          "v1.2.0",
		"v2.3.4":       "v2.3.4",
		"1.0.0rc1":     "v1.0.0-rc1",
		"1.0b2":        "v1.0.0-b2",
		"1.0.0a1":      "v1.0.0-a1",
		"3.0-rc.4":     "v3.0.0-rc4",
		"1.0.dev0":     "v1.0.0-0.dev.0",
		"1.0.post1":    "v1.0.0",
		"2.1rc1.post2": "v2.1.0-rc1",
	}
	for in, want := range valid {
		got, err := SemVer(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, want, got, in)
		}
	}

	for _, in := range []string{"", "one.two", "1.2.3.4", "01.0", "1.0.0-", "latest", "1.0a1.dev1", "1.0.post1.dev0", "1.0.dev01"} {
		_, err := SemVer(in)
		assert.Error(t, err, in)
	}
}

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	c, err := CompareVersions("1.0.0rc1", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = CompareVersions("0.2", "0.1.9")
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = CompareVersions("1.0.dev0", "1.0a1")
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = CompareVersions("1.0.post1", "1.0")
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = CompareVersions("x", "1")
	assert.Error(t, err)
}

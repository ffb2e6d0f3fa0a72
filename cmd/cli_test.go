package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/patrikhermansson/gometric/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), args, &out)
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "vector: canberra chebyshev cosine euclidean manhattan minkowski3\n")
	assert.Contains(t, out, "text:   damerau hamming jaro jaro-winkler levenshtein sorensen-dice\n")
}

func TestVector(t *testing.T) {
	out, err := run(t, "vector", "-metric", "euclidean", "-l", "0,0", "-r", "3,4")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	_, err = run(t, "vector", "-metric", "manhattan", "-l", "1,2", "-r", "3")
	assert.ErrorIs(t, err, core.ErrLengthMismatch)

	_, err = run(t, "vector", "-metric", "nope", "-l", "1", "-r", "1")
	assert.ErrorIs(t, err, core.ErrUnknownMetric)

	_, err = run(t, "vector", "-l", "1,a", "-r", "1,2")
	assert.ErrorContains(t, err, "left vector")
}

func TestText(t *testing.T) {
	out, err := run(t, "text", "-metric", "levenshtein", "-l", "kitten", "-r", "sitting")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, "text", "-metric", "sorensen-dice", "-l", "night", "-r", "nacht")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n", out)

	_, err = run(t, "text", "-metric", "hamming", "-l", "ab", "-r", "abc")
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	vectors := filepath.Join(dir, "vectors.csv")
	require.NoError(t, os.WriteFile(vectors, []byte("0,0,3,4\n1,1,1,1\n"), 0o600))
	texts := filepath.Join(dir, "texts.csv")
	require.NoError(t, os.WriteFile(texts, []byte("kitten,sitting\nab,abc\n"), 0o600))

	out, err := run(t, "batch", "-metric", "euclidean", "-file", vectors, "-workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "0\t5\n1\t0\ncount=2 failures=0 min=0 max=5 mean=2.5\n", out)

	out, err = run(t, "batch", "-metric", "hamming", "-kind", "text", "-file", texts)
	require.NoError(t, err)
	assert.Contains(t, out, "0\t3\n")
	assert.Contains(t, out, "1\terror: gometric: inputs must have equal length: 2 != 3\n")
	assert.Contains(t, out, "count=1 failures=1")

	_, err = run(t, "batch", "-metric", "euclidean", "-kind", "image", "-file", vectors)
	assert.ErrorContains(t, err, `unknown kind "image"`)

	_, err = run(t, "batch", "-metric", "euclidean")
	assert.ErrorIs(t, err, errUsage)
}

func TestUsage(t *testing.T) {
	_, err := run(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = run(t, "frobnicate")
	assert.ErrorIs(t, err, errUsage)
	assert.ErrorContains(t, err, `unknown command "frobnicate"`)

	_, err = run(t, "vector", "-bogus")
	assert.ErrorIs(t, err, errUsage)
}

package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisk_SaveAndOpen(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	key := NewKey("submissions", "report.pdf")
	content := "hello submission"
	err = d.Save(context.Background(), key, "application/pdf", strings.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	rc, err := d.Open(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestDisk_OpenMissing(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	_, err = d.Open(context.Background(), "submissions/nope.txt")
	assert.Error(t, err)
}

func TestDisk_RejectsTraversal(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	err = d.Save(context.Background(), "../escape.txt", "text/plain", strings.NewReader("x"), 1)
	assert.Error(t, err)
}

func TestNewKey(t *testing.T) {
	key := NewKey("materials", "../weird name!.pdf")
	assert.True(t, strings.HasPrefix(key, "materials/"))
	assert.NotContains(t, key, "..")
	assert.NotContains(t, key, " ")
	assert.True(t, strings.HasSuffix(key, "weird_name_.pdf"))
}

func TestDisk_URL(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/uploads/materials/a.txt", d.URL("materials/a.txt"))
}

package manifest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSized(t *testing.T, fsys afero.Fs, name string, size int) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, name, make([]byte, size), 0o644))
}

func TestClassifyBoundaries(t *testing.T) {
	assert.Equal(t, Small, Classify(0))
	assert.Equal(t, Small, Classify(SmallLimit-1))
	assert.Equal(t, Medium, Classify(SmallLimit))
	assert.Equal(t, Medium, Classify(MediumLimit-1))
	assert.Equal(t, Large, Classify(MediumLimit))
}

func TestIsImage(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.Png", "d.gif", "e.webp"} {
		assert.True(t, IsImage(name), name)
	}
	for _, name := range []string{"notes.txt", "jpg", "manifest.json", "x.jpg.bak"} {
		assert.False(t, IsImage(name), name)
	}
}

func TestBuildSortsBucketsBySize(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	m := Build([]Entry{
		{Name: "big.jpg", Size: 2 << 20},
		{Name: "mid.png", Size: 800 * 1024},
		{Name: "tiny.gif", Size: 10},
		{Name: "small.jpg", Size: 500},
		{Name: "huge.webp", Size: 3 << 20},
	}, now)

	assert.Equal(t, []string{"tiny.gif", "small.jpg"}, m.Groups.Small)
	assert.Equal(t, []string{"mid.png"}, m.Groups.Medium)
	assert.Equal(t, []string{"big.jpg", "huge.webp"}, m.Groups.Large)
	assert.Equal(t, Stats{Small: 2, Medium: 1, Large: 2, Total: 5}, m.Stats)
	assert.Equal(t, int64(510), m.Bytes[Small])
	assert.Equal(t, "Small: 2, Medium: 1, Large: 2", m.Summary())
}

func TestGenerateWritesManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/photos/nested", 0o755))
	writeSized(t, fsys, "/photos/b.jpg", 900*1024)
	writeSized(t, fsys, "/photos/a.PNG", 100)
	writeSized(t, fsys, "/photos/readme.txt", 5)
	writeSized(t, fsys, "/photos/nested/c.jpg", 1)

	m, out, err := Generate(fsys, "/photos", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/photos", FileName), out)
	assert.Equal(t, 2, m.Stats.Total)

	data, err := afero.ReadFile(fsys, out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"stats\": {\n    \"small\": 1,")

	loaded, err := Load(fsys, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.PNG"}, loaded.Groups.Small)
	assert.Equal(t, []string{"b.jpg"}, loaded.Groups.Medium)
	assert.Empty(t, loaded.Groups.Large)
}

func TestGenerateCustomOutput(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/photos", 0o755))
	writeSized(t, fsys, "/photos/a.jpg", 1)

	_, out, err := Generate(fsys, "/photos", "/tmp/list.json", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/list.json", out)
	exists, err := afero.Exists(fsys, "/photos/"+FileName)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestScanErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeSized(t, fsys, "/file.jpg", 1)

	_, err := Scan(fsys, "/file.jpg")
	assert.ErrorIs(t, err, ErrNotDir)

	_, err = Scan(fsys, "/missing")
	assert.Error(t, err)
}

func TestEmptyDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/empty", 0o755))

	m, _, err := Generate(fsys, "/empty", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Stats.Total)
	assert.Empty(t, m.Images("/empty"))
}

func TestImagesSmallFirstResolved(t *testing.T) {
	m := Build([]Entry{
		{Name: "l.jpg", Size: 2 << 20},
		{Name: "s.jpg", Size: 1},
		{Name: "m.jpg", Size: 1 << 20},
	}, time.Now())

	assert.Equal(t, []string{
		filepath.Join("/pics", "s.jpg"),
		filepath.Join("/pics", "m.jpg"),
		filepath.Join("/pics", "l.jpg"),
	}, m.Images("/pics"))
	assert.Equal(t, []string{"s.jpg", "m.jpg", "l.jpg"}, m.Images(""))
}

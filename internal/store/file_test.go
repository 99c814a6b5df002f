package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"library/internal/catalog"
	"library/internal/report"
	"library/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFile(t *testing.T, rec *report.Recorder, content *string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.txt")
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0o644))
	}
	return NewFile(path, WithReporter(rec), WithClock(func() time.Time { return time.Unix(0, 0) }))
}

func seededCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.New(catalog.WithSeed(testutil.SampleCatalog(t)...))
}

func strptr(s string) *string { return &s }

func TestFile_Save(t *testing.T) {
	var rec report.Recorder
	f := newTestFile(t, &rec, strptr("stale content that must disappear\n"))

	require.NoError(t, f.Save(seededCatalog(t)))

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleFile, string(data))
	assert.Equal(t, []string{`Library was saved to "` + f.Path() + `".`}, rec.Messages())
}

func TestFile_SaveEmptyCatalogTruncates(t *testing.T) {
	var rec report.Recorder
	f := newTestFile(t, &rec, strptr("1984 | George Orwell | 1949 | book\n"))

	require.NoError(t, f.Save(catalog.New()))

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFile_SaveUnwritablePath(t *testing.T) {
	var rec report.Recorder
	f := NewFile(filepath.Join(t.TempDir(), "no-such-dir", "library.txt"), WithReporter(&rec))

	err := f.Save(seededCatalog(t))

	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, rec.Messages())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWriteLines_Failure(t *testing.T) {
	err := writeLines(failingWriter{}, testutil.SampleCatalog(t))
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestFile_Load(t *testing.T) {
	t.Run("concrete scenario", func(t *testing.T) {
		var rec report.Recorder
		f := newTestFile(t, &rec, strptr(testutil.SampleFile))
		c := catalog.New()

		n, err := f.Load(c)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		all := c.All()
		require.Len(t, all, 2)
		assert.Equal(t, "1984 - George Orwell, 1949", all[0].String())
		assert.Equal(t, "[Magazine] National Geographic - Various, 2023", all[1].String())
		assert.Equal(t, []string{"Imported 2 publications from " + f.Path() + "."}, rec.Messages())
	})

	t.Run("malformed line is reported and skipped", func(t *testing.T) {
		var rec report.Recorder
		f := newTestFile(t, &rec, strptr("1984 | George Orwell | 1949 | book\nBrave New World | Aldous Huxley | 1932\n"))
		c := catalog.New()

		n, err := f.Load(c)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, []string{
			"Incorrect line: Brave New World | Aldous Huxley | 1932",
			"Imported 1 publications from " + f.Path() + ".",
		}, rec.Messages())
	})

	t.Run("non-integer year is reported like a malformed line", func(t *testing.T) {
		var rec report.Recorder
		f := newTestFile(t, &rec, strptr("Dune | Frank Herbert | sixty-five | book\nEmma | Jane Austen | 1815 | book\n"))
		c := catalog.New()

		n, err := f.Load(c)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, "Incorrect line: Dune | Frank Herbert | sixty-five | book", rec.Messages()[0])
	})

	t.Run("empty author imports", func(t *testing.T) {
		var rec report.Recorder
		f := newTestFile(t, &rec, strptr("Anonymous Tales |  | 1900 | book\n"))
		c := catalog.New()

		n, err := f.Load(c)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		all := c.All()
		require.Len(t, all, 1)
		assert.Equal(t, "Anonymous Tales", all[0].Title())
		assert.Equal(t, "", all[0].Author())
		assert.Equal(t, []string{"Imported 1 publications from " + f.Path() + "."}, rec.Messages())
	})

	t.Run("unknown kind is skipped silently", func(t *testing.T) {
		var rec report.Recorder
		f := newTestFile(t, &rec, strptr("The Times | Staff | 2024 | newspaper\n"))
		c := catalog.New()

		n, err := f.Load(c)

		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, 0, c.Len())
		assert.Equal(t, []string{"Imported 0 publications from " + f.Path() + "."}, rec.Messages())
	})

	t.Run("missing file leaves catalog unchanged", func(t *testing.T) {
		var rec report.Recorder
		f := newTestFile(t, &rec, nil)
		c := seededCatalog(t)

		n, err := f.Load(c)

		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, []string{`File "` + f.Path() + `" not found.`}, rec.Messages())
	})

	t.Run("appends without clearing", func(t *testing.T) {
		var rec report.Recorder
		f := newTestFile(t, &rec, strptr("Emma | Jane Austen | 1815 | book\n"))
		c := seededCatalog(t)
		before := c.All()

		_, err := f.Load(c)

		require.NoError(t, err)
		all := c.All()
		require.Len(t, all, 3)
		assert.Equal(t, before, all[:2])
		assert.Equal(t, "Emma - Jane Austen, 1815", all[2].String())
	})

	t.Run("directory path is a read error", func(t *testing.T) {
		f := NewFile(t.TempDir())
		_, err := f.Load(catalog.New())
		assert.ErrorIs(t, err, ErrRead)
	})
}

func TestFile_RoundTrip(t *testing.T) {
	var rec report.Recorder
	f := newTestFile(t, &rec, nil)
	original := seededCatalog(t)

	require.NoError(t, f.Save(original))
	loaded := catalog.New()
	_, err := f.Load(loaded)
	require.NoError(t, err)

	want := original.All()
	got := loaded.All()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, FormatLine(want[i]), FormatLine(got[i]))
		assert.NotSame(t, want[i], got[i])
	}
}

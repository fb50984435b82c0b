package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"versematch/internal/config"
	"versematch/internal/corpus"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sampleDoc(t *testing.T, key string) corpus.Document {
	t.Helper()
	data, err := corpus.SampleJSON(key)
	require.NoError(t, err)
	doc, err := corpus.ParseDocument(data)
	require.NoError(t, err)
	return doc
}

func assertRoundTrip(t *testing.T, src Source, w Writer) {
	t.Helper()
	ctx := context.Background()
	for _, key := range corpus.SampleKeys() {
		want := sampleDoc(t, key)
		require.NoError(t, w.Save(ctx, key, want))
		got, err := src.Load(ctx, key)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", key, diff)
		}
	}
	_, err := src.Load(ctx, "silappathikaram")
	assert.True(t, errors.Is(err, ErrCorpusNotFound), "got %v", err)
}

func TestJSONFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, key := range corpus.SampleKeys() {
		f := JSONFile{Path: filepath.Join(dir, "nested", key+".json")}
		want := sampleDoc(t, key)
		require.NoError(t, f.Save(context.Background(), key, want))
		got, err := f.Load(context.Background(), key)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", key, diff)
		}
	}

	_, err := JSONFile{Path: filepath.Join(dir, "missing.json")}.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCorpusNotFound)
}

func TestJSONFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := JSONFile{Path: path}.Load(context.Background(), "bad")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCorpusNotFound))
}

func TestSQLiteRoundTrip(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "corpora.db"))
	require.NoError(t, err)
	defer db.Close()

	assertRoundTrip(t, db, db)

	keys, err := db.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"kamba_ramayanam", "thirukkural"}, keys)
}

func TestSQLiteSaveReplaces(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "corpora.db"))
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	doc := sampleDoc(t, "thirukkural")
	require.NoError(t, db.Save(ctx, "thirukkural", doc))

	doc.Verses = doc.Verses[:3]
	doc.Metadata.Period = "சங்க காலம்"
	require.NoError(t, db.Save(ctx, "thirukkural", doc))

	got, err := db.Load(ctx, "thirukkural")
	require.NoError(t, err)
	assert.Len(t, got.Verses, 3)
	assert.Equal(t, "சங்க காலம்", got.Metadata.Period)
}

func TestSQLiteMigrationsAddColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	cols, err := tableColumns(db.db, "verses")
	require.NoError(t, err)
	for _, m := range verseColumnMigrations {
		assert.True(t, cols[m.Column], m.Column)
	}
	assert.False(t, cols["nope"])

	missing, err := tableColumns(db.db, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
	require.NoError(t, db.Close())

	// Reopening is idempotent.
	db, err = OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestTableColumnsReportsQueryErrors(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = tableColumns(db.db, "verses")
	assert.ErrorContains(t, err, "read columns of verses")
	assert.Error(t, runSQLiteMigrations(db.db))
}

func TestBoltRoundTrip(t *testing.T) {
	db, err := OpenBolt(filepath.Join(t.TempDir(), "corpora.bolt"))
	require.NoError(t, err)
	defer db.Close()

	assertRoundTrip(t, db, db)

	keys, err := db.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"kamba_ramayanam", "thirukkural"}, keys)
}

func TestBoltKeepsOrderPastTenVerses(t *testing.T) {
	db, err := OpenBolt(filepath.Join(t.TempDir(), "corpora.bolt"))
	require.NoError(t, err)
	defer db.Close()

	doc := sampleDoc(t, "thirukkural")
	require.Greater(t, len(doc.Verses), 10)
	require.NoError(t, db.Save(context.Background(), "thirukkural", doc))
	got, err := db.Load(context.Background(), "thirukkural")
	require.NoError(t, err)
	for i := range doc.Verses {
		assert.Equal(t, doc.Verses[i].VerseNumber, got.Verses[i].VerseNumber)
	}
}

type failingSource struct{ err error }

func (f failingSource) Name() string { return "failing" }
func (f failingSource) Load(context.Context, string) (corpus.Document, error) {
	return corpus.Document{}, f.err
}

func TestLoadLibraryDegradesFailedSources(t *testing.T) {
	dir := t.TempDir()
	doc := sampleDoc(t, "thirukkural")
	doc.Metadata.Title = ""
	tk := JSONFile{Path: filepath.Join(dir, "thirukkural.json")}
	require.NoError(t, tk.Save(context.Background(), "thirukkural", doc))

	lib := LoadLibrary(context.Background(), []Spec{
		{Key: "thirukkural", Shape: corpus.ShapeAphorism, Title: "திருக்குறள்", Source: tk},
		{Key: "kamba_ramayanam", Shape: corpus.ShapeNarrative, Title: "கம்ப ராமாயணம்", Author: "கம்பர்",
			Source: JSONFile{Path: filepath.Join(dir, "missing.json")}},
		{Key: "broken", Source: failingSource{err: errors.New("disk on fire")}},
		{Key: "sourceless"},
	})

	corpora := lib.Corpora()
	require.Len(t, corpora, 4)
	assert.Equal(t, []string{"thirukkural", "kamba_ramayanam", "broken", "sourceless"},
		[]string{corpora[0].Key, corpora[1].Key, corpora[2].Key, corpora[3].Key})

	assert.Equal(t, 12, corpora[0].Len())
	assert.Equal(t, "திருக்குறள்", corpora[0].Title())

	assert.Equal(t, 0, corpora[1].Len())
	assert.Equal(t, corpus.ShapeNarrative, corpora[1].Shape)
	assert.Equal(t, "கம்பர்", corpora[1].Metadata.Author)
	assert.Equal(t, 0, corpora[2].Len())
	assert.Equal(t, 0, corpora[3].Len())
}

func TestOpenFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Storage.DataDir = dir
	cfg.Storage.SQLitePath = filepath.Join(dir, "v.db")
	cfg.Storage.BoltPath = filepath.Join(dir, "v.bolt")
	cfg.Corpora = []config.CorpusConfig{
		{Key: "thirukkural", Shape: "aphorism", Source: config.SourceSQLite},
		{Key: "kamba_ramayanam", Shape: "narrative", Source: config.SourceBolt},
	}
	ctx := context.Background()

	sqliteW, closeSQLite, err := OpenWriter(ctx, cfg, config.SourceSQLite)
	require.NoError(t, err)
	require.NoError(t, sqliteW.Save(ctx, "thirukkural", sampleDoc(t, "thirukkural")))
	require.NoError(t, closeSQLite())

	boltW, closeBolt, err := OpenWriter(ctx, cfg, config.SourceBolt)
	require.NoError(t, err)
	require.NoError(t, boltW.Save(ctx, "kamba_ramayanam", sampleDoc(t, "kamba_ramayanam")))
	require.NoError(t, closeBolt())

	set, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer set.Close()

	lib := set.Load(ctx, cfg.GetLoadTimeout())
	stats := lib.Statistics()
	assert.Equal(t, 16, stats.TotalLoadedVerses)
	c, ok := lib.Get("kamba_ramayanam")
	require.True(t, ok)
	assert.Equal(t, corpus.ShapeNarrative, c.Shape)
}

func TestOpenUnknownSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Corpora = []config.CorpusConfig{{Key: "x", Source: "s3"}}
	_, err := Open(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, _, err = OpenWriter(context.Background(), cfg, "json")
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestOpenPostgresRequiresDSN(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.PostgresDSN = ""
	cfg.Corpora = []config.CorpusConfig{{Key: "x", Source: config.SourcePostgres}}
	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)

	cfg.Storage.PostgresDSN = "::not a dsn::"
	_, err = Open(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrInvalidDSN)

	_, err = OpenPostgres(context.Background(), "::not a dsn::")
	assert.ErrorIs(t, err, ErrInvalidDSN)
}

func TestOpenDegradesUnreachableBackend(t *testing.T) {
	tests := []struct {
		name   string
		source string
		setup  func(cfg *config.Config, dir string)
	}{
		{
			name:   "postgres refuses connections",
			source: config.SourcePostgres,
			setup: func(cfg *config.Config, dir string) {
				cfg.Storage.PostgresDSN = "postgres://u:p@127.0.0.1:1/db?connect_timeout=1&sslmode=disable"
			},
		},
		{
			name:   "bolt path is a directory",
			source: config.SourceBolt,
			setup: func(cfg *config.Config, dir string) {
				cfg.Storage.BoltPath = dir
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := config.DefaultConfig()
			cfg.Storage.DataDir = dir
			tt.setup(cfg, dir)
			cfg.Corpora = []config.CorpusConfig{
				{Key: "thirukkural", Shape: "aphorism", Source: config.SourceJSON},
				{Key: "kamba_ramayanam", Shape: "narrative", Title: "கம்ப ராமாயணம்", Source: tt.source},
				{Key: "silappathikaram", Shape: "narrative", Source: tt.source},
			}
			ctx := context.Background()
			tk := JSONFile{Path: filepath.Join(dir, "thirukkural.json")}
			require.NoError(t, tk.Save(ctx, "thirukkural", sampleDoc(t, "thirukkural")))

			set, err := Open(ctx, cfg)
			require.NoError(t, err)
			defer set.Close()
			require.Len(t, set.Specs, 3)
			assert.Equal(t, tt.source, set.Specs[1].Source.Name())
			assert.Contains(t, set.down, tt.source)

			lib := set.Load(ctx, cfg.GetLoadTimeout())
			corpora := lib.Corpora()
			require.Len(t, corpora, 3)
			assert.Equal(t, 12, corpora[0].Len())
			assert.Equal(t, 0, corpora[1].Len())
			assert.Equal(t, "கம்ப ராமாயணம்", corpora[1].Title())
			assert.Equal(t, 0, corpora[2].Len())
		})
	}
}

func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("VERSEMATCH_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("VERSEMATCH_TEST_POSTGRES_DSN not set")
	}
	db, err := OpenPostgres(context.Background(), dsn)
	require.NoError(t, err)
	defer db.Close()
	assertRoundTrip(t, db, db)
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	var specs []Spec
	for _, key := range corpus.SampleKeys() {
		f := JSONFile{Path: filepath.Join(dir, key+".json")}
		require.NoError(t, f.Save(context.Background(), key, sampleDoc(t, key)))
		specs = append(specs, Spec{Key: key, Source: f})
	}

	db, err := OpenBolt(filepath.Join(dir, "out.bolt"))
	require.NoError(t, err)
	defer db.Close()

	results, err := Import(context.Background(), specs, db)
	require.NoError(t, err)
	assert.Equal(t, []ImportResult{
		{Key: "kamba_ramayanam", Verses: 4},
		{Key: "thirukkural", Verses: 12},
	}, results)

	specs = append(specs, Spec{Key: "missing", Source: JSONFile{Path: filepath.Join(dir, "missing.json")}})
	_, err = Import(context.Background(), specs, db)
	assert.ErrorIs(t, err, ErrCorpusNotFound)
}

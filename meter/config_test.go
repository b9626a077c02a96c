package meter

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	c "github.com/d0ngw/census/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParse(t *testing.T) {
	conf := &Config{Path: "meterdata.json"}
	require.Nil(t, conf.Parse())
	assert.Equal(t, BackendFile, conf.Backend)
	s := NewStore(nil, conf.Options()...)
	assert.Equal(t, FormatJSON, s.Codec().Name())
	assert.Equal(t, PersistMerge, s.Mode())

	conf = &Config{Path: "Meters.txt", Format: "text", Mode: "overwrite", LoadOnInit: true, Backend: BackendMemory}
	require.Nil(t, conf.Parse())
	s = NewStore(nil, conf.Options()...)
	assert.Equal(t, FormatText, s.Codec().Name())
	assert.Equal(t, PersistOverwrite, s.Mode())

	for _, bad := range []*Config{
		{},
		{Path: "a", Format: "xml"},
		{Path: "a", Mode: "append"},
		{Path: "a", LoadOnInit: true},
		{Path: "a", Backend: "s3"},
		{Path: "a", Backend: BackendRedis},
		{Path: "a", Backend: BackendRedis, Redis: &RedisBackendConf{Group: "none"}},
		{Path: "a", Backend: BackendSQL},
		{Path: "a", Backend: BackendSQL, SQL: &SQLBackendConf{Driver: "mysql", DSN: "root:123456@tcp(127.0.0.1:3306)test"}},
	} {
		assert.NotNil(t, bad.Parse(), "%+v", bad)
	}

	conf = &Config{Path: "a", Backend: BackendSQL, SQL: &SQLBackendConf{Driver: "mysql", DSN: "root:123456@tcp(127.0.0.1:3306)/test"}}
	assert.Nil(t, conf.Parse())
}


type testConfig struct {
	Meter *Config `yaml:"meter"`
}

func (p *testConfig) Parse() error {
	return c.Parse(p)
}

func TestConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Meters.txt")
	var conf testConfig
	require.Nil(t, c.LoadYAMl([]byte(yamlConfWith(path)), &conf))
	require.Nil(t, conf.Parse())
	assert.Equal(t, path, conf.Meter.Path)
	assert.True(t, conf.Meter.ClearAfterPersist)

	fs, err := conf.Meter.NewFileSystem()
	require.Nil(t, err)
	_, ok := fs.(*OSFileSystem)
	assert.True(t, ok)
}

func yamlConfWith(path string) string {
	return "meter:\n  path: " + strconv.Quote(path) + "\n  format: text\n  backend: file\n  clear_after_persist: true\n"
}

func TestConfigRedisBackend(t *testing.T) {
	s := miniredis.RunT(t)
	conf := &Config{
		Path:    "meterdata",
		Backend: BackendRedis,
		Redis: &RedisBackendConf{
			Group:     "meter",
			KeyPrefix: "census:",
		},
	}
	port, _ := strconv.Atoi(s.Port())
	var yamlRedis = "servers:\n- id: meter\n  host: " + s.Host() + "\n  port: " + strconv.Itoa(port) + "\ngroups:\n  meter: [meter]\n"
	require.Nil(t, c.LoadYAMl([]byte(yamlRedis), conf.Redis))
	require.Nil(t, conf.Parse())

	fs, err := conf.NewFileSystem()
	require.Nil(t, err)
	store := NewStore(fs, conf.Options()...)
	store.Increment("Test", 3)
	require.Nil(t, store.Persist(conf.Path, false))
	stored, err := s.Get("census:meterdata")
	assert.Nil(t, err)
	assert.Equal(t, `{"Test":3}`, stored)
}

func TestConfigSQLBackend(t *testing.T) {
	conf := &Config{
		Path:    "meterdata",
		Backend: BackendSQL,
		SQL:     &SQLBackendConf{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "census.db"), Table: "meters"},
	}
	require.Nil(t, conf.Parse())
	fs, err := conf.NewFileSystem()
	require.Nil(t, err)
	sqlFS, ok := fs.(*SQLFileSystem)
	require.True(t, ok)
	defer sqlFS.Close()

	store := NewStore(fs, conf.Options()...)
	store.Increment("Test", 3)
	require.Nil(t, store.Persist(conf.Path, false))
	content, err := fs.ReadAllText(conf.Path)
	assert.Nil(t, err)
	assert.Equal(t, `{"Test":3}`, content)

	conf.SQL.Table = "bad table"
	_, err = conf.NewFileSystem()
	assert.NotNil(t, err)
}

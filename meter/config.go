package meter

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/d0ngw/census/cache"
	c "github.com/d0ngw/census/common"
	"github.com/go-sql-driver/mysql"
)

// Backends of the snapshot
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQL    = "sql"
)

// RedisBackendConf is the conf of the redis backend
type RedisBackendConf struct {
	cache.RedisConf `yaml:",inline"`
	Group           string `yaml:"group"`
	KeyPrefix       string `yaml:"key_prefix"`
	Expire          int    `yaml:"expire"`
}

// SQLBackendConf is the conf of the sql backend
type SQLBackendConf struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Table  string `yaml:"table"`
}

// Config is the conf of a meter store
type Config struct {
	Path              string            `yaml:"path"`
	Format            string            `yaml:"format"`
	Mode              string            `yaml:"mode"`
	ClearAfterPersist bool              `yaml:"clear_after_persist"`
	LoadOnInit        bool              `yaml:"load_on_init"`
	Backend           string            `yaml:"backend"`
	Redis             *RedisBackendConf `yaml:"redis"`
	SQL               *SQLBackendConf   `yaml:"sql"`

	codec Codec
	mode  PersistMode
}

// Parse implements common.Configurer
func (p *Config) Parse() (err error) {
	if p.Path == "" {
		return errors.New("meter path must not be empty")
	}
	if p.codec, err = CodecByName(p.Format); err != nil {
		return err
	}
	if p.mode, err = ParsePersistMode(p.Mode); err != nil {
		return err
	}
	// loading the snapshot and merging it again on persist would count it twice
	if p.LoadOnInit && p.mode == PersistMerge {
		return fmt.Errorf("load_on_init requires mode %s", PersistOverwrite)
	}

	switch p.Backend {
	case "":
		p.Backend = BackendFile
	case BackendFile, BackendMemory:
	case BackendRedis:
		if p.Redis == nil || p.Redis.Group == "" {
			return errors.New("redis backend requires redis.group")
		}
		if err = p.Redis.RedisConf.Parse(); err != nil {
			return err
		}
		if len(p.Redis.RedisConf.GroupServers(p.Redis.Group)) == 0 {
			return fmt.Errorf("can't find redis group %s", p.Redis.Group)
		}
	case BackendSQL:
		if p.SQL == nil || c.IsEmpty(p.SQL.Driver, p.SQL.DSN) {
			return errors.New("sql backend requires sql.driver and sql.dsn")
		}
		if p.SQL.Driver == "mysql" {
			if _, err = mysql.ParseDSN(p.SQL.DSN); err != nil {
				return fmt.Errorf("invalid mysql dsn,err:%w", err)
			}
		}
	default:
		return fmt.Errorf("unknown meter backend %q", p.Backend)
	}
	return nil
}

// Options return the store options of the conf, it's available after Parse
func (p *Config) Options() []Option {
	return []Option{WithCodec(p.codec), WithPersistMode(p.mode)}
}

// NewFileSystem create the FileSystem of the backend, it's available after Parse
func (p *Config) NewFileSystem() (FileSystem, error) {
	switch p.Backend {
	case BackendFile:
		return NewOSFileSystem(), nil
	case BackendMemory:
		return NewMemFileSystem(nil), nil
	case BackendRedis:
		client := cache.NewRedisClientWithConf(&p.Redis.RedisConf)
		fs, err := NewRedisFileSystem(client, cache.NewParamConf(p.Redis.Group, p.Redis.KeyPrefix, p.Redis.Expire))
		if err != nil {
			return nil, err
		}
		return fs, nil
	case BackendSQL:
		db, err := sql.Open(p.SQL.Driver, p.SQL.DSN)
		if err != nil {
			return nil, err
		}
		fs, err := NewSQLFileSystem(db, p.SQL.Table)
		if err == nil {
			err = fs.EnsureTable()
		}
		if err != nil {
			db.Close()
			return nil, err
		}
		return fs, nil
	}
	return nil, fmt.Errorf("unknown meter backend %q", p.Backend)
}

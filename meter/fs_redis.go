package meter

import (
	"errors"
	"fmt"
	"os"

	"github.com/d0ngw/census/cache"
	c "github.com/d0ngw/census/common"
)

var _ FileSystem = (*RedisFileSystem)(nil)

// RedisFileSystem implements FileSystem with redis string keys, the key is the key prefix of param plus the path
type RedisFileSystem struct {
	client *cache.RedisClient
	param  *cache.ParamConf
}

// NewRedisFileSystem create RedisFileSystem
func NewRedisFileSystem(client *cache.RedisClient, param *cache.ParamConf) (*RedisFileSystem, error) {
	if c.HasNil(client, param) {
		return nil, errors.New("client and param must not be nil")
	}
	return &RedisFileSystem{client: client, param: param}, nil
}

// Exists implements FileSystem.Exists
func (p *RedisFileSystem) Exists(path string) (bool, error) {
	return p.client.Exists(p.param.NewParamKey(path))
}

// ReadAllText implements FileSystem.ReadAllText
func (p *RedisFileSystem) ReadAllText(path string) (string, error) {
	key := p.param.NewParamKey(path)
	content, ok, err := p.client.GetString(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("redis key %s: %w", key.Key(), os.ErrNotExist)
	}
	return content, nil
}

// WriteAllText implements FileSystem.WriteAllText
func (p *RedisFileSystem) WriteAllText(path, content string) error {
	return p.client.Set(p.param.NewParamKey(path), content)
}

// Close close the redis client
func (p *RedisFileSystem) Close() error {
	return p.client.Close()
}

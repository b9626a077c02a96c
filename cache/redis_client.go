package cache

import (
	"fmt"
	"hash/fnv"

	"github.com/gomodule/redigo/redis"
)

// RedisClient access redis servers by the group of Param
type RedisClient struct {
	groups map[string][]*RedisServer
}

// NewRedisClient create RedisClient with groups
func NewRedisClient(groups map[string][]*RedisServer) *RedisClient {
	return &RedisClient{groups: groups}
}

// NewRedisClientWithConf create RedisClient with a parsed RedisConf
func NewRedisClientWithConf(conf *RedisConf) *RedisClient {
	return NewRedisClient(conf.groups)
}

// getConn select the server by the hash of key in the group
func (p *RedisClient) getConn(param Param) (redis.Conn, error) {
	servers := p.groups[param.Group()]
	if len(servers) == 0 {
		return nil, fmt.Errorf("can't find redis group %s", param.Group())
	}
	h := fnv.New32a()
	h.Write([]byte(param.Key()))
	return servers[int(h.Sum32()%uint32(len(servers)))].GetConn()
}

// Do execute the redis command with the key of param as the first argument
func (p *RedisClient) Do(param Param, cmd string, args ...interface{}) (reply interface{}, err error) {
	conn, err := p.getConn(param)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return conn.Do(cmd, append([]interface{}{param.Key()}, args...)...)
}

// Exists check whether the key exists
func (p *RedisClient) Exists(param Param) (bool, error) {
	return redis.Bool(p.Do(param, "EXISTS"))
}

// GetString get the string value of key, ok is false when the key doesn't exist
func (p *RedisClient) GetString(param Param) (val string, ok bool, err error) {
	val, err = redis.String(p.Do(param, "GET"))
	if err == redis.ErrNil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set set the value of key, the key expires after Param.Expire seconds if it's greater than 0
func (p *RedisClient) Set(param Param, value interface{}) error {
	var err error
	if param.Expire() > 0 {
		_, err = p.Do(param, "SET", value, "EX", param.Expire())
	} else {
		_, err = p.Do(param, "SET", value)
	}
	return err
}

// Close close the pools of all servers
func (p *RedisClient) Close() error {
	var first error
	for _, servers := range p.groups {
		for _, server := range servers {
			if err := server.close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

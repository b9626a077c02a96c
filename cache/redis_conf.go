package cache

import (
	"fmt"
	"sort"
	"time"

	c "github.com/d0ngw/census/common"
	"github.com/gomodule/redigo/redis"
)

// 连接池的默认参数,时间单位为毫秒
const (
	DefaultConnectTimeout = 5 * 1000
	DefaultReadTimeout    = 5 * 1000
	DefaultWriteTimeout   = 5 * 1000
	DefaultMaxActive      = 20
	DefaultMaxIdle        = 2
	DefaultIdleTimeout    = 60 * 1000
)

// RedisPoolConf 连接池配置
type RedisPoolConf struct {
	ConnectTimeout int `yaml:"connect_timeout"` //连接超时,毫秒
	ReadTimeout    int `yaml:"read_timeout"`    //读超时,毫秒
	WriteTimeout   int `yaml:"write_timeout"`   //写超时,毫秒
	MaxIdle        int `yaml:"max_idle"`        //最大空闲连接
	MaxActive      int `yaml:"max_active"`      //最大活跃连接,0表示不限制
	IdleTimeout    int `yaml:"idle_timeout"`    //空闲连接超时,毫秒
}

func (p *RedisPoolConf) dialOptions(auth string) []redis.DialOption {
	options := []redis.DialOption{
		redis.DialConnectTimeout(time.Duration(p.ConnectTimeout) * time.Millisecond),
		redis.DialReadTimeout(time.Duration(p.ReadTimeout) * time.Millisecond),
		redis.DialWriteTimeout(time.Duration(p.WriteTimeout) * time.Millisecond),
	}
	if auth != "" {
		options = append(options, redis.DialPassword(auth))
	}
	return options
}

var defaultPool = &RedisPoolConf{
	ConnectTimeout: DefaultConnectTimeout,
	ReadTimeout:    DefaultReadTimeout,
	WriteTimeout:   DefaultWriteTimeout,
	MaxActive:      DefaultMaxActive,
	MaxIdle:        DefaultMaxIdle,
	IdleTimeout:    DefaultIdleTimeout,
}

// RedisServer 一个Redis实例
type RedisServer struct {
	ID   string `yaml:"id"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Auth string `yaml:"auth"`
	pool *redis.Pool
}

// Addr return host:port
func (p *RedisServer) Addr() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

func (p *RedisServer) initPool(poolConf *RedisPoolConf) error {
	if p.pool != nil {
		return fmt.Errorf("server %s already inited", p.ID)
	}
	addr, options := p.Addr(), poolConf.dialOptions(p.Auth)
	p.pool = &redis.Pool{
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr, options...)
		},
		MaxActive:   poolConf.MaxActive,
		MaxIdle:     poolConf.MaxIdle,
		IdleTimeout: time.Duration(poolConf.IdleTimeout) * time.Millisecond,
		Wait:        true,
	}
	return nil
}

// GetConn acquire redis conn
func (p *RedisServer) GetConn() (redis.Conn, error) {
	if p.pool == nil {
		return nil, fmt.Errorf("server %s has no pool", p.ID)
	}
	return p.pool.Get(), nil
}

func (p *RedisServer) close() error {
	if p.pool == nil {
		return nil
	}
	return p.pool.Close()
}

// RedisConf 实例与分组配置,每个分组的实例有独立的连接池
type RedisConf struct {
	Servers   []*RedisServer            `yaml:"servers"`
	Groups    map[string][]string       `yaml:"groups"`       //key为组ID,value为server id列表
	Pool      *RedisPoolConf            `yaml:"pool"`         //默认的连接池配置
	GroupPool map[string]*RedisPoolConf `yaml:"groups_pools"` //分组的连接池配置
	groups    map[string][]*RedisServer
}

// Parse implements common.Configurer
func (p *RedisConf) Parse() error {
	if p == nil {
		c.Warnf("no redis conf")
		return nil
	}

	servers := map[string]*RedisServer{}
	addrs := map[string]struct{}{}
	for _, server := range p.Servers {
		if c.IsEmpty(server.ID, server.Host) {
			return fmt.Errorf("invalid redis server conf,id and host must not be empty")
		}
		if server.Port <= 0 {
			return fmt.Errorf("invalid redis server conf,port %d", server.Port)
		}
		if _, ok := servers[server.ID]; ok {
			return fmt.Errorf("duplicate server id %s", server.ID)
		}
		if _, ok := addrs[server.Addr()]; ok {
			return fmt.Errorf("duplicate server %s", server.Addr())
		}
		addrs[server.Addr()] = struct{}{}
		servers[server.ID] = server
	}

	groups := map[string][]*RedisServer{}
	for groupID, serverIDs := range p.Groups {
		if groupID == "" {
			return fmt.Errorf("invalid redis group id")
		}
		if len(serverIDs) == 0 {
			return fmt.Errorf("redis group %s has no servers", groupID)
		}
		poolConf := p.groupPool(groupID)

		//按id排序,保证key到实例的映射稳定
		ids := append([]string(nil), serverIDs...)
		sort.Strings(ids)
		groupServers := make([]*RedisServer, 0, len(ids))
		for i, serverID := range ids {
			if i > 0 && ids[i-1] == serverID {
				return fmt.Errorf("duplicate server id %s in group %s", serverID, groupID)
			}
			server := servers[serverID]
			if server == nil {
				return fmt.Errorf("can't find server id %s", serverID)
			}
			groupServer := *server
			if err := groupServer.initPool(poolConf); err != nil {
				return err
			}
			groupServers = append(groupServers, &groupServer)
		}
		groups[groupID] = groupServers
	}
	p.groups = groups
	return nil
}

func (p *RedisConf) groupPool(groupID string) *RedisPoolConf {
	if poolConf := p.GroupPool[groupID]; poolConf != nil {
		return poolConf
	}
	if p.Pool != nil {
		return p.Pool
	}
	return defaultPool
}

// GroupServers return the servers of group id, it's available after Parse
func (p *RedisConf) GroupServers(groupID string) []*RedisServer {
	return p.groups[groupID]
}

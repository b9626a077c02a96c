package cache

import (
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	port, err := strconv.Atoi(s.Port())
	require.Nil(t, err)
	conf := &RedisConf{
		Servers: []*RedisServer{{ID: "test", Host: s.Host(), Port: port}},
		Groups:  map[string][]string{"test": {"test"}},
	}
	require.Nil(t, conf.Parse())
	require.Equal(t, 1, len(conf.GroupServers("test")))
	return NewRedisClientWithConf(conf), s
}

func TestRedisClient(t *testing.T) {
	r, s := newTestClient(t)
	param := NewParamConf("test", "test_", 0)

	ageParam := param.NewParamKey("age")
	exist, err := r.Exists(ageParam)
	assert.Nil(t, err)
	assert.False(t, exist)

	_, ok, err := r.GetString(ageParam)
	assert.Nil(t, err)
	assert.False(t, ok)

	assert.Nil(t, r.Set(ageParam, "10"))
	v, ok, err := r.GetString(ageParam)
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, "10", v)
	assert.Equal(t, "test_age", ageParam.Key())

	expireKey := NewParamConf("test", "test_", 20).NewParamKey("age_ex")
	assert.Nil(t, r.Set(expireKey, "1"))
	assert.True(t, s.TTL("test_age_ex") > 0)
	assert.Equal(t, time.Duration(0), s.TTL("test_age"))

	_, err = r.Exists(NewParamConf("none", "", 0).NewParamKey("a"))
	assert.NotNil(t, err)
}

func TestRedisConfParse(t *testing.T) {
	conf := &RedisConf{
		Servers: []*RedisServer{{ID: "a", Host: "127.0.0.1", Port: 6379}, {ID: "a", Host: "127.0.0.1", Port: 6380}},
	}
	assert.NotNil(t, conf.Parse())

	conf = &RedisConf{
		Servers: []*RedisServer{{ID: "a", Host: "127.0.0.1", Port: 0}},
	}
	assert.NotNil(t, conf.Parse())

	conf = &RedisConf{
		Servers: []*RedisServer{{ID: "a", Host: "127.0.0.1", Port: 6379}},
		Groups:  map[string][]string{"g": {"b"}},
	}
	assert.NotNil(t, conf.Parse())

	conf = &RedisConf{
		Servers: []*RedisServer{{ID: "a", Host: "127.0.0.1", Port: 6379}},
		Groups:  map[string][]string{"g": {"a", "a"}},
	}
	assert.NotNil(t, conf.Parse())

	ids := []string{"b", "a"}
	conf = &RedisConf{
		Servers: []*RedisServer{{ID: "a", Host: "127.0.0.1", Port: 6379}, {ID: "b", Host: "127.0.0.1", Port: 6380}},
		Groups:  map[string][]string{"g": ids},
		Pool:    &RedisPoolConf{MaxActive: 1},
	}
	assert.Nil(t, conf.Parse())
	assert.Equal(t, []string{"b", "a"}, ids)
	servers := conf.GroupServers("g")
	assert.Equal(t, 2, len(servers))
	assert.Equal(t, "127.0.0.1:6379", servers[0].Addr())
	assert.Nil(t, NewRedisClientWithConf(conf).Close())

	var nilConf *RedisConf
	assert.Nil(t, nilConf.Parse())
}

type pair struct {
	Name  string
	Value int64
}

func TestMsgPack(t *testing.T) {
	src := []pair{{Name: "a", Value: 1}, {Name: "b", Value: -2}}
	b, err := MsgPackEncodeBytes(src)
	assert.Nil(t, err)
	// fixarray(2) of fixarray(2)
	assert.Equal(t, byte(0x92), b[0])
	assert.Equal(t, byte(0x92), b[1])

	var dest []pair
	assert.Nil(t, MsgPackDecodeBytes(b, &dest))
	assert.Equal(t, src, dest)

	var raw []interface{}
	assert.Nil(t, MsgPackDecodeBytes(b, &raw))
	assert.Equal(t, []interface{}{[]interface{}{"a", int64(1)}, []interface{}{"b", int64(-2)}}, raw)

	assert.NotNil(t, MsgPackDecodeBytes(nil, &dest))
	assert.NotNil(t, MsgPackDecodeBytes(append(b, 0x01), &dest))
}

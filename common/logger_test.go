package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	defer SetLogLevel(Debug)
	SetLogLevel(Debug)
	Debugf("this is a test")
	assert.True(t, DebugEnabled())
	assert.True(t, InfoEnabled())
	SetLogLevel(Info)
	assert.False(t, DebugEnabled())
	assert.True(t, InfoEnabled())
	Debugf("this is a test, no debug")
	Infof("this is a test, info")
	SetLogLevel("")
	assert.False(t, DebugEnabled())
	assert.True(t, InfoEnabled())
	Infof("this is a test, no level")
	Logf(Warn, "The is a test, warn")
	SetLogLevel(Error)
	assert.False(t, DebugEnabled())
	assert.False(t, InfoEnabled())
	assert.False(t, WarnEnabled())
	assert.True(t, ErrorEnabled())
	Infof("this is a test, no error")
	Errorf("this is a test, error")
}

func TestLogConfigParse(t *testing.T) {
	defer SetLogger(NewZapLogger(&LogConfig{Env: EnvDevelopment, NoCaller: true}))

	conf := &LogConfig{Env: EnvProduction, FileName: filepath.Join(t.TempDir(), "census.log"), MaxSize: 1}
	assert.Nil(t, conf.Parse())
	assert.False(t, DebugEnabled())
	assert.True(t, InfoEnabled())
	Infof("write to %s", conf.FileName)
	SyncLog()

	bad := &LogConfig{Level: "verbose"}
	assert.NotNil(t, bad.Parse())
}

package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type aService struct {
	BaseService
}

type failService struct {
	BaseService
}

func (p *failService) Init() error {
	return errors.New("init fail")
}

type noStopService struct {
	BaseService
}

func (p *noStopService) Stop() bool {
	return false
}

func TestServiceLifecycle(t *testing.T) {
	as := &aService{BaseService{SName: "a"}}
	assert.Equal(t, NEW, as.State())
	assert.True(t, ServiceInit(as))
	assert.Equal(t, INITED, as.State())
	assert.True(t, ServiceInit(as))
	assert.True(t, ServiceStart(as))
	assert.Equal(t, RUNNING, as.State())
	assert.True(t, ServiceStop(as))
	assert.Equal(t, TERMINATED, as.State())
	assert.Equal(t, "*common.aService#a", ServiceName(as))
	assert.Equal(t, "TERMINATED", as.State().String())
}

func TestServiceFail(t *testing.T) {
	fs := &failService{}
	assert.False(t, ServiceInit(fs))
	assert.Equal(t, FAILED, fs.State())
	assert.False(t, ServiceStart(fs))

	ns := &noStopService{}
	assert.True(t, ServiceInit(ns))
	assert.True(t, ServiceStart(ns))
	assert.False(t, ServiceStop(ns))
	assert.Equal(t, FAILED, ns.State())
}

func TestIsValidServiceState(t *testing.T) {
	assert.True(t, IsValidServiceState(NEW, INITED))
	assert.False(t, IsValidServiceState(NEW, RUNNING))
	assert.False(t, IsValidServiceState(TERMINATED, NEW))
}

package common

import (
	"fmt"
	"sync"
)

// ServiceState 服务的状态
type ServiceState uint32

// 服务状态
const (
	NEW ServiceState = iota
	INITED
	STARTING
	RUNNING
	STOPPING
	TERMINATED
	FAILED
)

var serviceStateNames = [...]string{"NEW", "INITED", "STARTING", "RUNNING", "STOPPING", "TERMINATED", "FAILED"}

func (p ServiceState) String() string {
	if int(p) < len(serviceStateNames) {
		return serviceStateNames[p]
	}
	return fmt.Sprintf("ServiceState(%d)", uint32(p))
}

// 每个状态可以转移到的状态,TERMINATED与FAILED是终态
var serviceTransitions = map[ServiceState][]ServiceState{
	NEW:      {INITED, FAILED, TERMINATED},
	INITED:   {STARTING, FAILED, TERMINATED},
	STARTING: {RUNNING, FAILED, TERMINATED},
	RUNNING:  {STOPPING, FAILED, TERMINATED},
	STOPPING: {TERMINATED, FAILED},
}

// IsValidServiceState 检查状态转移是否有效
func IsValidServiceState(oldState, newState ServiceState) bool {
	for _, s := range serviceTransitions[oldState] {
		if s == newState {
			return true
		}
	}
	return false
}

// Service 统一的服务接口
type Service interface {
	// Init 初始化,失败时返回原因
	Init() error
	Name() string
	Start() bool
	Stop() bool
	State() ServiceState
	setState(newState ServiceState) bool
}

// ServiceInit 初始化服务,已经初始化的服务直接返回true
func ServiceInit(service Service) bool {
	if service.State() == INITED {
		Infof("%s has been inited,skip", ServiceName(service))
		return true
	}
	if err := service.Init(); err != nil {
		Errorf("init %s fail,err:%v", ServiceName(service), err)
		service.setState(FAILED)
		return false
	}
	return transit(service, "init", INITED, func() bool { return true })
}

// ServiceStart 启动服务
func ServiceStart(service Service) bool {
	service.setState(STARTING)
	return transit(service, "start", RUNNING, service.Start)
}

// ServiceStop 停止服务
func ServiceStop(service Service) bool {
	service.setState(STOPPING)
	return transit(service, "stop", TERMINATED, service.Stop)
}

func transit(service Service, action string, target ServiceState, fn func() bool) bool {
	if fn() && service.setState(target) {
		return true
	}
	Errorf("%s %s fail", action, ServiceName(service))
	service.setState(FAILED)
	return false
}

// BaseService 可被嵌入的Service实现,Init/Start/Stop均为空操作
type BaseService struct {
	SName     string
	state     ServiceState
	stateLock sync.RWMutex
}

// Name implements Service.Name
func (p *BaseService) Name() string {
	return p.SName
}

// Init implements Service.Init
func (p *BaseService) Init() error {
	return nil
}

// Start implements Service.Start
func (p *BaseService) Start() bool {
	return true
}

// Stop implements Service.Stop
func (p *BaseService) Stop() bool {
	return true
}

// State implements Service.State
func (p *BaseService) State() ServiceState {
	p.stateLock.RLock()
	defer p.stateLock.RUnlock()
	return p.state
}

func (p *BaseService) setState(newState ServiceState) bool {
	p.stateLock.Lock()
	defer p.stateLock.Unlock()
	if !IsValidServiceState(p.state, newState) {
		Errorf("invalid state transfer %s->%s,%s", p.state, newState, p.Name())
		return false
	}
	p.state = newState
	return true
}

// ServiceName 类型名加上服务名,如*meter.Service#census
func ServiceName(service Service) string {
	name := fmt.Sprintf("%T", service)
	if service.Name() != "" {
		name += "#" + service.Name()
	}
	return name
}

package meter

import (
	"errors"
	"io"

	c "github.com/d0ngw/census/common"
)

// Service owns a SyncStore built from Config. Init loads the snapshot if Config.LoadOnInit is set,
// Stop persists memory to Config.Path.
type Service struct {
	c.BaseService
	conf  *Config
	fs    FileSystem
	store *SyncStore
}

// NewService create meter service with a parsed conf
func NewService(name string, conf *Config) *Service {
	return &Service{
		BaseService: c.BaseService{SName: name},
		conf:        conf,
	}
}

// Init implements common.Service.Init
func (p *Service) Init() error {
	if p.conf == nil {
		return errors.New("conf must be set")
	}
	fs, err := p.conf.NewFileSystem()
	if err != nil {
		return err
	}
	store := NewStore(fs, p.conf.Options()...)
	if p.conf.LoadOnInit {
		if err = store.Load(p.conf.Path); err != nil {
			closeFileSystem(fs)
			return err
		}
		c.Infof("%s loaded %d meters from %s", p.Name(), store.Len(), p.conf.Path)
	}
	p.fs = fs
	p.store = NewSyncStore(store)
	return nil
}

// Store return the store, it's available after Init
func (p *Service) Store() *SyncStore {
	return p.store
}

// Persist write the store to Config.Path
func (p *Service) Persist() error {
	if p.store == nil {
		return errors.New("service is not inited")
	}
	return p.store.Persist(p.conf.Path, p.conf.ClearAfterPersist)
}

// Stop implements common.Service.Stop
func (p *Service) Stop() bool {
	if p.store == nil {
		return false
	}
	defer closeFileSystem(p.fs)
	if err := p.Persist(); err != nil {
		c.Errorf("%s persist to %s fail,err:%v", p.Name(), p.conf.Path, err)
		return false
	}
	c.Infof("%s persisted to %s", p.Name(), p.conf.Path)
	return true
}

func closeFileSystem(fs FileSystem) {
	if closer, ok := fs.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.Warnf("close %T fail,err:%v", fs, err)
		}
	}
}

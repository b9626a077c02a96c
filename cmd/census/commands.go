package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/maruel/subcommands"

	c "github.com/d0ngw/census/common"
	"github.com/d0ngw/census/meter"
)

// exit codes
const (
	exitOK = iota
	exitUsage
	exitRuntime
)

// appConfig is the yaml conf of census
type appConfig struct {
	c.AppConfig `yaml:",inline"`
	Meter       *meter.Config `yaml:"meter"`
}

// Parse implements common.Configurer
func (p *appConfig) Parse() error {
	if p.Meter == nil {
		return errors.New("no meter conf")
	}
	return c.Parse(p)
}

func loadConfig(path string) (*appConfig, error) {
	if path == "" {
		return nil, errors.New("-conf is required")
	}
	conf := &appConfig{}
	if err := c.LoadConfig(conf, "", filepath.Dir(path), filepath.Base(path)); err != nil {
		return nil, err
	}
	if err := conf.Parse(); err != nil {
		return nil, err
	}
	return conf, nil
}

type baseRun struct {
	subcommands.CommandRunBase
	conf string
}

func (r *baseRun) registerFlags() {
	r.Flags.StringVar(&r.conf, "conf", "", "path of the yaml conf")
}

func (r *baseRun) usageErr(a subcommands.Application, msg string) int {
	fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), msg)
	return exitUsage
}

func (r *baseRun) runtimeErr(a subcommands.Application, err error) int {
	fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)
	c.SyncLog()
	return exitRuntime
}

// loadStore build a store from conf and load the snapshot at the meter path
func loadStore(conf *meter.Config) (*meter.Store, error) {
	fs, err := conf.NewFileSystem()
	if err != nil {
		return nil, err
	}
	if closer, ok := fs.(io.Closer); ok {
		defer closer.Close()
	}
	store := meter.NewStore(fs, conf.Options()...)
	if err := store.Load(conf.Path); err != nil {
		return nil, err
	}
	return store, nil
}

var cmdMeter = &subcommands.Command{
	UsageLine: "meter -conf <conf> <name> [amount]",
	ShortDesc: "increments a meter and persists it",
	LongDesc:  "Increments the meter by amount (default 1) and persists it to the configured path.",
	CommandRun: func() subcommands.CommandRun {
		r := &meterRun{}
		r.registerFlags()
		return r
	},
}

type meterRun struct {
	baseRun
}

func (r *meterRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) < 1 || len(args) > 2 {
		return r.usageErr(a, "expect <name> [amount]")
	}
	amount := int64(1)
	if len(args) == 2 {
		v, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return r.usageErr(a, fmt.Sprintf("invalid amount %q", args[1]))
		}
		amount = v
	}
	conf, err := loadConfig(r.conf)
	if err != nil {
		return r.runtimeErr(a, err)
	}

	svc := meter.NewService("census", conf.Meter)
	if !c.ServiceInit(svc) || !c.ServiceStart(svc) {
		return r.runtimeErr(a, fmt.Errorf("start %s fail", c.ServiceName(svc)))
	}
	v, err := svc.Store().Increment(args[0], amount)
	if err != nil {
		c.ServiceStop(svc)
		return r.runtimeErr(a, err)
	}
	if !c.ServiceStop(svc) {
		return r.runtimeErr(a, fmt.Errorf("persist %s fail", conf.Meter.Path))
	}
	fmt.Fprintf(a.GetOut(), "%s %d\n", args[0], v)
	return exitOK
}

var cmdGet = &subcommands.Command{
	UsageLine: "get -conf <conf> <name>",
	ShortDesc: "prints the persisted value of a meter",
	LongDesc:  "Prints the persisted value of a meter, or \"absent\" if it was never metered.",
	CommandRun: func() subcommands.CommandRun {
		r := &getRun{}
		r.registerFlags()
		return r
	},
}

type getRun struct {
	baseRun
}

func (r *getRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 1 {
		return r.usageErr(a, "expect <name>")
	}
	conf, err := loadConfig(r.conf)
	if err != nil {
		return r.runtimeErr(a, err)
	}
	store, err := loadStore(conf.Meter)
	if err != nil {
		return r.runtimeErr(a, err)
	}
	v, ok, err := store.Read(args[0])
	if err != nil {
		return r.runtimeErr(a, err)
	}
	if !ok {
		fmt.Fprintln(a.GetOut(), "absent")
		return exitOK
	}
	fmt.Fprintln(a.GetOut(), v)
	return exitOK
}

var cmdDump = &subcommands.Command{
	UsageLine: "dump -conf <conf>",
	ShortDesc: "prints all persisted meters",
	LongDesc:  "Prints all persisted meters in the stored order, one `name value` per line.",
	CommandRun: func() subcommands.CommandRun {
		r := &dumpRun{}
		r.registerFlags()
		return r
	},
}

type dumpRun struct {
	baseRun
}

func (r *dumpRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		return r.usageErr(a, "unexpected arguments")
	}
	conf, err := loadConfig(r.conf)
	if err != nil {
		return r.runtimeErr(a, err)
	}
	store, err := loadStore(conf.Meter)
	if err != nil {
		return r.runtimeErr(a, err)
	}
	for _, e := range store.Entries() {
		fmt.Fprintf(a.GetOut(), "%s %d\n", e.Name, e.Value)
	}
	return exitOK
}

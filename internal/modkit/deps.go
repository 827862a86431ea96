package modkit

import (
	"prlens/internal/core/engine"
	"prlens/internal/platform/config"
	"prlens/internal/platform/logger"
	"prlens/internal/platform/store"
)

// Deps holds the dependencies handed to every module
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	Store  *store.Store
	Engine *engine.Engine
}

// Logger returns Log or, when unset, the root logger named after component
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}

// MustEngine returns the engine or panics, for modules that cannot run without it
func (d Deps) MustEngine() *engine.Engine {
	if d.Engine == nil {
		panic("modkit: nil engine in deps")
	}
	return d.Engine
}

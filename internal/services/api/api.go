// Package api provides the HTTP API for the application
package api

import (
	"prlens/internal/adapters/events"
	"prlens/internal/adapters/search"
	"prlens/internal/core/engine"
	"prlens/internal/core/version"
	"prlens/internal/platform/config"
	perr "prlens/internal/platform/errors"
	"prlens/internal/platform/logger"
	phttp "prlens/internal/platform/net/http"
	"prlens/internal/platform/store"

	"prlens/internal/modkit"
	"prlens/internal/modkit/httpkit"
	"prlens/internal/modkit/module"
	"prlens/internal/modkit/swaggerkit"

	comod "prlens/internal/services/api/contributors/module"
	metamod "prlens/internal/services/api/meta/module"
	prsmod "prlens/internal/services/api/pulls/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	// Engine overrides the store backed engine, used by tests
	Engine *engine.Engine
}

// NewEngine builds the analytics engine over the configured event source.
// EVENT_SOURCE picks ch or pg, repo search and list membership need pg
func NewEngine(cfg config.Conf, st *store.Store) (*engine.Engine, error) {
	if st == nil {
		return nil, perr.Unavailablef("api: no store configured")
	}

	var src engine.Source
	switch kind := cfg.MayEnum("EVENT_SOURCE", "ch", "ch", "pg"); kind {
	case "pg":
		if st.PG == nil {
			return nil, perr.Unavailablef("api: EVENT_SOURCE=pg but postgres is disabled")
		}
		src = events.NewPG(st.PG)
	default:
		if st.CH == nil {
			return nil, perr.Unavailablef("api: EVENT_SOURCE=ch but clickhouse is disabled")
		}
		src = events.NewCH(st.CH)
	}

	var opts []engine.Option
	if st.PG != nil {
		opts = append(opts,
			engine.WithRepoSearch(search.NewRepos(st.PG).WithCap(cfg.MayInt("SEARCH_LIMIT", 0))),
			engine.WithListMembership(search.NewLists(st.PG)),
		)
	}
	return engine.New(src, opts...), nil
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) error {
	eng := opt.Engine
	if eng == nil {
		var err error
		if eng, err = NewEngine(opt.Config, opt.Store); err != nil {
			return err
		}
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:    opt.Logger,
		Cfg:    opt.Config,
		Store:  opt.Store,
		Engine: eng,
	}

	mods := []module.Module{
		metamod.New(deps),
		prsmod.New(deps),
		comod.New(deps),
	}

	swaggerkit.Register(func(spec map[string]any) {
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info("prlens-api").Version
		}
	})
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackOptionsFrom(opt.Config)), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	deps.Logger("api").Info().
		Strs("modules", module.Names()).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("api mounted")
	return nil
}

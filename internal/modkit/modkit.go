// Package modkit wires API modules: shared deps, build options and the module contract
package modkit

import "prlens/internal/modkit/module"

// Module is the contract every API module satisfies
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// Package container provides a small Laravel-style IoC container and
// Service Provider system.
//
// Because Go has no runtime constructor reflection, auto-wiring is replaced
// by explicit factory functions.
//
// # Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&providers.LoggingServiceProvider{})
//  3. Boot: registry.Boot()        — safe to resolve everything after this
//  4. Serve
//
// # Bindings
//
//	c.Singleton("log", factory)    // created once, reused
//	c.Instance("config", cfg)      // pre-built value
//	c.Alias("log", "logger")
//
// # Resolving
//
//	raw := c.Make("log")
//	logger := container.Resolve[*zap.Logger](c, "log")
package container

// Package internal contains the core implementation packages for playground.
//
// # Package Organization
//
//   - runner: units, the id sequence and the timing wrapper (Benchmark)
//   - registry: id-ordered storage of units with id and name lookup
//   - organizer: the builder and the dispatcher over a registry
//   - lessons: the catalogue of demo programs
//   - config: Viper-backed configuration with hot reload
//   - logging: slog-backed structured logging
//   - errors: the structured RunError type
//   - version: build information
//
// # Dependency Direction
//
// cmd wires config, logging and lessons into an organizer. organizer
// depends on registry and runner; registry depends on runner; runner
// depends only on errors and logging.
package internal

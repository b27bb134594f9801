// Package cli implements the orbit command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a plain function that takes its inputs and an io.Writer.
// The general structure separates:
//
//   - Command definitions (cobra.Command instances and their flags)
//   - Command functions (renderCommand, watchCommand, layoutInit, ...)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "orbit" with subcommands:
//
//	orbit render                 - Draw one ring and exit
//	orbit watch                  - Feed a ring from progress reports on stdin
//	orbit demo                   - Interactive dashboard of bound rings
//	orbit layout [init|show|remove|path] - Manage saved rings
//	orbit config [set|show|path] - Inspect and edit configuration
//	orbit version                - Print build information
//	orbit completion <shell>     - Generate shell completions
//
// # Configuration
//
// The root command's PersistentPreRunE loads the config before any
// subcommand runs and applies its appearance section to the process-wide
// defaults, so every ring created afterwards picks them up. version and
// completion skip loading so they work with a broken config.
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command.
// RingFlags and AddRingFlags give render and watch the same --size, --fill
// and --track flags, layered over the config's ring settings.
//
// # Terminal Programs
//
// demo and watch run Bubble Tea programs through runProgram, which routes
// the standard logger away from the terminal while the program owns it.
// With ORBIT_DEBUG set, log output goes to $XDG_STATE_HOME/orbit/debug.log.
package cli

// Package cli wires the weightdial commands.
//
// The root command opens the dial window. Subcommands render a PNG snapshot,
// run the dial in a terminal and print the dial geometry. Configuration comes
// from defaults, then an optional TOML file given by --config, then any flag
// set on the command line.
package cli

// Package commands defines the tagfinder CLI and wires dependencies for subcommands.
//
// Commands
//
//   - fetch        Fetch the tracker's latest location once
//   - login        Log in to the gateway and save the session
//   - dashboard    Serve a local map that fetches on demand
//   - keygen       Generate a tracker key pair
//   - advkey       Print the advertisement key of an existing key file
//   - history      List previously found locations
//   - config init  Write a default config file
//
// # Implementation
//
// The root command loads settings (flags, environment, config file) before any
// subcommand runs. Commands that talk to the gateway build the dependency
// graph (stores, gateway client, services) through app.NewWire and close it
// when done.
package commands

// Package config manages scenario files for the robot grid simulator.
//
// Scenarios are JSON files describing the construction parameters of a
// simulation: grid dimensions, the expandable flag, initial obstacles, and
// the robot's starting position, heading, and battery. Files load through
// koanf with ROBOTSIM_-prefixed environment variables overriding individual
// fields, and every loaded scenario is validated and cached.
package config

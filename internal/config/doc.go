// Package config provides configuration loading, merging, and validation
// facilities for the record server and the dashboard client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// The main entry points are [GetServerConfig] for the record server and
// [GetClientConfig] for the dashboard.
package config

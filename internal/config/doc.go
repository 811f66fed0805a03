// Package config manages user-level settings stored at ~/.tooldock/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// default sync targets and whether the startup update check runs.
package config

/*
Copyright 2026 jr42.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads dhcp6clientd's configuration from a YAML file,
// DHCP6_-prefixed environment variables, and command-line flags, in that
// order of increasing precedence, the same layered-viper shape
// coredhcp-coredhcp's config package uses for its own DHCP daemon.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the fully resolved set of knobs dhcp6clientd needs to start an
// engine on one interface.
type Config struct {
	Interface string

	ServerPort uint16
	ClientPort uint16

	InitialRequestTimeout time.Duration
	RequestRetries        uint16
	MinRenewTimeout       time.Duration

	MaxLeaseDuration time.Duration
	IgnoreNaks       bool

	LogLevel  int
	LogFormat string
}

// BindFlags registers every Config field on fs, for use before Parse-ing
// os.Args.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("interface", "", "network interface to run the DHCPv6 client on")
	fs.Uint16("server-port", 547, "DHCPv6 server UDP port")
	fs.Uint16("client-port", 546, "DHCPv6 client UDP port")
	fs.Duration("initial-request-timeout", 2*time.Second, "initial retransmission timeout for Solicit/Request")
	fs.Uint16("request-retries", 5, "number of Request retries before restarting discovery")
	fs.Duration("min-renew-timeout", 60*time.Second, "floor on the renew/rebind retransmission interval")
	fs.Duration("max-lease-duration", 0, "cap on the server-provided lease duration (0 disables the cap)")
	fs.Bool("ignore-naks", false, "ignore Decline messages instead of restarting discovery")
	fs.Int("log-level", 0, "verbosity (0 = info, higher = more verbose)")
	fs.String("log-format", "console", "log encoding: console or json")
}

// Load merges a YAML config file (if present), DHCP6_-prefixed environment
// variables, and already-parsed flags into a Config.
func Load(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DHCP6")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	c := &Config{
		Interface:             v.GetString("interface"),
		ServerPort:            uint16(v.GetUint32("server-port")),
		ClientPort:            uint16(v.GetUint32("client-port")),
		InitialRequestTimeout: v.GetDuration("initial-request-timeout"),
		RequestRetries:        uint16(v.GetUint32("request-retries")),
		MinRenewTimeout:       v.GetDuration("min-renew-timeout"),
		MaxLeaseDuration:      v.GetDuration("max-lease-duration"),
		IgnoreNaks:            v.GetBool("ignore-naks"),
		LogLevel:              v.GetInt("log-level"),
		LogFormat:             v.GetString("log-format"),
	}

	if c.Interface == "" {
		return nil, fmt.Errorf("config: --interface is required")
	}
	return c, nil
}

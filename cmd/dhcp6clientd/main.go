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

// Command dhcp6clientd runs a single-interface DHCPv6 client: it performs
// combined ICMPv6 Router Discovery and stateful DHCPv6 address acquisition,
// logging every configuration change it observes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jr42/dhcpv6-client/internal/config"
	"github.com/jr42/dhcpv6-client/internal/dhcpv6client"
	"github.com/jr42/dhcpv6-client/internal/hostnet"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dhcp6clientd:", err)
		os.Exit(1)
	}
}

func run() error {
	fs := pflag.NewFlagSet("dhcp6clientd", pflag.ExitOnError)
	configFile := fs.String("config", "", "optional YAML config file")
	config.BindFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := config.Load(*configFile, fs)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}

	hostCtx, err := hostnet.NewInterfaceContext(cfg.Interface)
	if err != nil {
		return err
	}

	icmpv6Sock, err := hostnet.NewICMPv6Socket(hostCtx.Interface())
	if err != nil {
		return err
	}
	defer icmpv6Sock.Close()

	udpSock, err := hostnet.NewUDPSocket(hostCtx.Interface(), cfg.ClientPort)
	if err != nil {
		return err
	}
	defer udpSock.Close()

	socket := dhcpv6client.New()
	socket.SetLogger(log)
	socket.SetPorts(cfg.ServerPort, cfg.ClientPort)
	socket.SetIgnoreNaks(cfg.IgnoreNaks)
	socket.SetRetryConfig(dhcpv6client.RetryConfig{
		InitialRequestTimeout: cfg.InitialRequestTimeout,
		RequestRetries:        cfg.RequestRetries,
		MinRenewTimeout:       cfg.MinRenewTimeout,
	})
	if cfg.MaxLeaseDuration > 0 {
		d := cfg.MaxLeaseDuration
		socket.SetMaxLeaseDuration(&d)
	}

	engine := hostnet.NewEngine(socket, hostCtx, icmpv6Sock, udpSock, log, func(ev dhcpv6client.Event) {
		logConfigEvent(log, ev)
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("starting DHCPv6 client", "interface", cfg.Interface)
	if err := engine.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("engine stopped: %w", err)
	}
	return nil
}

func logConfigEvent(log logr.Logger, ev dhcpv6client.Event) {
	if ev.Kind == dhcpv6client.EventDeconfigured {
		log.Info("interface deconfigured")
		return
	}
	log.Info("interface configured",
		"address", ev.Config.Address,
		"router", ev.Config.Router,
		"dnsServers", ev.Config.DNSServers,
	)
}

// newLogger builds a logr.Logger backed by zap, mirroring the
// zap.NewDevelopmentConfig/zap.NewProductionConfig split the teacher
// project's controller-runtime logger setup makes, minus the
// controller-runtime dependency itself.
func newLogger(format string, verbosity int) (logr.Logger, error) {
	var zc zap.Config
	if format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	// logr verbosity increases with detail; zap severity decreases with
	// detail, so a higher --log-level pushes the zap level more negative.
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))

	zl, err := zc.Build()
	if err != nil {
		return logr.Logger{}, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(zl), nil
}

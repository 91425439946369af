// Copyright (c) 2024 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	keyFileFlag = cli.StringFlag{
		Name:   "keyfile",
		Usage:  "private key file path",
		EnvVar: "VRFKEY_KEYFILE",
	}
	keyHexFlag = cli.StringFlag{
		Name:   "keyhex",
		Usage:  "private key as hex",
		EnvVar: "VRFKEY_KEYHEX",
	}
	pubFlag = cli.StringFlag{
		Name:  "pub",
		Usage: "compressed public key as hex",
	}
	proofFlag = cli.StringFlag{
		Name:  "pi",
		Usage: "proof as hex",
	}
	roundsFlag = cli.Uint64Flag{
		Name:  "rounds",
		Value: 1000,
		Usage: "number of prove/verify rounds",
	}
	verbosityFlag = cli.Uint64Flag{
		Name:   "verbosity",
		Value:  3,
		Usage:  "log verbosity (0-9)",
		EnvVar: "VRFKEY_VERBOSITY",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "output logs in JSON format",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "enables metrics collection",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:   "metrics-addr",
		Value:  "localhost:2112",
		Usage:  "metrics service listening address",
		EnvVar: "VRFKEY_METRICS_ADDR",
	}
)

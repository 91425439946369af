// Copyright (c) 2025 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/totient-labs/ecvrf/metrics"
	"github.com/totient-labs/ecvrf/vrf"
)

func benchAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}

	rounds, err := readIntFromUInt64Flag(ctx.Uint64(roundsFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse rounds flag")
	}

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := startMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return fmt.Errorf("unable to start metrics server - %w", err)
		}
		log.Info("metrics server started", "url", url)
		defer closeFunc()
	}

	kp, err := vrf.GenerateKeyPair()
	if err != nil {
		return err
	}
	engine := vrf.NewSecp256k1Sha256Tai()
	alpha := make([]byte, 32)

	bar := pb.New64(int64(rounds)).SetMaxWidth(90).Start()
	defer func() { bar.NotPrint = true }()

	start := time.Now()
	for range rounds {
		if _, err := rand.Read(alpha); err != nil {
			return err
		}
		proof, err := engine.Prove(kp, alpha)
		if err != nil {
			return err
		}
		if _, err := engine.Verify(kp.PublicKey, alpha, proof.Pi); err != nil {
			return err
		}
		bar.Add64(1)
	}
	bar.Finish()

	elapsed := time.Since(start)
	log.Info("bench done",
		"rounds", rounds,
		"elapsed", elapsed.Round(time.Millisecond),
		"rounds/s", fmt.Sprintf("%.1f", float64(rounds)/elapsed.Seconds()),
	)
	return nil
}

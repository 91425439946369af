// Copyright (c) 2024 The Totient developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// vrfkey manages secp256k1 VRF keys and produces and checks proofs from
// the command line.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/totient-labs/ecvrf/vrf"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "vrfkey",
		Usage:     "manage VRF keys and proofs",
		Copyright: "2023-2025 Totient Labs <https://totient.dev/>",
		Commands: []cli.Command{
			{
				Name:   "gen",
				Usage:  "generate a new key pair",
				Flags:  []cli.Flag{keyFileFlag, verbosityFlag, jsonLogsFlag},
				Action: genAction,
			},
			{
				Name:   "pubkey",
				Usage:  "print the public key and address of a private key",
				Flags:  []cli.Flag{keyFileFlag, keyHexFlag, verbosityFlag, jsonLogsFlag},
				Action: pubkeyAction,
			},
			{
				Name:      "prove",
				Usage:     "prove a message, 0x-prefixed messages are read as hex",
				ArgsUsage: "<message>",
				Flags:     []cli.Flag{keyFileFlag, keyHexFlag, verbosityFlag, jsonLogsFlag},
				Action:    proveAction,
			},
			{
				Name:      "verify",
				Usage:     "check a proof against a public key and a message",
				ArgsUsage: "<message>",
				Flags:     []cli.Flag{pubFlag, proofFlag, verbosityFlag, jsonLogsFlag},
				Action:    verifyAction,
			},
			{
				Name:   "bench",
				Usage:  "run prove/verify rounds and report the rate",
				Flags:  []cli.Flag{roundsFlag, enableMetricsFlag, metricsAddrFlag, verbosityFlag, jsonLogsFlag},
				Action: benchAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func genAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}

	kp, err := vrf.GenerateKeyPair()
	if err != nil {
		return err
	}

	if keyFile := ctx.String(keyFileFlag.Name); keyFile != "" {
		key, err := crypto.ToECDSA(kp.PrivateKey)
		if err != nil {
			return err
		}
		if err := crypto.SaveECDSA(keyFile, key); err != nil {
			return errors.Wrap(err, "save key file")
		}
		log.Info("private key saved", "path", keyFile)
	}

	fmt.Printf("sk: %x\n", kp.PrivateKey)
	fmt.Printf("pk: %x\n", kp.PublicKey)
	return nil
}

func pubkeyAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}

	kp, err := loadKeyPair(ctx)
	if err != nil {
		return err
	}

	pub, err := crypto.DecompressPubkey(kp.PublicKey)
	if err != nil {
		return err
	}

	fmt.Printf("pk: %x\n", kp.PublicKey)
	fmt.Printf("address: %v\n", crypto.PubkeyToAddress(*pub))
	return nil
}

func proveAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}

	kp, err := loadKeyPair(ctx)
	if err != nil {
		return err
	}

	alpha, err := parseAlpha(ctx.Args().First())
	if err != nil {
		return err
	}

	proof, err := vrf.NewSecp256k1Sha256Tai().Prove(kp, alpha)
	if err != nil {
		return err
	}

	fmt.Printf("pi: %x\n", proof.Pi)
	fmt.Printf("beta: %x\n", proof.Beta)
	return nil
}

func verifyAction(ctx *cli.Context) error {
	if err := initLogger(ctx); err != nil {
		return err
	}

	pub, err := parseHexFlag(ctx.String(pubFlag.Name))
	if err != nil {
		return errors.Wrap(err, "-pub")
	}
	pi, err := parseHexFlag(ctx.String(proofFlag.Name))
	if err != nil {
		return errors.Wrap(err, "-pi")
	}
	alpha, err := parseAlpha(ctx.Args().First())
	if err != nil {
		return err
	}

	beta, err := vrf.NewSecp256k1Sha256Tai().Verify(pub, alpha, pi)
	if err != nil {
		return errors.WithMessage(err, "proof rejected")
	}

	fmt.Printf("beta: %x\n", beta)
	return nil
}

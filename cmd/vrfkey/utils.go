package main

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/totient-labs/ecvrf/metrics"
	"github.com/totient-labs/ecvrf/vrf"
)

func initLogger(ctx *cli.Context) error {
	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse verbosity flag")
	}
	level := log.FromLegacyLevel(lvl)

	var handler slog.Handler
	if ctx.Bool(jsonLogsFlag.Name) {
		handler = log.JSONHandlerWithLevel(os.Stdout, level)
	} else {
		useColor := isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("TERM") != "dumb"
		handler = log.NewTerminalHandlerWithLevel(os.Stdout, level, useColor)
	}
	log.SetDefault(log.NewLogger(handler))
	return nil
}

func readIntFromUInt64Flag(val uint64) (int, error) {
	if val > math.MaxInt {
		return 0, fmt.Errorf("%d out of range", val)
	}
	return int(val), nil
}

func loadKeyPair(ctx *cli.Context) (*vrf.KeyPair, error) {
	if keyHex := ctx.String(keyHexFlag.Name); keyHex != "" {
		key, err := crypto.HexToECDSA(keyHex)
		if err != nil {
			return nil, errors.Wrap(err, "-keyhex")
		}
		return vrf.NewKeyPairFromPrivateKey(crypto.FromECDSA(key))
	}

	keyFile := ctx.String(keyFileFlag.Name)
	if keyFile == "" {
		return nil, errors.New("no key given, set -keyhex or -keyfile")
	}
	key, err := loadOrGenerateKeyFile(keyFile)
	if err != nil {
		return nil, errors.Wrap(err, "-keyfile")
	}
	return vrf.NewKeyPairFromPrivateKey(crypto.FromECDSA(key))
}

func loadOrGenerateKeyFile(keyFile string) (*ecdsa.PrivateKey, error) {
	// try to load from file
	key, err := crypto.LoadECDSA(keyFile)
	if err == nil {
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	// no such file, generate new key and write in
	key, err = crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	if err := crypto.SaveECDSA(keyFile, key); err != nil {
		return nil, err
	}
	return key, nil
}

// parseAlpha reads a message argument. A 0x prefix means hex bytes,
// anything else is taken verbatim.
func parseAlpha(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "0x") {
		b, err := hex.DecodeString(arg[2:])
		if err != nil {
			return nil, errors.Wrap(err, "parse message argument")
		}
		return b, nil
	}
	return []byte(arg), nil
}

func parseHexFlag(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func startMetricsServer(addr string) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen metrics API addr [%v]", addr)
	}

	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	handler := handlers.CompressHandler(router)

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes sync.WaitGroup
	goes.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/metrics", func() {
		srv.Close()
		goes.Wait()
	}, nil
}

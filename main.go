package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/openhbci/go-fints-client/fints/config"
	"github.com/openhbci/go-fints-client/fints/dialog"
	"github.com/openhbci/go-fints-client/fints/params"
	"github.com/openhbci/go-fints-client/fints/tan"
	"github.com/openhbci/go-fints-client/fints/util"
)

// Example: plan a strongly authenticated dialog initiation and walk the
// suspend/resume boundary of the establishment core. Sending the segments
// requires a wire codec (HNHBK envelope + PIN/TAN signature), which ships
// separately; see fints.Client for the full exchange loop.
func main() {

	if util.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfgPath := mustEnv("FINTS_CONFIG")
	pin := mustEnv("FINTS_PIN")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	dctx := dialog.Context{
		BankCode:       cfg.BankCode,
		UserID:         cfg.UserID,
		PIN:            pin,
		ProductID:      cfg.ProductID,
		ProductVersion: cfg.ProductVersion,
	}
	if cfg.TANMethodID != "" {
		dctx.TANMethod = &tan.Method{ID: cfg.TANMethodID}
	}
	if cfg.TANMediumName != "" {
		dctx.TANMedium = &tan.Medium{Name: cfg.TANMediumName}
	}

	est := dialog.New(dctx)

	segs, err := est.BuildRequest(params.Versions{})
	if err != nil {
		panic(err)
	}

	fmt.Printf("dialog initiation for bank %s (attempt %s):\n", cfg.BankCode, est.AttemptID())
	for i, s := range segs {
		fmt.Printf("  %d. %s v%d\n", i+1, s.Kind(), s.Version())
	}

	// The suspend/resume boundary: what an application persists while the
	// bank waits for the one-time code.
	state, err := est.Serialize()
	if err != nil {
		panic(err)
	}
	fmt.Println("serialized state:", string(state))

	restored, err := dialog.Restore(state, dctx)
	if err != nil {
		panic(err)
	}
	fmt.Println("restored attempt:", restored.AttemptID())
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		logrus.Fatalf("%s environment variable is not set", key)
	}
	return v
}

// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ava-labs/shamir/app"
	"github.com/ava-labs/shamir/config"
	"github.com/ava-labs/shamir/version"
)

func main() {
	c, err := config.GetConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load config: %s\n", err)
		os.Exit(1)
	}

	if c.Version {
		fmt.Println(version.String)
		os.Exit(0)
	}

	a, err := app.New(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't initialize app: %s\n", err)
		os.Exit(1)
	}

	os.Exit(a.Start(context.Background()))
}

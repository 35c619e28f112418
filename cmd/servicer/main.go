/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"fmt"
	"os"

	"github.com/servicekit/servicer/pkg/cli"
)

func main() {
	if err := cli.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

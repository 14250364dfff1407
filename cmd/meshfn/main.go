/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command meshfn creates mesh functions on unit meshes, writes them as YAML
// and pushes snapshots to DynamoDB.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

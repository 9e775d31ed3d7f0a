// Command rewardctl computes and inspects HVAC rewards offline, without the
// HTTP service or its database.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

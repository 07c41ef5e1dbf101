//go:build !debug

package engine

import "log"

func reportInvariant(err error) {
	log.Printf("Invariant check failed: %v", err)
}

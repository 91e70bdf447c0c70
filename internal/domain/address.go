package domain

import (
	"fmt"
	"strings"
)

// AddressLength is the canonical hex-digit length of an on-chain address
const AddressLength = 64

// NormalizeAddress converts an on-chain address into its canonical form:
// lowercase, no 0x prefix, left-padded with zeros to 64 hex digits.
// This is the form stored in the database and used for equality checks;
// the chain and indexer may report the same address with or without the
// prefix and with leading zeros stripped.
func NormalizeAddress(addr string) (string, error) {
	a := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(addr)), "0x")
	if a == "" {
		return "", fmt.Errorf("empty address")
	}
	if len(a) > AddressLength {
		return "", fmt.Errorf("address %q exceeds %d hex digits", addr, AddressLength)
	}
	for _, r := range a {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("address %q contains non-hex character %q", addr, r)
		}
	}
	return strings.Repeat("0", AddressLength-len(a)) + a, nil
}

// HexAddress renders a canonical address with the 0x prefix expected by the
// chain RPC and the indexer.
func HexAddress(canonical string) string {
	return "0x" + canonical
}

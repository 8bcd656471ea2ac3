// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package topo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/onosproject/onos-lib-go/pkg/errors"
)

const nodeIPPrefix = "10.0."

// NodeIP renders the address of the node with the given offset as 10.0.<value/256>.<value%256>.
// Offsets of 65536 and above yield a third octet beyond 255; they are emitted as is.
func NodeIP(value int) string {
	return fmt.Sprintf("%s%d.%d", nodeIPPrefix, value/256, value%256)
}

// DecodeNodeIP returns the offset encoded in an address produced by NodeIP; anything NodeIP
// cannot produce is rejected
func DecodeNodeIP(ip string) (int, error) {
	if !strings.HasPrefix(ip, nodeIPPrefix) {
		return 0, errors.NewInvalid("Address %s is not in the 10.0.0.0/16 node range", ip)
	}
	f := strings.Split(strings.TrimPrefix(ip, nodeIPPrefix), ".")
	if len(f) != 2 {
		return 0, errors.NewInvalid("Invalid node address format: %s", ip)
	}
	high, err := parseDecimal(f[0])
	if err != nil {
		return 0, errors.NewInvalid("Invalid node address %s: %v", ip, err)
	}
	low, err := parseDecimal(f[1])
	if err != nil {
		return 0, errors.NewInvalid("Invalid node address %s: %v", ip, err)
	}
	if low > 255 {
		return 0, errors.NewInvalid("Invalid node address %s: last octet out of range", ip)
	}
	return high*256 + low, nil
}

// Parses an unsigned decimal field written without sign or leading zeros
func parseDecimal(field string) (int, error) {
	if field == "" || field[0] == '+' || field[0] == '-' || (len(field) > 1 && field[0] == '0') {
		return 0, errors.NewInvalid("malformed field %q", field)
	}
	return strconv.Atoi(field)
}

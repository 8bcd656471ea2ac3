// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package topo

import (
	"testing"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNodeIP(t *testing.T) {
	assert.Equal(t, "10.0.0.0", NodeIP(0))
	assert.Equal(t, "10.0.0.1", NodeIP(1))
	assert.Equal(t, "10.0.0.255", NodeIP(255))
	assert.Equal(t, "10.0.1.0", NodeIP(256))
	assert.Equal(t, "10.0.255.255", NodeIP(65535))
	// Beyond the second octet boundary the third octet is emitted literally
	assert.Equal(t, "10.0.256.0", NodeIP(65536))
}

func TestDecodeNodeIP(t *testing.T) {
	for _, value := range []int{0, 1, 255, 256, 4097, 65535, 65536} {
		decoded, err := DecodeNodeIP(NodeIP(value))
		assert.NoError(t, err)
		assert.Equal(t, value, decoded)
	}

	_, err := DecodeNodeIP("192.168.0.1")
	assert.True(t, errors.IsInvalid(err))
	_, err = DecodeNodeIP("10.0.1")
	assert.True(t, errors.IsInvalid(err))
	_, err = DecodeNodeIP("10.0.a.1")
	assert.True(t, errors.IsInvalid(err))
}

func TestDecodeNodeIPRejectsNonCanonical(t *testing.T) {
	for _, ip := range []string{"10.0.0.300", "10.0.0.256", "10.0.-1.5", "10.0.+1.1", "10.0.01.001",
		"10.0.1.01", "10.0..1", "10.0.1.", "10.0.1.+0"} {
		_, err := DecodeNodeIP(ip)
		assert.True(t, errors.IsInvalid(err), ip)
	}
}

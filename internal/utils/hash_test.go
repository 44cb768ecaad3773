// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func TestHasher_SumMatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte(`{"name":"team"}`)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, h.SumHex(data))
	assert.Equal(t, want, h.SumHex(data), "digest must be deterministic")
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")

	assert.NotEqual(t, NewHasher("key-one").SumHex(data), NewHasher("key-two").SumHex(data))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("payload")
	sig := h.SumHex(data)

	assert.True(t, h.Verify(data, sig))
	assert.False(t, h.Verify([]byte("other"), sig))
	assert.False(t, h.Verify(data, "zz-not-hex"))
	assert.False(t, h.Verify(data, ""))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.SumHex([]byte("same"))

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.SumHex([]byte("same"))
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}

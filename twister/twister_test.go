// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package twister

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ rand.Source64 = (*Twister)(nil)

func TestTwister_Uint32(t *testing.T) {
	testCases := []struct {
		name     string
		seed     uint32
		expected []uint32
	}{
		{"Default", DefaultSeed, []uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204}},
		{"Zero", 0, []uint32{2357136044, 2546248239, 3071714933, 3626093760, 2588848963}},
		{"One", 1, []uint32{1791095845, 4282876139, 3093770124, 4005303368, 491263}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			tw := New(testCase.seed)

			actual := make([]uint32, len(testCase.expected))
			for i := range actual {
				actual[i] = tw.Uint32()
			}

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestTwister_Seed(t *testing.T) {
	a := New(DefaultSeed)
	for i := 0; i < 1000; i++ {
		a.Uint32()
	}

	a.Seed(int64(DefaultSeed))
	b := New(DefaultSeed)

	for i := 0; i < 2*n; i++ {
		require.Equal(t, b.Uint32(), a.Uint32(), "output %d", i)
	}
}

func TestTwister_Uint64(t *testing.T) {
	tw := New(DefaultSeed)

	assert.Equal(t, uint64(3499211612)<<32|581869302, tw.Uint64())
}

func TestTwister_Int63(t *testing.T) {
	tw := New(42)

	for i := 0; i < 1000; i++ {
		require.GreaterOrEqual(t, tw.Int63(), int64(0))
	}
}

func TestTwister_Float64(t *testing.T) {
	tw := New(DefaultSeed)

	assert.Equal(t, 3499211612.0/4294967296.0, tw.Float64())
	for i := 0; i < 10000; i++ {
		f := tw.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestTwister_MathRand(t *testing.T) {
	r := rand.New(New(DefaultSeed))

	for i := 0; i < 100; i++ {
		x := r.Intn(10)
		require.GreaterOrEqual(t, x, 0)
		require.Less(t, x, 10)
	}
}

// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redbank.calypso.zone/types"
)

func testMarket(t *testing.T) types.Market {
	t.Helper()

	model := types.InterestRateModel{
		Base:               math.LegacyMustNewDecFromStr("0.02"),
		SlopeOne:           math.LegacyMustNewDecFromStr("0.07"),
		SlopeTwo:           math.LegacyMustNewDecFromStr("0.45"),
		OptimalUtilization: math.LegacyMustNewDecFromStr("0.8"),
	}
	market := types.NewMarket("uosmo", model, math.LegacyMustNewDecFromStr("0.2"), math.NewInt(1_000_000_000), 0)
	require.NoError(t, market.Validate())
	return market
}

func TestIndexesAdvanceMonotonically(t *testing.T) {
	market := testMarket(t)
	market.BorrowRate = math.LegacyMustNewDecFromStr("0.25")
	market.LiquidityRate = math.LegacyMustNewDecFromStr("0.10")

	previousBorrow := market.BorrowIndex
	previousLiquidity := market.LiquidityIndex
	for _, now := range []int64{0, 1, 3600, 86_400, types.SecondsPerYear, 3 * types.SecondsPerYear} {
		borrow, err := market.BorrowIndexAt(now)
		require.NoError(t, err)
		liquidity, err := market.LiquidityIndexAt(now)
		require.NoError(t, err)

		assert.True(t, borrow.GTE(previousBorrow), "borrow index regressed at t=%d", now)
		assert.True(t, liquidity.GTE(previousLiquidity), "liquidity index regressed at t=%d", now)
		previousBorrow, previousLiquidity = borrow, liquidity
	}

	// A full year at the annualized rate grows the index by exactly the rate.
	borrow, err := market.BorrowIndexAt(types.SecondsPerYear)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyMustNewDecFromStr("1.25"), borrow)
}

func TestIndexRefusesToMoveBackwards(t *testing.T) {
	market := testMarket(t)
	market.IndexesLastUpdated = 1000

	_, err := market.BorrowIndexAt(999)
	require.ErrorIs(t, err, types.ErrIndexBehind)
}

func TestZeroRateLeavesIndexUntouched(t *testing.T) {
	market := testMarket(t)
	market.BorrowIndex = math.LegacyMustNewDecFromStr("1.37")
	market.BorrowRate = math.LegacyZeroDec()

	index, err := market.BorrowIndexAt(types.SecondsPerYear)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyMustNewDecFromStr("1.37"), index)
}

func TestScalingRoundTripBounds(t *testing.T) {
	market := testMarket(t)

	for _, index := range []string{"1.0", "1.1", "1.37", "2.000000000000000001"} {
		market.LiquidityIndex = math.LegacyMustNewDecFromStr(index)
		market.BorrowIndex = math.LegacyMustNewDecFromStr(index)

		for _, amount := range []int64{1, 7, 100, 999_999, 123_456_789} {
			a := math.NewInt(amount)

			scaled, err := market.ScaleLiquidity(a)
			require.NoError(t, err)
			back, err := market.UnscaleLiquidity(scaled)
			require.NoError(t, err)
			assert.True(t, back.LTE(a), "liquidity round trip exceeded input: %s -> %s (index %s)", a, back, index)

			scaled, err = market.ScaleDebt(a)
			require.NoError(t, err)
			back, err = market.UnscaleDebt(scaled)
			require.NoError(t, err)
			assert.True(t, back.GTE(a), "debt round trip lost value: %s -> %s (index %s)", a, back, index)
		}
	}
}

func TestBorrowRateTwoSlopeCurve(t *testing.T) {
	market := testMarket(t)
	model := market.InterestRateModel

	// Below the optimal point the first slope applies pro rata.
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.055"), model.BorrowRate(math.LegacyMustNewDecFromStr("0.4")))
	// At the optimal point the full first slope is priced in.
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.09"), model.BorrowRate(math.LegacyMustNewDecFromStr("0.8")))
	// Past the optimal point the second slope kicks in.
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.315"), model.BorrowRate(math.LegacyMustNewDecFromStr("0.9")))
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.54"), model.BorrowRate(math.LegacyOneDec()))
	// Utilization is clamped to one.
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.54"), model.BorrowRate(math.LegacyMustNewDecFromStr("1.5")))
}

func TestUtilization(t *testing.T) {
	market := testMarket(t)

	utilization, err := market.Utilization()
	require.NoError(t, err)
	assert.True(t, utilization.IsZero())

	market.CollateralTotalScaled = math.NewInt(1000).Mul(types.ScalingFactor)
	market.DebtTotalScaled = math.NewInt(250).Mul(types.ScalingFactor)

	utilization, err = market.Utilization()
	require.NoError(t, err)
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.25"), utilization)
}

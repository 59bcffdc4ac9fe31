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

func TestDirectionalRounding(t *testing.T) {
	amount := math.NewInt(300)
	price := math.LegacyMustNewDecFromStr("2.3654")

	// ACT & ASSERT: the same product floors down and ceils up.
	floor, err := types.MulFloor(amount, price)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(709), floor)

	ceil, err := types.MulCeil(amount, price)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(710), ceil)

	// ASSERT: exact products round identically in both directions.
	floor, err = types.MulFloor(math.NewInt(50), math.LegacyNewDec(35))
	require.NoError(t, err)
	ceil, err2 := types.MulCeil(math.NewInt(50), math.LegacyNewDec(35))
	require.NoError(t, err2)
	assert.Equal(t, floor, ceil)
}

func TestDivisionRounding(t *testing.T) {
	ratio := math.LegacyMustNewDecFromStr("1.04")

	floor, err := types.DivFloor(math.NewInt(1048), ratio)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1007), floor)

	ceil, err := types.DivCeil(math.NewInt(1048), ratio)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1008), ceil)
}

func TestRatioFailsOnZeroDenominator(t *testing.T) {
	_, err := types.Ratio(math.NewInt(1), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDivideByZero)

	_, err = types.DivFloor(math.NewInt(1), math.LegacyZeroDec())
	require.ErrorIs(t, err, types.ErrDivideByZero)

	_, err = types.DecQuo(math.LegacyOneDec(), math.LegacyZeroDec())
	require.ErrorIs(t, err, types.ErrDivideByZero)
}

func TestOverflowSurfacesAsError(t *testing.T) {
	huge := math.LegacyNewDecFromInt(math.NewIntWithDecimal(1, 40))

	_, err := types.DecMul(huge, huge)
	require.ErrorIs(t, err, types.ErrOverflow)
}

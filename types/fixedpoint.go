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

package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Fixed-point helpers over math.Int amounts and math.LegacyDec ratios with
// explicit directional rounding. The module-wide rounding policy is that
// collateral-valued amounts round down and debt-valued amounts round up, so
// rounding residue always accrues to the protocol.
//
// math.LegacyDec multiplication and division panic when the intermediate
// value exceeds the legal bit length, so every helper runs under a recover
// guard and surfaces ErrOverflow instead.

// MulFloor returns floor(amount * ratio).
func MulFloor(amount math.Int, ratio math.LegacyDec) (result math.Int, err error) {
	defer recoverArithmetic(&err)
	return ratio.MulInt(amount).TruncateInt(), nil
}

// MulCeil returns ceil(amount * ratio).
func MulCeil(amount math.Int, ratio math.LegacyDec) (result math.Int, err error) {
	defer recoverArithmetic(&err)
	return ratio.MulInt(amount).Ceil().TruncateInt(), nil
}

// DivFloor returns floor(amount / ratio).
func DivFloor(amount math.Int, ratio math.LegacyDec) (result math.Int, err error) {
	if ratio.IsZero() {
		return math.ZeroInt(), ErrDivideByZero
	}
	defer recoverArithmetic(&err)
	return math.LegacyNewDecFromInt(amount).Quo(ratio).TruncateInt(), nil
}

// DivCeil returns ceil(amount / ratio).
func DivCeil(amount math.Int, ratio math.LegacyDec) (result math.Int, err error) {
	if ratio.IsZero() {
		return math.ZeroInt(), ErrDivideByZero
	}
	defer recoverArithmetic(&err)
	return math.LegacyNewDecFromInt(amount).Quo(ratio).Ceil().TruncateInt(), nil
}

// Ratio returns num / den as a ratio, failing on a zero denominator.
func Ratio(num, den math.Int) (result math.LegacyDec, err error) {
	if den.IsZero() {
		return math.LegacyZeroDec(), ErrDivideByZero
	}
	defer recoverArithmetic(&err)
	return math.LegacyNewDecFromInt(num).Quo(math.LegacyNewDecFromInt(den)), nil
}

// DecMul returns a * b with overflow reported as an error.
func DecMul(a, b math.LegacyDec) (result math.LegacyDec, err error) {
	defer recoverArithmetic(&err)
	return a.Mul(b), nil
}

// DecQuo returns a / b, failing on a zero divisor.
func DecQuo(a, b math.LegacyDec) (result math.LegacyDec, err error) {
	if b.IsZero() {
		return math.LegacyZeroDec(), ErrDivideByZero
	}
	defer recoverArithmetic(&err)
	return a.Quo(b), nil
}

// DecAdd returns a + b with overflow reported as an error.
func DecAdd(a, b math.LegacyDec) (result math.LegacyDec, err error) {
	defer recoverArithmetic(&err)
	return a.Add(b), nil
}

func recoverArithmetic(err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(ErrOverflow, "%v", r)
	}
}

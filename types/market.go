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
	"fmt"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// SecondsPerYear is the accrual period used to annualize interest rates.
const SecondsPerYear = 31_536_000

// ScalingFactor multiplies all scaled amounts to retain sub-unit precision
// across index divisions.
var ScalingFactor = math.NewInt(1_000_000)

// InterestRateModel derives the annualized borrow rate from utilization with
// a two-slope curve around an optimal utilization point.
type InterestRateModel struct {
	Base               math.LegacyDec `json:"base"`
	SlopeOne           math.LegacyDec `json:"slope_one"`
	SlopeTwo           math.LegacyDec `json:"slope_two"`
	OptimalUtilization math.LegacyDec `json:"optimal_utilization"`
}

// Validate checks the model parameters for internal consistency.
func (m InterestRateModel) Validate() error {
	for name, value := range map[string]math.LegacyDec{
		"base":      m.Base,
		"slope_one": m.SlopeOne,
		"slope_two": m.SlopeTwo,
	} {
		if value.IsNil() || value.IsNegative() {
			return fmt.Errorf("interest rate model %s must be non-negative", name)
		}
	}
	if m.OptimalUtilization.IsNil() || !m.OptimalUtilization.IsPositive() || m.OptimalUtilization.GT(math.LegacyOneDec()) {
		return fmt.Errorf("optimal utilization must be in (0, 1]")
	}
	return nil
}

// BorrowRate returns the annualized borrow rate at the given utilization.
func (m InterestRateModel) BorrowRate(utilization math.LegacyDec) math.LegacyDec {
	u := math.LegacyMinDec(utilization, math.LegacyOneDec())
	if u.LTE(m.OptimalUtilization) {
		return m.Base.Add(m.SlopeOne.Mul(u).Quo(m.OptimalUtilization))
	}

	rate := m.Base.Add(m.SlopeOne)
	excess := u.Sub(m.OptimalUtilization)
	headroom := math.LegacyOneDec().Sub(m.OptimalUtilization)
	if headroom.IsZero() {
		return rate.Add(m.SlopeTwo)
	}
	return rate.Add(m.SlopeTwo.Mul(excess).Quo(headroom))
}

// Market holds the per-asset interest-bearing state. Indexes start at one and
// only ever move forward; scaled totals track the sum of all account rows.
type Market struct {
	Denom                 string            `json:"denom"`
	BorrowIndex           math.LegacyDec    `json:"borrow_index"`
	LiquidityIndex        math.LegacyDec    `json:"liquidity_index"`
	BorrowRate            math.LegacyDec    `json:"borrow_rate"`
	LiquidityRate         math.LegacyDec    `json:"liquidity_rate"`
	DebtTotalScaled       math.Int          `json:"debt_total_scaled"`
	CollateralTotalScaled math.Int          `json:"collateral_total_scaled"`
	ReserveFactor         math.LegacyDec    `json:"reserve_factor"`
	InterestRateModel     InterestRateModel `json:"interest_rate_model"`
	DepositCap            math.Int          `json:"deposit_cap"`
	IndexesLastUpdated    int64             `json:"indexes_last_updated"`
	Active                bool              `json:"active"`
	DepositEnabled        bool              `json:"deposit_enabled"`
	BorrowEnabled         bool              `json:"borrow_enabled"`
}

// NewMarket returns a freshly initialized market with unit indexes.
func NewMarket(denom string, model InterestRateModel, reserveFactor math.LegacyDec, depositCap math.Int, createdAt int64) Market {
	return Market{
		Denom:                 denom,
		BorrowIndex:           math.LegacyOneDec(),
		LiquidityIndex:        math.LegacyOneDec(),
		BorrowRate:            model.Base,
		LiquidityRate:         math.LegacyZeroDec(),
		DebtTotalScaled:       math.ZeroInt(),
		CollateralTotalScaled: math.ZeroInt(),
		ReserveFactor:         reserveFactor,
		InterestRateModel:     model,
		DepositCap:            depositCap,
		IndexesLastUpdated:    createdAt,
		Active:                true,
		DepositEnabled:        true,
		BorrowEnabled:         true,
	}
}

// Validate checks the market for internal consistency.
func (m Market) Validate() error {
	if m.Denom == "" {
		return fmt.Errorf("market denom cannot be empty")
	}
	if m.BorrowIndex.IsNil() || m.BorrowIndex.LT(math.LegacyOneDec()) {
		return fmt.Errorf("borrow index must be at least one")
	}
	if m.LiquidityIndex.IsNil() || m.LiquidityIndex.LT(math.LegacyOneDec()) {
		return fmt.Errorf("liquidity index must be at least one")
	}
	if m.ReserveFactor.IsNil() || m.ReserveFactor.IsNegative() || m.ReserveFactor.GT(math.LegacyOneDec()) {
		return fmt.Errorf("reserve factor must be in [0, 1]")
	}
	return m.InterestRateModel.Validate()
}

// BorrowIndexAt returns the borrow index advanced linearly to the given time.
func (m Market) BorrowIndexAt(now int64) (math.LegacyDec, error) {
	return advanceIndex(m.BorrowIndex, m.BorrowRate, m.IndexesLastUpdated, now)
}

// LiquidityIndexAt returns the liquidity index advanced linearly to the given
// time.
func (m Market) LiquidityIndexAt(now int64) (math.LegacyDec, error) {
	return advanceIndex(m.LiquidityIndex, m.LiquidityRate, m.IndexesLastUpdated, now)
}

func advanceIndex(index, rate math.LegacyDec, updatedAt, now int64) (math.LegacyDec, error) {
	if now < updatedAt {
		return math.LegacyZeroDec(), errors.Wrapf(ErrIndexBehind, "indexes updated at %d, requested %d", updatedAt, now)
	}
	elapsed := now - updatedAt
	if elapsed == 0 || rate.IsZero() {
		return index, nil
	}

	growth, err := DecMul(rate, math.LegacyNewDec(elapsed))
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	growth = growth.QuoInt64(SecondsPerYear)
	return DecMul(index, math.LegacyOneDec().Add(growth))
}

// ScaleLiquidity converts an underlying amount to liquidity-scaled shares,
// rounding down.
func (m Market) ScaleLiquidity(amount math.Int) (math.Int, error) {
	return scaleAmount(amount, m.LiquidityIndex, false)
}

// UnscaleLiquidity converts liquidity-scaled shares back to underlying,
// rounding down.
func (m Market) UnscaleLiquidity(scaled math.Int) (math.Int, error) {
	return unscaleAmount(scaled, m.LiquidityIndex, false)
}

// ScaleDebt converts an underlying amount to debt-scaled shares, rounding up.
func (m Market) ScaleDebt(amount math.Int) (math.Int, error) {
	return scaleAmount(amount, m.BorrowIndex, true)
}

// UnscaleDebt converts debt-scaled shares back to underlying, rounding up.
func (m Market) UnscaleDebt(scaled math.Int) (math.Int, error) {
	return unscaleAmount(scaled, m.BorrowIndex, true)
}

// decPrecision is the fixed 10^18 scale backing math.LegacyDec.
var decPrecision = math.NewIntWithDecimal(1, math.LegacyPrecision)

// scaleAmount computes amount * ScalingFactor / index with exact integer
// rounding in the requested direction.
func scaleAmount(amount math.Int, index math.LegacyDec, roundUp bool) (result math.Int, err error) {
	if index.IsNil() || !index.IsPositive() {
		return math.ZeroInt(), ErrDivideByZero
	}
	defer recoverArithmetic(&err)

	num := amount.Mul(ScalingFactor).Mul(decPrecision)
	den := math.NewIntFromBigInt(index.BigInt())
	return divide(num, den, roundUp), nil
}

// unscaleAmount computes scaled * index / ScalingFactor with exact integer
// rounding in the requested direction.
func unscaleAmount(scaled math.Int, index math.LegacyDec, roundUp bool) (result math.Int, err error) {
	if index.IsNil() {
		return math.ZeroInt(), ErrDivideByZero
	}
	defer recoverArithmetic(&err)

	num := scaled.Mul(math.NewIntFromBigInt(index.BigInt()))
	den := ScalingFactor.Mul(decPrecision)
	return divide(num, den, roundUp), nil
}

func divide(num, den math.Int, roundUp bool) math.Int {
	quo := num.Quo(den)
	if roundUp && !num.Mod(den).IsZero() {
		quo = quo.AddRaw(1)
	}
	return quo
}

// Utilization returns total debt over total liquidity in underlying units.
func (m Market) Utilization() (math.LegacyDec, error) {
	liquidity, err := m.UnscaleLiquidity(m.CollateralTotalScaled)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if liquidity.IsZero() {
		return math.LegacyZeroDec(), nil
	}
	debt, err := m.UnscaleDebt(m.DebtTotalScaled)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	return Ratio(debt, liquidity)
}

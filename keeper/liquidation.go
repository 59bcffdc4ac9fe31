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

package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"redbank.calypso.zone/types"
)

// LiquidationInputs is everything the resolver needs to price one
// liquidation. Amounts are underlying units, not scaled.
type LiquidationInputs struct {
	CollateralAmountAvailable math.Int
	CollateralPrice           math.LegacyDec
	CollateralParams          types.AssetParams
	DebtAmountOwed            math.Int
	DebtAmountRequested       math.Int
	DebtPrice                 math.LegacyDec
	TargetHealthFactor        math.LegacyDec
	Health                    types.Health
}

// LiquidationAmounts is the resolver's decision: how much debt the liquidator
// repays and how the seized collateral splits between liquidator and
// protocol.
type LiquidationAmounts struct {
	DebtToRepay             math.Int
	CollateralToLiquidate   math.Int
	CollateralToLiquidator  math.Int
	ProtocolFeeCollateral   math.Int
	LiquidationBonusApplied math.LegacyDec
	TotalLiquidationFee     math.LegacyDec
}

// ResolveLiquidation computes the repay and seize amounts that move the
// liquidatee's liquidation health factor toward the target while honouring
// four caps: the debt owed, the debt the liquidator sent, the
// target-health-factor maximum, and the collateral actually available.
//
// The function is pure; the executor applies the resulting transfers.
func ResolveLiquidation(inputs LiquidationInputs) (LiquidationAmounts, error) {
	health := inputs.Health
	if !health.IsLiquidatable() {
		return LiquidationAmounts{}, types.ErrNotLiquidatable
	}

	liquidationHf := *health.LiquidationHealthFactor

	// Step 1: liquidation bonus. The bonus grows linearly with how far the
	// account sits below health factor one, capped by the account's remaining
	// collateralization headroom so a deeply underwater account cannot pay
	// out more than it holds.
	bonus := inputs.CollateralParams.LiquidationBonus

	collateralizationRatio, err := types.Ratio(health.TotalCollateralValue, health.TotalDebtValue)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	headroom := math.LegacyMaxDec(collateralizationRatio.Sub(math.LegacyOneDec()), math.LegacyZeroDec())
	dynamicCap := math.LegacyMinDec(math.LegacyMaxDec(headroom, bonus.MinLB), bonus.MaxLB)

	rawBonus, err := types.DecMul(bonus.Slope, math.LegacyOneDec().Sub(liquidationHf))
	if err != nil {
		return LiquidationAmounts{}, err
	}
	rawBonus, err = types.DecAdd(bonus.StartingLB, rawBonus)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	liquidationBonus := math.LegacyMinDec(rawBonus, dynamicCap)

	// Step 2: total liquidation fee. The protocol fee only draws from the
	// headroom the bonus left unused, so the post-liquidation health factor
	// never drops below the pre-liquidation one.
	maxTotalFee, err := types.DecQuo(liquidationHf, inputs.CollateralParams.LiquidationThreshold)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	maxTotalFee = math.LegacyMaxDec(maxTotalFee.Sub(math.LegacyOneDec()), math.LegacyZeroDec())

	availableProtocolFee := math.LegacyMaxDec(maxTotalFee.Sub(liquidationBonus), math.LegacyZeroDec())
	protocolFee := math.LegacyMinDec(inputs.CollateralParams.ProtocolLiquidationFee, availableProtocolFee)

	totalFee, err := types.DecAdd(liquidationBonus, protocolFee)
	if err != nil {
		return LiquidationAmounts{}, err
	}

	// Step 3: maximum debt repayable before the account would reach the
	// target health factor.
	numerator := inputs.TargetHealthFactor.MulInt(health.TotalDebtValue).
		Sub(math.LegacyNewDecFromInt(health.LiquidationThresholdAdjustedCollateral))
	denominator := inputs.TargetHealthFactor.
		Sub(inputs.CollateralParams.LiquidationThreshold.Mul(math.LegacyOneDec().Add(totalFee)))
	if !denominator.IsPositive() {
		return LiquidationAmounts{}, sdkerrors.Wrapf(types.ErrInvalidLiquidationParams,
			"target health factor %s too close to adjusted liquidation threshold", inputs.TargetHealthFactor)
	}
	maxDebtValue, err := types.DecQuo(numerator, denominator)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	// The value stays a Dec until the conversion to debt tokens, so the only
	// truncation happens after the price division.
	maxDebtInDebtTokens, err := types.DecQuo(maxDebtValue, inputs.DebtPrice)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	maxDebtAmount := maxDebtInDebtTokens.TruncateInt()

	// Step 4: the debt repayable if the requested collateral were consumed
	// entirely.
	collateralValue, err := types.MulFloor(inputs.CollateralAmountAvailable, inputs.CollateralPrice)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	collateralValueNet, err := types.DivFloor(collateralValue, math.LegacyOneDec().Add(totalFee))
	if err != nil {
		return LiquidationAmounts{}, err
	}
	debtCapByCollateral, err := types.DivFloor(collateralValueNet, inputs.DebtPrice)
	if err != nil {
		return LiquidationAmounts{}, err
	}

	// Step 5: actual debt repaid.
	debtToRepay := math.MinInt(
		math.MinInt(inputs.DebtAmountOwed, inputs.DebtAmountRequested),
		math.MinInt(maxDebtAmount, debtCapByCollateral),
	)

	// Step 6: collateral transfers.
	repayValueGrossed, err := types.DecMul(inputs.DebtPrice, math.LegacyOneDec().Add(totalFee))
	if err != nil {
		return LiquidationAmounts{}, err
	}
	repayValueGrossed, err = types.DecQuo(repayValueGrossed, inputs.CollateralPrice)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	collateralToLiquidate, err := types.MulFloor(debtToRepay, repayValueGrossed)
	if err != nil {
		return LiquidationAmounts{}, err
	}

	liquidatorShare, err := types.DecMul(inputs.DebtPrice, math.LegacyOneDec().Add(liquidationBonus))
	if err != nil {
		return LiquidationAmounts{}, err
	}
	liquidatorShare, err = types.DecQuo(liquidatorShare, inputs.CollateralPrice)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	collateralToLiquidator, err := types.MulFloor(debtToRepay, liquidatorShare)
	if err != nil {
		return LiquidationAmounts{}, err
	}

	protocolFeeCollateral := collateralToLiquidate.Sub(collateralToLiquidator)

	// Step 7: the liquidator must come out ahead or the call is rejected.
	repayValue, err := types.MulCeil(debtToRepay, inputs.DebtPrice)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	receivedValue, err := types.MulFloor(collateralToLiquidator, inputs.CollateralPrice)
	if err != nil {
		return LiquidationAmounts{}, err
	}
	if !repayValue.LT(receivedValue) {
		return LiquidationAmounts{}, sdkerrors.Wrapf(types.ErrLiquidationNotProfitable,
			"repay value %s, received value %s", repayValue, receivedValue)
	}

	return LiquidationAmounts{
		DebtToRepay:             debtToRepay,
		CollateralToLiquidate:   collateralToLiquidate,
		CollateralToLiquidator:  collateralToLiquidator,
		ProtocolFeeCollateral:   protocolFeeCollateral,
		LiquidationBonusApplied: liquidationBonus,
		TotalLiquidationFee:     totalFee,
	}, nil
}

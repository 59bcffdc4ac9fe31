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
	"context"

	"cosmossdk.io/core/event"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"redbank.calypso.zone/types"
)

// Liquidate partially unwinds an unhealthy account. The collateral transfers
// run before the debt reduction, the debt reduction before the rate update,
// and any over-sent debt is refunded last. Failures before the first transfer
// leave state untouched.
func (k *Keeper) Liquidate(ctx context.Context, msg *types.MsgLiquidate) (*types.MsgLiquidateResponse, error) {
	if msg.Liquidator == msg.Liquidatee {
		return nil, types.ErrCannotLiquidateSelf
	}
	if msg.DebtCoin.Amount.IsNil() || !msg.DebtCoin.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrNoAmount, "debt coin amount must be positive")
	}

	managed, err := k.registry.IsManagerControlled(ctx, msg.Liquidatee)
	if err != nil {
		return nil, err
	}
	if managed {
		return nil, sdkerrors.Wrapf(types.ErrNotAuthorized, "account %s is controlled by a credit manager", msg.Liquidatee)
	}

	vaultPosition, isVault, err := k.GetVaultPosition(ctx, msg.Liquidatee, msg.CollateralDenom)
	if err != nil {
		return nil, err
	}
	if isVault {
		return k.liquidateVault(ctx, msg, vaultPosition)
	}

	return k.liquidateCollateral(ctx, msg)
}

// liquidateCollateral handles liquidations whose seized collateral is a plain
// market deposit. Collateral moves as scaled shares so the market totals are
// untouched by the seizure itself.
func (k *Keeper) liquidateCollateral(ctx context.Context, msg *types.MsgLiquidate) (*types.MsgLiquidateResponse, error) {
	collateralPosition, found, err := k.GetPosition(ctx, msg.Liquidatee, msg.CollateralDenom)
	if err != nil {
		return nil, err
	}
	if !found || !collateralPosition.CollateralScaled.IsPositive() {
		return nil, sdkerrors.Wrapf(types.ErrCannotLiquidateWhenNoCollateral, "account %s has no %s collateral", msg.Liquidatee, msg.CollateralDenom)
	}
	if !collateralPosition.CollateralEnabled {
		return nil, sdkerrors.Wrapf(types.ErrCannotLiquidateWhenCollateralDisabled, "account %s disabled %s as collateral", msg.Liquidatee, msg.CollateralDenom)
	}

	debtPosition, found, err := k.GetPosition(ctx, msg.Liquidatee, msg.DebtCoin.Denom)
	if err != nil {
		return nil, err
	}
	if !found || !debtPosition.DebtScaled.IsPositive() {
		return nil, sdkerrors.Wrapf(types.ErrCannotLiquidateWhenNoDebt, "account %s owes no %s", msg.Liquidatee, msg.DebtCoin.Denom)
	}

	debtMarket, err := k.mustGetActiveMarket(ctx, msg.DebtCoin.Denom)
	if err != nil {
		return nil, err
	}
	if err := k.RefreshMarket(ctx, &debtMarket); err != nil {
		return nil, err
	}

	collateralMarket := debtMarket
	if msg.CollateralDenom != msg.DebtCoin.Denom {
		if collateralMarket, err = k.mustGetActiveMarket(ctx, msg.CollateralDenom); err != nil {
			return nil, err
		}
		if err := k.RefreshMarket(ctx, &collateralMarket); err != nil {
			return nil, err
		}
	}

	health, err := k.AccountHealth(ctx, msg.Liquidatee, types.ACCOUNT_KIND_DEFAULT)
	if err != nil {
		return nil, err
	}
	if !health.IsLiquidatable() {
		return nil, sdkerrors.Wrapf(types.ErrNotLiquidatable, "account %s is healthy", msg.Liquidatee)
	}

	collateralAvailable, err := collateralMarket.UnscaleLiquidity(collateralPosition.CollateralScaled)
	if err != nil {
		return nil, err
	}
	debtOwed, err := debtMarket.UnscaleDebt(debtPosition.DebtScaled)
	if err != nil {
		return nil, err
	}

	inputs, err := k.liquidationInputs(ctx, msg, health, collateralAvailable, debtOwed)
	if err != nil {
		return nil, err
	}
	amounts, err := ResolveLiquidation(inputs)
	if err != nil {
		return nil, err
	}

	liquidator, err := k.address.StringToBytes(msg.Liquidator)
	if err != nil {
		return nil, err
	}
	if err := k.bank.SendCoins(ctx, liquidator, k.moduleAddress, sdk.NewCoins(msg.DebtCoin)); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to collect debt repayment")
	}

	liquidatorScaled, err := collateralMarket.ScaleLiquidity(amounts.CollateralToLiquidator)
	if err != nil {
		return nil, err
	}
	feeScaled, err := collateralMarket.ScaleLiquidity(amounts.ProtocolFeeCollateral)
	if err != nil {
		return nil, err
	}

	if err := k.DecreaseCollateralScaled(ctx, msg.Liquidatee, msg.CollateralDenom, liquidatorScaled.Add(feeScaled)); err != nil {
		return nil, err
	}
	if err := k.IncreaseCollateralScaled(ctx, msg.Liquidator, msg.CollateralDenom, liquidatorScaled); err != nil {
		return nil, err
	}
	if feeScaled.IsPositive() {
		if err := k.IncreaseCollateralScaled(ctx, k.rewardsCollector.String(), msg.CollateralDenom, feeScaled); err != nil {
			return nil, err
		}
	}

	refunded, err := k.settleLiquidationDebt(ctx, liquidator, msg.Liquidatee, msg.DebtCoin, &debtMarket, amounts.DebtToRepay, debtPosition.DebtScaled)
	if err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeLiquidate,
		event.NewAttribute(types.AttributeKeyLiquidator, msg.Liquidator),
		event.NewAttribute(types.AttributeKeyLiquidatee, msg.Liquidatee),
		event.NewAttribute(types.AttributeKeyDenom, msg.CollateralDenom),
		event.NewAttribute(types.AttributeKeyDebtRepaid, sdk.NewCoin(msg.DebtCoin.Denom, amounts.DebtToRepay).String()),
		event.NewAttribute(types.AttributeKeyCollateralSeized, sdk.NewCoin(msg.CollateralDenom, amounts.CollateralToLiquidate).String()),
		event.NewAttribute(types.AttributeKeyProtocolFee, sdk.NewCoin(msg.CollateralDenom, amounts.ProtocolFeeCollateral).String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgLiquidateResponse{
		DebtRepaid:       sdk.NewCoin(msg.DebtCoin.Denom, amounts.DebtToRepay),
		CollateralSeized: sdk.NewCoin(msg.CollateralDenom, amounts.CollateralToLiquidate),
		ProtocolFee:      sdk.NewCoin(msg.CollateralDenom, amounts.ProtocolFeeCollateral),
		Refunded:         refunded,
	}, nil
}

// liquidationInputs gathers the prices, risk params and target health factor
// the resolver needs.
func (k *Keeper) liquidationInputs(ctx context.Context, msg *types.MsgLiquidate, health types.Health, collateralAvailable, debtOwed math.Int) (LiquidationInputs, error) {
	return k.liquidationInputsForDenom(ctx, msg, msg.CollateralDenom, health, collateralAvailable, debtOwed)
}

// liquidationInputsForDenom is the vault-aware variant: the priced collateral
// denom may differ from the one named in the message when seizing vault
// shares.
func (k *Keeper) liquidationInputsForDenom(ctx context.Context, msg *types.MsgLiquidate, collateralDenom string, health types.Health, collateralAvailable, debtOwed math.Int) (LiquidationInputs, error) {
	collateralPrice, err := k.oracle.GetPrice(ctx, collateralDenom)
	if err != nil {
		return LiquidationInputs{}, sdkerrors.Wrapf(types.ErrMissingPrice, "denom %s", collateralDenom)
	}
	collateralParams, err := k.params.AssetParams(ctx, collateralDenom)
	if err != nil {
		return LiquidationInputs{}, sdkerrors.Wrapf(types.ErrMissingParams, "denom %s", collateralDenom)
	}
	debtPrice, err := k.oracle.GetPrice(ctx, msg.DebtCoin.Denom)
	if err != nil {
		return LiquidationInputs{}, sdkerrors.Wrapf(types.ErrMissingPrice, "denom %s", msg.DebtCoin.Denom)
	}
	targetHealthFactor, err := k.params.TargetHealthFactor(ctx)
	if err != nil {
		return LiquidationInputs{}, sdkerrors.Wrap(types.ErrMissingParams, "target health factor")
	}

	return LiquidationInputs{
		CollateralAmountAvailable: collateralAvailable,
		CollateralPrice:           collateralPrice,
		CollateralParams:          collateralParams,
		DebtAmountOwed:            debtOwed,
		DebtAmountRequested:       msg.DebtCoin.Amount,
		DebtPrice:                 debtPrice,
		TargetHealthFactor:        targetHealthFactor,
		Health:                    health,
	}, nil
}

// settleLiquidationDebt reduces the liquidatee's debt and the market's debt
// total by the repaid amount, recomputes the market rates, and refunds
// whatever part of the sent coin was not consumed. The sent coin must already
// sit in the module account.
func (k *Keeper) settleLiquidationDebt(
	ctx context.Context,
	liquidator sdk.AccAddress,
	liquidatee string,
	debtCoin sdk.Coin,
	market *types.Market,
	debtToRepay, debtScaledOwed math.Int,
) (sdk.Coin, error) {
	repaidScaled, err := market.ScaleDebt(debtToRepay)
	if err != nil {
		return sdk.Coin{}, err
	}
	// Ceiling on the scale-up can overshoot the stored shares on a full
	// repayment.
	repaidScaled = math.MinInt(repaidScaled, debtScaledOwed)

	if err := k.DecreaseDebtScaled(ctx, liquidatee, debtCoin.Denom, repaidScaled); err != nil {
		return sdk.Coin{}, err
	}
	if market.DebtTotalScaled, err = market.DebtTotalScaled.SafeSub(repaidScaled); err != nil {
		return sdk.Coin{}, err
	}

	if err := k.UpdateMarketInterestRates(ctx, market); err != nil {
		return sdk.Coin{}, err
	}

	refunded := sdk.NewCoin(debtCoin.Denom, debtCoin.Amount.Sub(debtToRepay))
	if refunded.Amount.IsPositive() {
		if err := k.bank.SendCoins(ctx, k.moduleAddress, liquidator, sdk.NewCoins(refunded)); err != nil {
			return sdk.Coin{}, sdkerrors.Wrap(err, "unable to refund excess debt repayment")
		}
	}

	return refunded, nil
}

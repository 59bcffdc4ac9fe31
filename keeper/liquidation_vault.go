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
	"strconv"

	"cosmossdk.io/core/event"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"redbank.calypso.zone/types"
)

// liquidateVault handles liquidations whose seized collateral is a vault
// position. The resolver runs in the vault's base token; seized value is
// force-withdrawn from the vault into the module account and paid out in base
// tokens, draining buckets in the order unlocked, unlocking (oldest first),
// locked.
func (k *Keeper) liquidateVault(ctx context.Context, msg *types.MsgLiquidate, position types.VaultPosition) (*types.MsgLiquidateResponse, error) {
	vaultAddr := msg.CollateralDenom

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

	health, err := k.AccountHealth(ctx, msg.Liquidatee, types.ACCOUNT_KIND_DEFAULT)
	if err != nil {
		return nil, err
	}
	if !health.IsLiquidatable() {
		return nil, sdkerrors.Wrapf(types.ErrNotLiquidatable, "account %s is healthy", msg.Liquidatee)
	}

	info, err := k.vaults.Info(ctx, vaultAddr)
	if err != nil {
		return nil, err
	}

	sharesUnderlying := math.ZeroInt()
	if shares := position.TotalShares(); shares.IsPositive() {
		if sharesUnderlying, err = k.vaults.PreviewRedeem(ctx, vaultAddr, shares); err != nil {
			return nil, err
		}
	}
	totalBase := sharesUnderlying.Add(position.UnlockingBase())
	if !totalBase.IsPositive() {
		return nil, sdkerrors.Wrapf(types.ErrCannotLiquidateWhenNoCollateral, "vault position %s of account %s is empty", vaultAddr, msg.Liquidatee)
	}

	debtOwed, err := debtMarket.UnscaleDebt(debtPosition.DebtScaled)
	if err != nil {
		return nil, err
	}

	inputs, err := k.liquidationInputsForDenom(ctx, msg, info.BaseToken, health, totalBase, debtOwed)
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

	if err := k.seizeVaultCollateral(ctx, msg.Liquidatee, vaultAddr, &position, amounts.CollateralToLiquidate); err != nil {
		return nil, err
	}
	if err := k.SetVaultPosition(ctx, msg.Liquidatee, vaultAddr, position); err != nil {
		return nil, err
	}

	seized := sdk.NewCoin(info.BaseToken, amounts.CollateralToLiquidator)
	if err := k.bank.SendCoins(ctx, k.moduleAddress, liquidator, sdk.NewCoins(seized)); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to pay out seized collateral")
	}
	fee := sdk.NewCoin(info.BaseToken, amounts.ProtocolFeeCollateral)
	if fee.Amount.IsPositive() {
		if err := k.bank.SendCoins(ctx, k.moduleAddress, k.rewardsCollector, sdk.NewCoins(fee)); err != nil {
			return nil, sdkerrors.Wrap(err, "unable to pay out protocol fee")
		}
	}

	refunded, err := k.settleLiquidationDebt(ctx, liquidator, msg.Liquidatee, msg.DebtCoin, &debtMarket, amounts.DebtToRepay, debtPosition.DebtScaled)
	if err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeLiquidate,
		event.NewAttribute(types.AttributeKeyLiquidator, msg.Liquidator),
		event.NewAttribute(types.AttributeKeyLiquidatee, msg.Liquidatee),
		event.NewAttribute(types.AttributeKeyVault, vaultAddr),
		event.NewAttribute(types.AttributeKeyDebtRepaid, sdk.NewCoin(msg.DebtCoin.Denom, amounts.DebtToRepay).String()),
		event.NewAttribute(types.AttributeKeyCollateralSeized, sdk.NewCoin(info.BaseToken, amounts.CollateralToLiquidate).String()),
		event.NewAttribute(types.AttributeKeyProtocolFee, fee.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgLiquidateResponse{
		DebtRepaid:       sdk.NewCoin(msg.DebtCoin.Denom, amounts.DebtToRepay),
		CollateralSeized: sdk.NewCoin(info.BaseToken, amounts.CollateralToLiquidate),
		ProtocolFee:      fee,
		Refunded:         refunded,
	}, nil
}

// seizeVaultCollateral force-withdraws the given base-token value from the
// liquidatee's vault position into the module account, mutating the position
// in place. Share buckets convert base value to shares proportionally.
func (k *Keeper) seizeVaultCollateral(ctx context.Context, liquidatee, vaultAddr string, position *types.VaultPosition, baseToSeize math.Int) error {
	remaining := baseToSeize

	if remaining.IsPositive() && position.UnlockedShares.IsPositive() {
		unlockedBase, err := k.vaults.PreviewRedeem(ctx, vaultAddr, position.UnlockedShares)
		if err != nil {
			return err
		}
		take := math.MinInt(remaining, unlockedBase)
		shares := position.UnlockedShares.Mul(take).Quo(unlockedBase)
		if shares.IsPositive() {
			if err := k.vaults.Withdraw(ctx, vaultAddr, shares, k.moduleAddress); err != nil {
				return sdkerrors.Wrap(err, "unable to withdraw unlocked vault shares")
			}
			if err := k.emitVaultForceWithdraw(ctx, liquidatee, vaultAddr, take, 0); err != nil {
				return err
			}
			position.UnlockedShares = position.UnlockedShares.Sub(shares)
		}
		remaining = remaining.Sub(take)
	}

	if remaining.IsPositive() && len(position.Unlocking) > 0 {
		kept := position.Unlocking[:0]
		for _, bucket := range position.Unlocking {
			if !remaining.IsPositive() {
				kept = append(kept, bucket)
				continue
			}
			take := math.MinInt(remaining, bucket.BaseCoin.Amount)
			if take.IsPositive() {
				if err := k.vaults.ForceWithdrawUnlocking(ctx, vaultAddr, bucket.Id, take, k.moduleAddress); err != nil {
					return sdkerrors.Wrapf(err, "unable to force withdraw unlocking bucket %d", bucket.Id)
				}
				if err := k.emitVaultForceWithdraw(ctx, liquidatee, vaultAddr, take, bucket.Id); err != nil {
					return err
				}
				bucket.BaseCoin.Amount = bucket.BaseCoin.Amount.Sub(take)
				remaining = remaining.Sub(take)
			}
			if bucket.BaseCoin.Amount.IsPositive() {
				kept = append(kept, bucket)
			}
		}
		position.Unlocking = kept
	}

	if remaining.IsPositive() && position.LockedShares.IsPositive() {
		lockedBase, err := k.vaults.PreviewRedeem(ctx, vaultAddr, position.LockedShares)
		if err != nil {
			return err
		}
		take := math.MinInt(remaining, lockedBase)
		shares := position.LockedShares.Mul(take).Quo(lockedBase)
		if shares.IsPositive() {
			if err := k.vaults.ForceWithdrawLocked(ctx, vaultAddr, shares, k.moduleAddress); err != nil {
				return sdkerrors.Wrap(err, "unable to force withdraw locked vault shares")
			}
			if err := k.emitVaultForceWithdraw(ctx, liquidatee, vaultAddr, take, 0); err != nil {
				return err
			}
			position.LockedShares = position.LockedShares.Sub(shares)
		}
		remaining = remaining.Sub(take)
	}

	if remaining.IsPositive() {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "vault position %s short by %s base tokens", vaultAddr, remaining)
	}

	return nil
}

func (k *Keeper) emitVaultForceWithdraw(ctx context.Context, account, vaultAddr string, amount math.Int, unlockingId uint64) error {
	attrs := []event.Attribute{
		event.NewAttribute(types.AttributeKeyAccount, account),
		event.NewAttribute(types.AttributeKeyVault, vaultAddr),
		event.NewAttribute(types.AttributeKeyAmount, amount.String()),
		event.NewAttribute(types.AttributeKeyRecipient, k.moduleAddress.String()),
	}
	if unlockingId != 0 {
		attrs = append(attrs, event.NewAttribute(types.AttributeKeyUnlockingId, strconv.FormatUint(unlockingId, 10)))
	}
	return k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeVaultForceWithdraw, attrs...)
}

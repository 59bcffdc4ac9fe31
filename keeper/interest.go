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

	"redbank.calypso.zone/types"
)

// RefreshMarket advances both market indexes to the current block time and
// credits the interest accrued since the last refresh to the reserve. Every
// operation that reads a market's rates or converts between scaled and
// underlying amounts must call this first. The refreshed market is persisted
// and the in-memory copy updated.
func (k *Keeper) RefreshMarket(ctx context.Context, market *types.Market) error {
	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	if now < market.IndexesLastUpdated {
		return sdkerrors.Wrapf(types.ErrIndexBehind, "market %s updated at %d, block time %d", market.Denom, market.IndexesLastUpdated, now)
	}
	if now == market.IndexesLastUpdated {
		return nil
	}

	borrowIndex, err := market.BorrowIndexAt(now)
	if err != nil {
		return sdkerrors.Wrapf(err, "unable to advance borrow index for %s", market.Denom)
	}
	liquidityIndex, err := market.LiquidityIndexAt(now)
	if err != nil {
		return sdkerrors.Wrapf(err, "unable to advance liquidity index for %s", market.Denom)
	}

	debtBefore, err := market.UnscaleDebt(market.DebtTotalScaled)
	if err != nil {
		return err
	}

	market.BorrowIndex = borrowIndex
	market.LiquidityIndex = liquidityIndex
	market.IndexesLastUpdated = now

	debtAfter, err := market.UnscaleDebt(market.DebtTotalScaled)
	if err != nil {
		return err
	}

	// Interest accrued by borrowers between refreshes is split between
	// depositors (via index growth) and the reserve; the reserve share is
	// minted as collateral shares to the rewards collector.
	accrued, err := debtAfter.SafeSub(debtBefore)
	if err != nil {
		return err
	}
	if accrued.IsPositive() && market.ReserveFactor.IsPositive() {
		reserve, err := types.MulFloor(accrued, market.ReserveFactor)
		if err != nil {
			return err
		}
		if reserve.IsPositive() {
			reserveScaled, err := market.ScaleLiquidity(reserve)
			if err != nil {
				return err
			}
			if market.CollateralTotalScaled, err = market.CollateralTotalScaled.SafeAdd(reserveScaled); err != nil {
				return err
			}
			if err := k.IncreaseCollateralScaled(ctx, k.rewardsCollector.String(), market.Denom, reserveScaled); err != nil {
				return sdkerrors.Wrap(err, "unable to credit reserve accrual to rewards collector")
			}
		}
	}

	return k.SetMarket(ctx, *market)
}

// UpdateMarketInterestRates recomputes the market's rates from the current
// utilization and persists the result. Must run after balances changed within
// the same operation.
func (k *Keeper) UpdateMarketInterestRates(ctx context.Context, market *types.Market) error {
	utilization, err := market.Utilization()
	if err != nil {
		return sdkerrors.Wrapf(err, "unable to compute utilization for %s", market.Denom)
	}

	market.BorrowRate = market.InterestRateModel.BorrowRate(utilization)

	liquidityRate, err := types.DecMul(market.BorrowRate, utilization)
	if err != nil {
		return err
	}
	market.LiquidityRate = liquidityRate.MulTruncate(math.LegacyOneDec().Sub(market.ReserveFactor))

	if err := k.SetMarket(ctx, *market); err != nil {
		return err
	}

	k.logger.Debug("interest rates updated",
		"denom", market.Denom,
		"utilization", utilization.String(),
		"borrow_rate", market.BorrowRate.String(),
		"liquidity_rate", market.LiquidityRate.String(),
	)

	return k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeInterestRates,
		event.NewAttribute(types.AttributeKeyDenom, market.Denom),
		event.NewAttribute(types.AttributeKeyBorrowRate, market.BorrowRate.String()),
		event.NewAttribute(types.AttributeKeyLiquidityRate, market.LiquidityRate.String()),
		event.NewAttribute(types.AttributeKeyBorrowIndex, market.BorrowIndex.String()),
		event.NewAttribute(types.AttributeKeyLiquidityIndex, market.LiquidityIndex.String()),
	)
}

// marketAtBlockTime returns a copy of the market with indexes advanced to the
// current block time without persisting, for read paths.
func (k *Keeper) marketAtBlockTime(ctx context.Context, market types.Market) (types.Market, error) {
	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	if now <= market.IndexesLastUpdated {
		return market, nil
	}

	borrowIndex, err := market.BorrowIndexAt(now)
	if err != nil {
		return types.Market{}, err
	}
	liquidityIndex, err := market.LiquidityIndexAt(now)
	if err != nil {
		return types.Market{}, err
	}

	market.BorrowIndex = borrowIndex
	market.LiquidityIndex = liquidityIndex
	market.IndexesLastUpdated = now
	return market, nil
}

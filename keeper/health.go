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

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"redbank.calypso.zone/types"
)

// AccountPositions assembles the underlying-amount snapshot of an account
// from its stored scaled rows. Markets are read at current block time without
// persisting, so the snapshot is consistent on both query and mutation paths.
// Disabled collateral and uncollateralized debt are excluded, matching the
// health accounting rules.
func (k *Keeper) AccountPositions(ctx context.Context, account string, kind types.AccountKind) (types.Positions, error) {
	positions := types.Positions{
		AccountId:   account,
		AccountKind: kind,
		Deposits:    sdk.NewCoins(),
		Lends:       sdk.NewCoins(),
		Debts:       sdk.NewCoins(),
	}

	err := k.IterateAccountPositions(ctx, account, func(denom string, position types.Position) (bool, error) {
		market, found, err := k.GetMarket(ctx, denom)
		if err != nil {
			return true, err
		}
		if !found {
			return true, sdkerrors.Wrapf(types.ErrMarketNotFound, "denom %s", denom)
		}
		market, err = k.marketAtBlockTime(ctx, market)
		if err != nil {
			return true, err
		}

		if position.CollateralScaled.IsPositive() && position.CollateralEnabled {
			amount, err := market.UnscaleLiquidity(position.CollateralScaled)
			if err != nil {
				return true, err
			}
			positions.Deposits = positions.Deposits.Add(sdk.NewCoin(denom, amount))
		}
		if position.LendScaled.IsPositive() {
			amount, err := market.UnscaleLiquidity(position.LendScaled)
			if err != nil {
				return true, err
			}
			positions.Lends = positions.Lends.Add(sdk.NewCoin(denom, amount))
		}
		if position.DebtScaled.IsPositive() && !position.DebtUncollateralized {
			amount, err := market.UnscaleDebt(position.DebtScaled)
			if err != nil {
				return true, err
			}
			positions.Debts = positions.Debts.Add(sdk.NewCoin(denom, amount))
		}

		return false, nil
	})
	if err != nil {
		return types.Positions{}, err
	}

	err = k.IterateAccountVaultPositions(ctx, account, func(vaultAddr string, position types.VaultPosition) (bool, error) {
		info, err := k.vaults.Info(ctx, vaultAddr)
		if err != nil {
			return true, err
		}

		base := position.UnlockingBase()
		if shares := position.TotalShares(); shares.IsPositive() {
			redeemable, err := k.vaults.PreviewRedeem(ctx, vaultAddr, shares)
			if err != nil {
				return true, err
			}
			base = base.Add(redeemable)
		}

		positions.Vaults = append(positions.Vaults, types.VaultPositionValue{
			Addr:       vaultAddr,
			Shares:     position.TotalShares(),
			BaseAmount: base,
			BaseDenom:  info.BaseToken,
		})
		return false, nil
	})
	if err != nil {
		return types.Positions{}, err
	}

	return positions, nil
}

// AccountHealth computes the health report for an account, gathering prices
// and risk parameters for exactly the denoms the account touches.
func (k *Keeper) AccountHealth(ctx context.Context, account string, kind types.AccountKind) (types.Health, error) {
	positions, err := k.AccountPositions(ctx, account, kind)
	if err != nil {
		return types.Health{}, err
	}

	denomsData, vaultsData, err := k.healthData(ctx, positions)
	if err != nil {
		return types.Health{}, err
	}

	return CalculateHealth(positions, denomsData, vaultsData)
}

// healthData resolves prices, asset params and vault values for every denom
// and vault referenced by the snapshot.
func (k *Keeper) healthData(ctx context.Context, positions types.Positions) (types.DenomsData, types.VaultsData, error) {
	denomsData := types.DenomsData{
		Prices: make(map[string]math.LegacyDec),
		Params: make(map[string]types.AssetParams),
	}
	vaultsData := types.VaultsData{
		Values:  make(map[string]math.Int),
		Configs: make(map[string]types.VaultConfig),
	}

	collect := func(denom string) error {
		if _, ok := denomsData.Prices[denom]; ok {
			return nil
		}
		price, err := k.oracle.GetPrice(ctx, denom)
		if err != nil {
			return sdkerrors.Wrapf(types.ErrMissingPrice, "denom %s", denom)
		}
		params, err := k.params.AssetParams(ctx, denom)
		if err != nil {
			return sdkerrors.Wrapf(types.ErrMissingParams, "denom %s", denom)
		}
		denomsData.Prices[denom] = price
		denomsData.Params[denom] = params
		return nil
	}

	for _, coin := range positions.Deposits {
		if err := collect(coin.Denom); err != nil {
			return types.DenomsData{}, types.VaultsData{}, err
		}
	}
	for _, coin := range positions.Lends {
		if err := collect(coin.Denom); err != nil {
			return types.DenomsData{}, types.VaultsData{}, err
		}
	}
	for _, coin := range positions.Debts {
		if err := collect(coin.Denom); err != nil {
			return types.DenomsData{}, types.VaultsData{}, err
		}
	}

	for _, vault := range positions.Vaults {
		value, err := k.oracle.TotalValue(ctx, sdk.NewCoins(sdk.NewCoin(vault.BaseDenom, vault.BaseAmount)))
		if err != nil {
			return types.DenomsData{}, types.VaultsData{}, sdkerrors.Wrapf(types.ErrMissingPrice, "denom %s", vault.BaseDenom)
		}
		config, err := k.params.VaultConfig(ctx, vault.Addr)
		if err != nil {
			return types.DenomsData{}, types.VaultsData{}, sdkerrors.Wrapf(types.ErrMissingVaultConfig, "vault %s", vault.Addr)
		}
		vaultsData.Values[vault.Addr] = value
		vaultsData.Configs[vault.Addr] = config
	}

	return denomsData, vaultsData, nil
}

// CalculateHealth aggregates a positions snapshot into the Health report.
// Collateral values round down, debt values round up.
func CalculateHealth(positions types.Positions, denomsData types.DenomsData, vaultsData types.VaultsData) (types.Health, error) {
	health := types.Health{
		TotalCollateralValue:                   math.ZeroInt(),
		MaxLtvAdjustedCollateral:               math.ZeroInt(),
		LiquidationThresholdAdjustedCollateral: math.ZeroInt(),
		TotalDebtValue:                         math.ZeroInt(),
	}

	hls := positions.AccountKind == types.ACCOUNT_KIND_HIGH_LEVERED_STRATEGY

	addCollateral := func(denom string, amount math.Int) error {
		price, ok := denomsData.Prices[denom]
		if !ok {
			return sdkerrors.Wrapf(types.ErrMissingPrice, "denom %s", denom)
		}
		params, ok := denomsData.Params[denom]
		if !ok {
			return sdkerrors.Wrapf(types.ErrMissingParams, "denom %s", denom)
		}

		maxLtv, liquidationThreshold := params.MaxLoanToValue, params.LiquidationThreshold
		if hls {
			if params.HLS == nil {
				return sdkerrors.Wrapf(types.ErrMissingHLSParams, "denom %s", denom)
			}
			maxLtv, liquidationThreshold = params.HLS.MaxLoanToValue, params.HLS.LiquidationThreshold
		}

		value, err := types.MulFloor(amount, price)
		if err != nil {
			return err
		}
		health.TotalCollateralValue = health.TotalCollateralValue.Add(value)

		// Blacklisted assets still count toward total and
		// liquidation-threshold collateral but never unlock new borrows.
		if params.Whitelisted {
			adjusted, err := types.MulFloor(value, maxLtv)
			if err != nil {
				return err
			}
			health.MaxLtvAdjustedCollateral = health.MaxLtvAdjustedCollateral.Add(adjusted)
		}

		adjusted, err := types.MulFloor(value, liquidationThreshold)
		if err != nil {
			return err
		}
		health.LiquidationThresholdAdjustedCollateral = health.LiquidationThresholdAdjustedCollateral.Add(adjusted)
		return nil
	}

	for _, coin := range positions.Deposits {
		if err := addCollateral(coin.Denom, coin.Amount); err != nil {
			return types.Health{}, err
		}
	}
	for _, coin := range positions.Lends {
		if err := addCollateral(coin.Denom, coin.Amount); err != nil {
			return types.Health{}, err
		}
	}

	for _, vault := range positions.Vaults {
		value, ok := vaultsData.Values[vault.Addr]
		if !ok {
			return types.Health{}, sdkerrors.Wrapf(types.ErrMissingVaultValues, "vault %s", vault.Addr)
		}
		config, ok := vaultsData.Configs[vault.Addr]
		if !ok {
			return types.Health{}, sdkerrors.Wrapf(types.ErrMissingVaultConfig, "vault %s", vault.Addr)
		}

		maxLtv, liquidationThreshold := config.MaxLoanToValue, config.LiquidationThreshold
		if hls {
			if config.HLS == nil {
				return types.Health{}, sdkerrors.Wrapf(types.ErrMissingHLSParams, "vault %s", vault.Addr)
			}
			maxLtv, liquidationThreshold = config.HLS.MaxLoanToValue, config.HLS.LiquidationThreshold
		}

		health.TotalCollateralValue = health.TotalCollateralValue.Add(value)

		if config.Whitelisted {
			adjusted, err := types.MulFloor(value, maxLtv)
			if err != nil {
				return types.Health{}, err
			}
			health.MaxLtvAdjustedCollateral = health.MaxLtvAdjustedCollateral.Add(adjusted)
		}

		adjusted, err := types.MulFloor(value, liquidationThreshold)
		if err != nil {
			return types.Health{}, err
		}
		health.LiquidationThresholdAdjustedCollateral = health.LiquidationThresholdAdjustedCollateral.Add(adjusted)
	}

	for _, coin := range positions.Debts {
		price, ok := denomsData.Prices[coin.Denom]
		if !ok {
			return types.Health{}, sdkerrors.Wrapf(types.ErrMissingPrice, "denom %s", coin.Denom)
		}
		value, err := types.MulCeil(coin.Amount, price)
		if err != nil {
			return types.Health{}, err
		}
		health.TotalDebtValue = health.TotalDebtValue.Add(value)
	}

	if health.TotalDebtValue.IsZero() {
		return health, nil
	}

	maxLtvHf, err := types.Ratio(health.MaxLtvAdjustedCollateral, health.TotalDebtValue)
	if err != nil {
		return types.Health{}, err
	}
	liquidationHf, err := types.Ratio(health.LiquidationThresholdAdjustedCollateral, health.TotalDebtValue)
	if err != nil {
		return types.Health{}, err
	}

	health.MaxLtvHealthFactor = &maxLtvHf
	health.LiquidationHealthFactor = &liquidationHf
	return health, nil
}

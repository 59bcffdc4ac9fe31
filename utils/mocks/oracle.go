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

package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"redbank.calypso.zone/types"
)

var _ types.OracleKeeper = OracleKeeper{}

// OracleKeeper serves prices from a fixed map.
type OracleKeeper struct {
	Prices map[string]math.LegacyDec
}

func (k OracleKeeper) GetPrice(_ context.Context, denom string) (math.LegacyDec, error) {
	price, ok := k.Prices[denom]
	if !ok {
		return math.LegacyDec{}, fmt.Errorf("no price for %s", denom)
	}
	return price, nil
}

func (k OracleKeeper) TotalValue(ctx context.Context, coins sdk.Coins) (math.Int, error) {
	total := math.ZeroInt()
	for _, coin := range coins {
		price, err := k.GetPrice(ctx, coin.Denom)
		if err != nil {
			return math.ZeroInt(), err
		}
		value, err := types.MulFloor(coin.Amount, price)
		if err != nil {
			return math.ZeroInt(), err
		}
		total = total.Add(value)
	}
	return total, nil
}

var _ types.ParamsKeeper = ParamsKeeper{}

// ParamsKeeper serves risk parameters from fixed maps.
type ParamsKeeper struct {
	Assets map[string]types.AssetParams
	Vaults map[string]types.VaultConfig
	THF    math.LegacyDec
}

func (k ParamsKeeper) AssetParams(_ context.Context, denom string) (types.AssetParams, error) {
	params, ok := k.Assets[denom]
	if !ok {
		return types.AssetParams{}, fmt.Errorf("no asset params for %s", denom)
	}
	return params, nil
}

func (k ParamsKeeper) VaultConfig(_ context.Context, addr string) (types.VaultConfig, error) {
	config, ok := k.Vaults[addr]
	if !ok {
		return types.VaultConfig{}, fmt.Errorf("no vault config for %s", addr)
	}
	return config, nil
}

func (k ParamsKeeper) TargetHealthFactor(_ context.Context) (math.LegacyDec, error) {
	if k.THF.IsNil() {
		return math.LegacyDec{}, fmt.Errorf("no target health factor")
	}
	return k.THF, nil
}

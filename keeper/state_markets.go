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
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	"redbank.calypso.zone/types"
)

// GetMarket fetches a market by denom. The boolean flag indicates whether the
// market exists in state.
func (k *Keeper) GetMarket(ctx context.Context, denom string) (types.Market, bool, error) {
	market, err := k.Markets.Get(ctx, denom)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Market{}, false, nil
		}
		return types.Market{}, false, err
	}

	return market, true, nil
}

// SetMarket persists the provided market to state.
func (k *Keeper) SetMarket(ctx context.Context, market types.Market) error {
	return k.Markets.Set(ctx, market.Denom, market)
}

// IterateMarkets walks every stored market and invokes the supplied callback.
// Returning true from the callback stops the iteration early.
func (k *Keeper) IterateMarkets(ctx context.Context, fn func(market types.Market) (bool, error)) error {
	return k.Markets.Walk(ctx, nil, func(_ string, market types.Market) (bool, error) {
		return fn(market)
	})
}

// GetAllMarkets returns every market currently stored.
func (k *Keeper) GetAllMarkets(ctx context.Context) ([]types.Market, error) {
	var markets []types.Market

	err := k.IterateMarkets(ctx, func(market types.Market) (bool, error) {
		markets = append(markets, market)
		return false, nil
	})

	return markets, err
}

// mustGetActiveMarket fetches a market and enforces that it exists and is
// active.
func (k *Keeper) mustGetActiveMarket(ctx context.Context, denom string) (types.Market, error) {
	market, found, err := k.GetMarket(ctx, denom)
	if err != nil {
		return types.Market{}, err
	}
	if !found {
		return types.Market{}, sdkerrors.Wrapf(types.ErrMarketNotFound, "denom %s", denom)
	}
	if !market.Active {
		return types.Market{}, sdkerrors.Wrapf(types.ErrMarketNotActive, "denom %s", denom)
	}

	return market, nil
}

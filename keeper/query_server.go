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
	sdk "github.com/cosmos/cosmos-sdk/types"

	"redbank.calypso.zone/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (k queryServer) Market(ctx context.Context, req *types.QueryMarketRequest) (*types.QueryMarketResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid request")
	}

	market, found, err := k.GetMarket(ctx, req.Denom)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrMarketNotFound, "denom %s", req.Denom)
	}

	// Queries never persist index refreshes.
	market, err = k.marketAtBlockTime(ctx, market)
	if err != nil {
		return nil, err
	}

	return &types.QueryMarketResponse{Market: market}, nil
}

func (k queryServer) Markets(ctx context.Context, req *types.QueryMarketsRequest) (*types.QueryMarketsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid request")
	}

	var markets []types.Market
	err := k.IterateMarkets(ctx, func(market types.Market) (bool, error) {
		market, err := k.marketAtBlockTime(ctx, market)
		if err != nil {
			return true, err
		}
		markets = append(markets, market)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryMarketsResponse{Markets: markets}, nil
}

func (k queryServer) Position(ctx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid request")
	}

	market, found, err := k.GetMarket(ctx, req.Denom)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrMarketNotFound, "denom %s", req.Denom)
	}
	market, err = k.marketAtBlockTime(ctx, market)
	if err != nil {
		return nil, err
	}

	position, _, err := k.GetPosition(ctx, req.Account, req.Denom)
	if err != nil {
		return nil, err
	}

	return k.positionResponse(req.Denom, market, position)
}

func (k queryServer) Positions(ctx context.Context, req *types.QueryPositionsRequest) (*types.QueryPositionsResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid request")
	}

	var positions []types.QueryPositionResponse
	err := k.IterateAccountPositions(ctx, req.Account, func(denom string, position types.Position) (bool, error) {
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

		entry, err := k.positionResponse(denom, market, position)
		if err != nil {
			return true, err
		}
		positions = append(positions, *entry)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryPositionsResponse{Positions: positions}, nil
}

func (k queryServer) positionResponse(denom string, market types.Market, position types.Position) (*types.QueryPositionResponse, error) {
	collateral, err := market.UnscaleLiquidity(position.CollateralScaled)
	if err != nil {
		return nil, err
	}
	debt, err := market.UnscaleDebt(position.DebtScaled)
	if err != nil {
		return nil, err
	}
	lend, err := market.UnscaleLiquidity(position.LendScaled)
	if err != nil {
		return nil, err
	}

	return &types.QueryPositionResponse{
		Denom:      denom,
		Collateral: sdk.NewCoin(denom, collateral),
		Debt:       sdk.NewCoin(denom, debt),
		Lend:       sdk.NewCoin(denom, lend),
		Enabled:    position.CollateralEnabled,
	}, nil
}

func (k queryServer) AccountHealth(ctx context.Context, req *types.QueryAccountHealthRequest) (*types.QueryAccountHealthResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid request")
	}

	health, err := k.Keeper.AccountHealth(ctx, req.Account, req.Kind)
	if err != nil {
		return nil, err
	}

	return &types.QueryAccountHealthResponse{Health: health}, nil
}

func (k queryServer) UncollateralizedLoanLimit(ctx context.Context, req *types.QueryUncollateralizedLoanLimitRequest) (*types.QueryUncollateralizedLoanLimitResponse, error) {
	if req == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid request")
	}

	limit, err := k.GetUncollateralizedLoanLimit(ctx, req.Account, req.Denom)
	if err != nil {
		return nil, err
	}

	return &types.QueryUncollateralizedLoanLimitResponse{Limit: limit}, nil
}

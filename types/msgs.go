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
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgDeposit supplies collateral to a market.
type MsgDeposit struct {
	Signer  string
	Account string
	Coin    sdk.Coin
}

type MsgDepositResponse struct {
	CollateralScaled math.Int
}

// MsgWithdraw removes collateral from a market. A nil or zero amount
// withdraws the full balance.
type MsgWithdraw struct {
	Signer  string
	Account string
	Denom   string
	Amount  math.Int
}

type MsgWithdrawResponse struct {
	Withdrawn sdk.Coin
}

// MsgBorrow draws debt from a market.
type MsgBorrow struct {
	Signer  string
	Account string
	Coin    sdk.Coin
}

type MsgBorrowResponse struct {
	DebtScaled math.Int
}

// MsgRepay pays down debt. Funds sent in excess of the amount owed are
// refunded.
type MsgRepay struct {
	Signer  string
	Account string
	Coin    sdk.Coin
}

type MsgRepayResponse struct {
	Repaid   sdk.Coin
	Refunded sdk.Coin
}

// MsgLend moves deposited collateral into the lent bucket.
type MsgLend struct {
	Signer  string
	Account string
	Coin    sdk.Coin
}

type MsgLendResponse struct {
	LendScaled math.Int
}

// MsgReclaim moves lent funds back into the deposit bucket. A nil or zero
// amount reclaims the full lent balance.
type MsgReclaim struct {
	Signer  string
	Account string
	Denom   string
	Amount  math.Int
}

type MsgReclaimResponse struct {
	Reclaimed sdk.Coin
}

// MsgLiquidate partially unwinds an unhealthy account. DebtCoin is the debt
// the liquidator offers to repay; CollateralDenom selects the collateral to
// seize and may name a vault address for vault-share collateral.
type MsgLiquidate struct {
	Liquidator      string
	Liquidatee      string
	DebtCoin        sdk.Coin
	CollateralDenom string
}

type MsgLiquidateResponse struct {
	DebtRepaid       sdk.Coin
	CollateralSeized sdk.Coin
	ProtocolFee      sdk.Coin
	Refunded         sdk.Coin
}

// MsgUpdateCollateralStatus enables or disables a deposit as collateral.
type MsgUpdateCollateralStatus struct {
	Signer  string
	Account string
	Denom   string
	Enabled bool
}

type MsgUpdateCollateralStatusResponse struct{}

// MsgSetUncollateralizedLoanLimit grants an account a debt allowance that is
// excluded from health accounting.
type MsgSetUncollateralizedLoanLimit struct {
	Authority string
	Account   string
	Denom     string
	Limit     math.Int
}

type MsgSetUncollateralizedLoanLimitResponse struct{}

// MsgCreateMarket registers a new market. Authority-gated.
type MsgCreateMarket struct {
	Authority         string
	Denom             string
	InterestRateModel InterestRateModel
	ReserveFactor     math.LegacyDec
	DepositCap        math.Int
}

type MsgCreateMarketResponse struct{}

// MsgUpdateMarket mutates an existing market's flags and parameters.
type MsgUpdateMarket struct {
	Authority         string
	Denom             string
	InterestRateModel InterestRateModel
	ReserveFactor     math.LegacyDec
	DepositCap        math.Int
	Active            bool
	DepositEnabled    bool
	BorrowEnabled     bool
}

type MsgUpdateMarketResponse struct{}

// MsgServer is the full set of state-mutating operations exposed by the core.
type MsgServer interface {
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(ctx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	Borrow(ctx context.Context, msg *MsgBorrow) (*MsgBorrowResponse, error)
	Repay(ctx context.Context, msg *MsgRepay) (*MsgRepayResponse, error)
	Lend(ctx context.Context, msg *MsgLend) (*MsgLendResponse, error)
	Reclaim(ctx context.Context, msg *MsgReclaim) (*MsgReclaimResponse, error)
	Liquidate(ctx context.Context, msg *MsgLiquidate) (*MsgLiquidateResponse, error)
	UpdateCollateralStatus(ctx context.Context, msg *MsgUpdateCollateralStatus) (*MsgUpdateCollateralStatusResponse, error)
	SetUncollateralizedLoanLimit(ctx context.Context, msg *MsgSetUncollateralizedLoanLimit) (*MsgSetUncollateralizedLoanLimitResponse, error)
	CreateMarket(ctx context.Context, msg *MsgCreateMarket) (*MsgCreateMarketResponse, error)
	UpdateMarket(ctx context.Context, msg *MsgUpdateMarket) (*MsgUpdateMarketResponse, error)
}

type QueryMarketRequest struct {
	Denom string
}

type QueryMarketResponse struct {
	Market Market
}

type QueryMarketsRequest struct{}

type QueryMarketsResponse struct {
	Markets []Market
}

type QueryPositionRequest struct {
	Account string
	Denom   string
}

type QueryPositionResponse struct {
	Denom      string
	Collateral sdk.Coin
	Debt       sdk.Coin
	Lend       sdk.Coin
	Enabled    bool
}

type QueryPositionsRequest struct {
	Account string
}

type QueryPositionsResponse struct {
	Positions []QueryPositionResponse
}

type QueryAccountHealthRequest struct {
	Account string
	Kind    AccountKind
}

type QueryAccountHealthResponse struct {
	Health Health
}

type QueryUncollateralizedLoanLimitRequest struct {
	Account string
	Denom   string
}

type QueryUncollateralizedLoanLimitResponse struct {
	Limit math.Int
}

// QueryServer is the read-only surface of the core. Queries never persist
// index refreshes.
type QueryServer interface {
	Market(ctx context.Context, req *QueryMarketRequest) (*QueryMarketResponse, error)
	Markets(ctx context.Context, req *QueryMarketsRequest) (*QueryMarketsResponse, error)
	Position(ctx context.Context, req *QueryPositionRequest) (*QueryPositionResponse, error)
	Positions(ctx context.Context, req *QueryPositionsRequest) (*QueryPositionsResponse, error)
	AccountHealth(ctx context.Context, req *QueryAccountHealthRequest) (*QueryAccountHealthResponse, error)
	UncollateralizedLoanLimit(ctx context.Context, req *QueryUncollateralizedLoanLimitRequest) (*QueryUncollateralizedLoanLimitResponse, error)
}

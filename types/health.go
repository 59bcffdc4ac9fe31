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
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VaultPositionValue is a vault position resolved to underlying base-token
// units, ready for valuation.
type VaultPositionValue struct {
	Addr       string   `json:"addr"`
	Shares     math.Int `json:"shares"`
	BaseAmount math.Int `json:"base_amount"`
	BaseDenom  string   `json:"base_denom"`
}

// Positions is the immutable snapshot of an account handed to the health
// computer. Amounts are underlying, not scaled.
type Positions struct {
	AccountId   string               `json:"account_id"`
	AccountKind AccountKind          `json:"account_kind"`
	Deposits    sdk.Coins            `json:"deposits"`
	Lends       sdk.Coins            `json:"lends"`
	Debts       sdk.Coins            `json:"debts"`
	Vaults      []VaultPositionValue `json:"vaults,omitempty"`
}

// DenomsData carries the prices and risk params needed to value a snapshot.
type DenomsData struct {
	Prices map[string]math.LegacyDec
	Params map[string]AssetParams
}

// VaultsData carries the per-vault values and configs needed to value a
// snapshot's vault positions.
type VaultsData struct {
	Values  map[string]math.Int
	Configs map[string]VaultConfig
}

// Health is the aggregate risk report for one account. The health factors are
// nil exactly when the account carries no debt.
type Health struct {
	TotalCollateralValue                   math.Int        `json:"total_collateral_value"`
	MaxLtvAdjustedCollateral               math.Int        `json:"max_ltv_adjusted_collateral"`
	LiquidationThresholdAdjustedCollateral math.Int        `json:"liquidation_threshold_adjusted_collateral"`
	TotalDebtValue                         math.Int        `json:"total_debt_value"`
	MaxLtvHealthFactor                     *math.LegacyDec `json:"max_ltv_health_factor,omitempty"`
	LiquidationHealthFactor                *math.LegacyDec `json:"liquidation_health_factor,omitempty"`
}

// IsAboveMaxLtv reports whether new borrows and withdrawals must be refused.
func (h Health) IsAboveMaxLtv() bool {
	return h.MaxLtvHealthFactor != nil && h.MaxLtvHealthFactor.LT(math.LegacyOneDec())
}

// IsLiquidatable reports whether the account may be liquidated.
func (h Health) IsLiquidatable() bool {
	return h.LiquidationHealthFactor != nil && h.LiquidationHealthFactor.LT(math.LegacyOneDec())
}

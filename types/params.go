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
	"fmt"

	"cosmossdk.io/math"
)

// LiquidationBonus parameterizes the bonus paid to liquidators. The realized
// bonus grows with how unhealthy the account is and is capped by the
// account's collateralization headroom.
type LiquidationBonus struct {
	StartingLB math.LegacyDec `json:"starting_lb"`
	Slope      math.LegacyDec `json:"slope"`
	MinLB      math.LegacyDec `json:"min_lb"`
	MaxLB      math.LegacyDec `json:"max_lb"`
}

// Validate checks the bonus parameters.
func (b LiquidationBonus) Validate() error {
	for name, value := range map[string]math.LegacyDec{
		"starting_lb": b.StartingLB,
		"slope":       b.Slope,
		"min_lb":      b.MinLB,
		"max_lb":      b.MaxLB,
	} {
		if value.IsNil() || value.IsNegative() {
			return fmt.Errorf("liquidation bonus %s must be non-negative", name)
		}
	}
	if b.MinLB.GT(b.MaxLB) {
		return fmt.Errorf("liquidation bonus min_lb cannot exceed max_lb")
	}
	return nil
}

// HLSParams is the alternative risk parameter set applied to accounts of kind
// high levered strategy.
type HLSParams struct {
	MaxLoanToValue       math.LegacyDec `json:"max_loan_to_value"`
	LiquidationThreshold math.LegacyDec `json:"liquidation_threshold"`
	Correlations         []string       `json:"correlations,omitempty"`
}

// AssetParams carries the per-denom risk configuration read from the external
// params registry.
type AssetParams struct {
	Denom                  string           `json:"denom"`
	MaxLoanToValue         math.LegacyDec   `json:"max_loan_to_value"`
	LiquidationThreshold   math.LegacyDec   `json:"liquidation_threshold"`
	LiquidationBonus       LiquidationBonus `json:"liquidation_bonus"`
	ProtocolLiquidationFee math.LegacyDec   `json:"protocol_liquidation_fee"`
	Whitelisted            bool             `json:"whitelisted"`
	HLS                    *HLSParams       `json:"hls,omitempty"`
}

// Validate enforces 0 <= max_ltv <= liquidation_threshold <= 1 along with the
// nested bonus constraints.
func (p AssetParams) Validate() error {
	if p.Denom == "" {
		return fmt.Errorf("asset params denom cannot be empty")
	}
	if p.MaxLoanToValue.IsNil() || p.MaxLoanToValue.IsNegative() {
		return fmt.Errorf("max loan to value must be non-negative")
	}
	if p.LiquidationThreshold.IsNil() || p.LiquidationThreshold.LT(p.MaxLoanToValue) {
		return fmt.Errorf("liquidation threshold cannot be below max loan to value")
	}
	if p.LiquidationThreshold.GT(math.LegacyOneDec()) {
		return fmt.Errorf("liquidation threshold cannot exceed one")
	}
	if p.ProtocolLiquidationFee.IsNil() || p.ProtocolLiquidationFee.IsNegative() {
		return fmt.Errorf("protocol liquidation fee must be non-negative")
	}
	return p.LiquidationBonus.Validate()
}

// VaultConfig carries the per-vault risk configuration.
type VaultConfig struct {
	Addr                 string         `json:"addr"`
	MaxLoanToValue       math.LegacyDec `json:"max_loan_to_value"`
	LiquidationThreshold math.LegacyDec `json:"liquidation_threshold"`
	Whitelisted          bool           `json:"whitelisted"`
	HLS                  *HLSParams     `json:"hls,omitempty"`
}

// VaultInfo describes a vault's token pair. LockupDuration is zero for vaults
// without a lock.
type VaultInfo struct {
	BaseToken      string `json:"base_token"`
	VaultToken     string `json:"vault_token"`
	LockupDuration int64  `json:"lockup_duration,omitempty"`
}

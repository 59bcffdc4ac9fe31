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

const (
	EventTypeDeposit            = "redbank_deposit"
	EventTypeWithdraw           = "redbank_withdraw"
	EventTypeBorrow             = "redbank_borrow"
	EventTypeRepay              = "redbank_repay"
	EventTypeLend               = "redbank_lend"
	EventTypeReclaim            = "redbank_reclaim"
	EventTypeLiquidate          = "redbank_liquidate"
	EventTypeCollateralToggle   = "redbank_collateral_toggle"
	EventTypeMarketUpdated      = "redbank_market_updated"
	EventTypeInterestRates      = "redbank_interest_rates_updated"
	EventTypeVaultForceWithdraw = "redbank_vault_force_withdraw"

	AttributeKeyAccount             = "account"
	AttributeKeyDenom               = "denom"
	AttributeKeyAmount              = "amount"
	AttributeKeyAmountScaled        = "amount_scaled"
	AttributeKeyEnabled             = "enabled"
	AttributeKeyLiquidator          = "liquidator"
	AttributeKeyLiquidatee          = "liquidatee"
	AttributeKeyDebtRepaid          = "debt_repaid"
	AttributeKeyDebtRefunded        = "debt_refunded"
	AttributeKeyCollateralSeized    = "collateral_seized"
	AttributeKeyProtocolFee         = "protocol_fee"
	AttributeKeyBorrowRate          = "borrow_rate"
	AttributeKeyLiquidityRate       = "liquidity_rate"
	AttributeKeyBorrowIndex         = "borrow_index"
	AttributeKeyLiquidityIndex      = "liquidity_index"
	AttributeKeyVault               = "vault"
	AttributeKeyUnlockingId         = "unlocking_id"
	AttributeKeyRecipient           = "recipient"
)

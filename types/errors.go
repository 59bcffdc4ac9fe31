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

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest = errors.Register(ModuleName, 2, "invalid request")
	ErrNotAuthorized  = errors.Register(ModuleName, 3, "signer is not authorized")

	// Preconditions.
	ErrNotTokenOwner       = errors.Register(ModuleName, 10, "sender is not the owner of the account")
	ErrNotWhitelisted      = errors.Register(ModuleName, 11, "asset is not whitelisted")
	ErrNoAmount            = errors.Register(ModuleName, 12, "amount must be positive")
	ErrFundsMismatch       = errors.Register(ModuleName, 13, "sent funds do not match the requested action")
	ErrExtraFundsReceived  = errors.Register(ModuleName, 14, "extra funds received")
	ErrMismatchedVaultType = errors.Register(ModuleName, 15, "mismatched vault position type")

	// Market state.
	ErrMarketNotFound     = errors.Register(ModuleName, 20, "market not found")
	ErrMarketNotActive    = errors.Register(ModuleName, 21, "market is not active")
	ErrDepositNotEnabled  = errors.Register(ModuleName, 22, "deposits are not enabled for market")
	ErrBorrowNotEnabled   = errors.Register(ModuleName, 23, "borrowing is not enabled for market")
	ErrDepositCapExceeded = errors.Register(ModuleName, 24, "deposit cap exceeded")

	// Liquidation.
	ErrCannotLiquidateSelf                   = errors.Register(ModuleName, 30, "cannot liquidate own account")
	ErrNotLiquidatable                       = errors.Register(ModuleName, 31, "cannot liquidate healthy position")
	ErrCannotLiquidateWhenCollateralDisabled = errors.Register(ModuleName, 32, "cannot liquidate when the requested collateral is disabled")
	ErrCannotLiquidateWhenNoCollateral       = errors.Register(ModuleName, 33, "cannot liquidate when there is no collateral balance")
	ErrCannotLiquidateWhenNoDebt             = errors.Register(ModuleName, 34, "cannot liquidate when there is no debt balance")
	ErrLiquidationNotProfitable              = errors.Register(ModuleName, 35, "liquidation is not profitable")
	ErrInvalidLiquidationParams              = errors.Register(ModuleName, 36, "inconsistent liquidation parameters")

	// Accounting.
	ErrInsufficientBalance          = errors.Register(ModuleName, 40, "insufficient balance")
	ErrNoDebt                       = errors.Register(ModuleName, 41, "no debt to repay")
	ErrNoneLent                     = errors.Register(ModuleName, 42, "no lent amount to reclaim")
	ErrUnlockNotReady               = errors.Register(ModuleName, 43, "unlocking position has not reached its release time")
	ErrExceedsMaxUnlockingPositions = errors.Register(ModuleName, 44, "exceeds the maximum number of unlocking positions")

	ErrInvalidHealthFactorAfterSettingUncollateralizedLoanLimit = errors.Register(ModuleName, 45, "account health factor would be invalid after setting uncollateralized loan limit")

	// Arithmetic.
	ErrOverflow     = errors.Register(ModuleName, 50, "arithmetic overflow")
	ErrDivideByZero = errors.Register(ModuleName, 51, "division by zero")
	ErrIndexBehind  = errors.Register(ModuleName, 52, "market indexes are ahead of the requested time")

	// Data.
	ErrMissingPrice       = errors.Register(ModuleName, 60, "missing price for denom")
	ErrMissingParams      = errors.Register(ModuleName, 61, "missing asset params for denom")
	ErrMissingHLSParams   = errors.Register(ModuleName, 62, "missing high levered strategy params for denom")
	ErrMissingVaultValues = errors.Register(ModuleName, 63, "missing value for vault")
	ErrMissingVaultConfig = errors.Register(ModuleName, 64, "missing config for vault")
)

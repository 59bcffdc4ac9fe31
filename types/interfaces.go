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

// BankKeeper is the fungible token transfer layer.
type BankKeeper interface {
	SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// AccountKeeper resolves module accounts.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// OracleKeeper is the synchronous price source. Prices are expressed in the
// protocol's quote unit per base unit of the asset.
type OracleKeeper interface {
	GetPrice(ctx context.Context, denom string) (math.LegacyDec, error)
	TotalValue(ctx context.Context, coins sdk.Coins) (math.Int, error)
}

// ParamsKeeper is the external per-asset risk parameter registry.
type ParamsKeeper interface {
	AssetParams(ctx context.Context, denom string) (AssetParams, error)
	VaultConfig(ctx context.Context, addr string) (VaultConfig, error)
	TargetHealthFactor(ctx context.Context) (math.LegacyDec, error)
}

// VaultKeeper adapts external vaults. PreviewRedeem quotes shares in the
// vault's base token; the withdraw calls move funds to the recipient within
// the enclosing transaction.
type VaultKeeper interface {
	Info(ctx context.Context, vaultAddr string) (VaultInfo, error)
	PreviewRedeem(ctx context.Context, vaultAddr string, shares math.Int) (math.Int, error)
	Withdraw(ctx context.Context, vaultAddr string, shares math.Int, recipient sdk.AccAddress) error
	ForceWithdrawUnlocking(ctx context.Context, vaultAddr string, unlockingId uint64, amount math.Int, recipient sdk.AccAddress) error
	ForceWithdrawLocked(ctx context.Context, vaultAddr string, shares math.Int, recipient sdk.AccAddress) error
}

// AccountRegistry maps account identifiers to their owning principal and
// flags sub-accounts controlled by an external credit manager.
type AccountRegistry interface {
	OwnerOf(ctx context.Context, accountId string) (string, error)
	IsManagerControlled(ctx context.Context, accountId string) (bool, error)
}

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

// AccountKind selects the risk parameter set used when computing health.
type AccountKind int32

const (
	// ACCOUNT_KIND_DEFAULT uses the base per-asset risk parameters.
	ACCOUNT_KIND_DEFAULT AccountKind = iota
	// ACCOUNT_KIND_HIGH_LEVERED_STRATEGY uses the dedicated HLS parameter set
	// and enforces the HLS whitelist rules.
	ACCOUNT_KIND_HIGH_LEVERED_STRATEGY
)

// Position is the per (account, denom) row of scaled balances. A row exists
// only while at least one of the three scaled balances is non-zero.
type Position struct {
	CollateralScaled     math.Int `json:"collateral_scaled"`
	CollateralEnabled    bool     `json:"collateral_enabled"`
	DebtScaled           math.Int `json:"debt_scaled"`
	DebtUncollateralized bool     `json:"debt_uncollateralized"`
	LendScaled           math.Int `json:"lend_scaled"`
}

// NewPosition returns an empty position row.
func NewPosition() Position {
	return Position{
		CollateralScaled:  math.ZeroInt(),
		CollateralEnabled: true,
		DebtScaled:        math.ZeroInt(),
		LendScaled:        math.ZeroInt(),
	}
}

// IsEmpty reports whether all three scaled balances are zero, meaning the row
// can be deleted.
func (p Position) IsEmpty() bool {
	return p.CollateralScaled.IsZero() && p.DebtScaled.IsZero() && p.LendScaled.IsZero()
}

// VaultPositionKind discriminates the vault position variants.
type VaultPositionKind int32

const (
	// VAULT_POSITION_UNLOCKED holds freely redeemable vault shares.
	VAULT_POSITION_UNLOCKED VaultPositionKind = iota
	// VAULT_POSITION_LOCKING holds locked shares plus an ordered queue of
	// unlocking buckets denominated in the vault's base token.
	VAULT_POSITION_LOCKING
)

// UnlockingPosition is a bucket of base tokens that has been requested to
// unlock and becomes withdrawable at ReleaseAt.
type UnlockingPosition struct {
	Id        uint64   `json:"id"`
	BaseCoin  sdk.Coin `json:"base_coin"`
	ReleaseAt int64    `json:"release_at"`
}

// VaultPosition is the per (account, vault) row. Exactly one variant is in
// use, selected by Kind; the other variant's fields stay zero.
type VaultPosition struct {
	Kind           VaultPositionKind   `json:"kind"`
	UnlockedShares math.Int            `json:"unlocked_shares"`
	LockedShares   math.Int            `json:"locked_shares"`
	Unlocking      []UnlockingPosition `json:"unlocking,omitempty"`
}

// NewUnlockedVaultPosition returns an unlocked-variant position.
func NewUnlockedVaultPosition(shares math.Int) VaultPosition {
	return VaultPosition{
		Kind:           VAULT_POSITION_UNLOCKED,
		UnlockedShares: shares,
		LockedShares:   math.ZeroInt(),
	}
}

// NewLockingVaultPosition returns a locking-variant position.
func NewLockingVaultPosition(locked math.Int, unlocking []UnlockingPosition) VaultPosition {
	return VaultPosition{
		Kind:           VAULT_POSITION_LOCKING,
		UnlockedShares: math.ZeroInt(),
		LockedShares:   locked,
		Unlocking:      unlocking,
	}
}

// TotalShares returns all vault shares held by the position, regardless of
// lock state. Unlocking buckets are excluded because they are already
// denominated in the base token.
func (v VaultPosition) TotalShares() math.Int {
	switch v.Kind {
	case VAULT_POSITION_UNLOCKED:
		return v.UnlockedShares
	case VAULT_POSITION_LOCKING:
		return v.LockedShares
	default:
		return math.ZeroInt()
	}
}

// UnlockingBase returns the total base-token amount across unlocking buckets.
func (v VaultPosition) UnlockingBase() math.Int {
	total := math.ZeroInt()
	for _, bucket := range v.Unlocking {
		total = total.Add(bucket.BaseCoin.Amount)
	}
	return total
}

// IsEmpty reports whether the position holds no shares and no unlocking
// buckets.
func (v VaultPosition) IsEmpty() bool {
	return v.TotalShares().IsZero() && len(v.Unlocking) == 0
}

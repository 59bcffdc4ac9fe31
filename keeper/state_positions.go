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
	"cosmossdk.io/math"

	"redbank.calypso.zone/types"
)

// PositionEntry pairs a position row with its denom for list queries.
type PositionEntry struct {
	Denom    string
	Position types.Position
}

// GetPosition fetches the position row for (account, denom). The boolean flag
// indicates whether the row exists in state.
func (k *Keeper) GetPosition(ctx context.Context, account, denom string) (types.Position, bool, error) {
	position, err := k.Positions.Get(ctx, collections.Join(account, denom))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.NewPosition(), false, nil
		}
		return types.Position{}, false, err
	}

	return position, true, nil
}

// SetPosition writes the position row, deleting it instead when all scaled
// balances are zero to keep the store compact.
func (k *Keeper) SetPosition(ctx context.Context, account, denom string, position types.Position) error {
	key := collections.Join(account, denom)
	if position.IsEmpty() {
		if err := k.Positions.Remove(ctx, key); err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.Positions.Set(ctx, key, position)
}

// IterateAccountPositions walks every position row of one account.
func (k *Keeper) IterateAccountPositions(ctx context.Context, account string, fn func(denom string, position types.Position) (bool, error)) error {
	rng := collections.NewPrefixedPairRange[string, string](account)
	return k.Positions.Walk(ctx, rng, func(key collections.Pair[string, string], position types.Position) (bool, error) {
		return fn(key.K2(), position)
	})
}

// GetAccountPositions returns every position row of one account.
func (k *Keeper) GetAccountPositions(ctx context.Context, account string) ([]PositionEntry, error) {
	var entries []PositionEntry

	err := k.IterateAccountPositions(ctx, account, func(denom string, position types.Position) (bool, error) {
		entries = append(entries, PositionEntry{Denom: denom, Position: position})
		return false, nil
	})

	return entries, err
}

// IncreaseCollateralScaled credits collateral shares to (account, denom).
func (k *Keeper) IncreaseCollateralScaled(ctx context.Context, account, denom string, scaled math.Int) error {
	position, _, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return err
	}

	if position.CollateralScaled, err = position.CollateralScaled.SafeAdd(scaled); err != nil {
		return err
	}

	return k.SetPosition(ctx, account, denom, position)
}

// DecreaseCollateralScaled debits collateral shares from (account, denom),
// failing when the balance would go negative.
func (k *Keeper) DecreaseCollateralScaled(ctx context.Context, account, denom string, scaled math.Int) error {
	position, found, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return err
	}
	if !found || position.CollateralScaled.LT(scaled) {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "collateral of %s for account %s", denom, account)
	}

	position.CollateralScaled = position.CollateralScaled.Sub(scaled)
	return k.SetPosition(ctx, account, denom, position)
}

// IncreaseDebtScaled credits debt shares to (account, denom).
func (k *Keeper) IncreaseDebtScaled(ctx context.Context, account, denom string, scaled math.Int, uncollateralized bool) error {
	position, _, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return err
	}

	if position.DebtScaled, err = position.DebtScaled.SafeAdd(scaled); err != nil {
		return err
	}
	position.DebtUncollateralized = uncollateralized

	return k.SetPosition(ctx, account, denom, position)
}

// DecreaseDebtScaled debits debt shares from (account, denom), failing when
// the balance would go negative.
func (k *Keeper) DecreaseDebtScaled(ctx context.Context, account, denom string, scaled math.Int) error {
	position, found, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return err
	}
	if !found || position.DebtScaled.LT(scaled) {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "debt of %s for account %s", denom, account)
	}

	position.DebtScaled = position.DebtScaled.Sub(scaled)
	return k.SetPosition(ctx, account, denom, position)
}

// IncreaseLendScaled credits lend shares to (account, denom).
func (k *Keeper) IncreaseLendScaled(ctx context.Context, account, denom string, scaled math.Int) error {
	position, _, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return err
	}

	if position.LendScaled, err = position.LendScaled.SafeAdd(scaled); err != nil {
		return err
	}

	return k.SetPosition(ctx, account, denom, position)
}

// DecreaseLendScaled debits lend shares from (account, denom), failing when
// the balance would go negative.
func (k *Keeper) DecreaseLendScaled(ctx context.Context, account, denom string, scaled math.Int) error {
	position, found, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return err
	}
	if !found || position.LendScaled.LT(scaled) {
		return sdkerrors.Wrapf(types.ErrNoneLent, "lend of %s for account %s", denom, account)
	}

	position.LendScaled = position.LendScaled.Sub(scaled)
	return k.SetPosition(ctx, account, denom, position)
}

// SetCollateralEnabled toggles whether a deposit counts as collateral.
func (k *Keeper) SetCollateralEnabled(ctx context.Context, account, denom string, enabled bool) error {
	position, found, err := k.GetPosition(ctx, account, denom)
	if err != nil {
		return err
	}
	if !found {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "no position of %s for account %s", denom, account)
	}

	position.CollateralEnabled = enabled
	return k.SetPosition(ctx, account, denom, position)
}

// GetUncollateralizedLoanLimit returns the configured uncollateralized debt
// allowance for (account, denom). Missing entries are zero.
func (k *Keeper) GetUncollateralizedLoanLimit(ctx context.Context, account, denom string) (math.Int, error) {
	limit, err := k.UncollateralizedLimits.Get(ctx, collections.Join(account, denom))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return limit, nil
}

// SetUncollateralizedLoanLimit stores the allowance, deleting the entry when
// the limit is zero.
func (k *Keeper) SetUncollateralizedLoanLimit(ctx context.Context, account, denom string, limit math.Int) error {
	key := collections.Join(account, denom)
	if !limit.IsPositive() {
		if err := k.UncollateralizedLimits.Remove(ctx, key); err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.UncollateralizedLimits.Set(ctx, key, limit)
}

// GetVaultPosition fetches the vault position for (account, vault). The
// boolean flag indicates whether the row exists in state.
func (k *Keeper) GetVaultPosition(ctx context.Context, account, vaultAddr string) (types.VaultPosition, bool, error) {
	position, err := k.VaultPositions.Get(ctx, collections.Join(account, vaultAddr))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VaultPosition{}, false, nil
		}
		return types.VaultPosition{}, false, err
	}

	return position, true, nil
}

// SetVaultPosition writes the vault position row, deleting it when emptied.
func (k *Keeper) SetVaultPosition(ctx context.Context, account, vaultAddr string, position types.VaultPosition) error {
	key := collections.Join(account, vaultAddr)
	if position.IsEmpty() {
		if err := k.VaultPositions.Remove(ctx, key); err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.VaultPositions.Set(ctx, key, position)
}

// IterateAccountVaultPositions walks every vault position of one account.
func (k *Keeper) IterateAccountVaultPositions(ctx context.Context, account string, fn func(vaultAddr string, position types.VaultPosition) (bool, error)) error {
	rng := collections.NewPrefixedPairRange[string, string](account)
	return k.VaultPositions.Walk(ctx, rng, func(key collections.Pair[string, string], position types.VaultPosition) (bool, error) {
		return fn(key.K2(), position)
	})
}

// NextVaultUnlockingID increments and returns the next unlocking bucket
// identifier for a vault. Identifiers start at one.
func (k *Keeper) NextVaultUnlockingID(ctx context.Context, vaultAddr string) (uint64, error) {
	next, err := k.VaultUnlockingNextID.Get(ctx, vaultAddr)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return 0, err
		}
		next = 1
	} else {
		next++
	}

	if err := k.VaultUnlockingNextID.Set(ctx, vaultAddr, next); err != nil {
		return 0, err
	}

	return next, nil
}

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

package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"redbank.calypso.zone/types"
)

var _ types.VaultKeeper = &VaultKeeper{}

// ForceWithdrawal records one withdraw call made against the mock vault.
type ForceWithdrawal struct {
	VaultAddr   string
	UnlockingId uint64
	Shares      math.Int
	Base        math.Int
	Recipient   sdk.AccAddress
}

// VaultKeeper simulates external vaults with a fixed base-token-per-share
// redemption rate. Withdrawals credit the recipient's bank balance directly.
type VaultKeeper struct {
	Infos map[string]types.VaultInfo
	Rates map[string]math.LegacyDec
	Bank  BankKeeper

	Withdrawals []ForceWithdrawal
}

func (k *VaultKeeper) Info(_ context.Context, vaultAddr string) (types.VaultInfo, error) {
	info, ok := k.Infos[vaultAddr]
	if !ok {
		return types.VaultInfo{}, fmt.Errorf("no vault %s", vaultAddr)
	}
	return info, nil
}

func (k *VaultKeeper) PreviewRedeem(_ context.Context, vaultAddr string, shares math.Int) (math.Int, error) {
	rate, ok := k.Rates[vaultAddr]
	if !ok {
		return math.ZeroInt(), fmt.Errorf("no vault %s", vaultAddr)
	}
	return rate.MulInt(shares).TruncateInt(), nil
}

func (k *VaultKeeper) Withdraw(ctx context.Context, vaultAddr string, shares math.Int, recipient sdk.AccAddress) error {
	base, err := k.PreviewRedeem(ctx, vaultAddr, shares)
	if err != nil {
		return err
	}
	return k.payOut(ctx, vaultAddr, ForceWithdrawal{VaultAddr: vaultAddr, Shares: shares, Base: base, Recipient: recipient})
}

func (k *VaultKeeper) ForceWithdrawUnlocking(ctx context.Context, vaultAddr string, unlockingId uint64, amount math.Int, recipient sdk.AccAddress) error {
	return k.payOut(ctx, vaultAddr, ForceWithdrawal{VaultAddr: vaultAddr, UnlockingId: unlockingId, Shares: math.ZeroInt(), Base: amount, Recipient: recipient})
}

func (k *VaultKeeper) ForceWithdrawLocked(ctx context.Context, vaultAddr string, shares math.Int, recipient sdk.AccAddress) error {
	base, err := k.PreviewRedeem(ctx, vaultAddr, shares)
	if err != nil {
		return err
	}
	return k.payOut(ctx, vaultAddr, ForceWithdrawal{VaultAddr: vaultAddr, Shares: shares, Base: base, Recipient: recipient})
}

func (k *VaultKeeper) payOut(ctx context.Context, vaultAddr string, withdrawal ForceWithdrawal) error {
	info, err := k.Info(ctx, vaultAddr)
	if err != nil {
		return err
	}

	k.Bank.Mint(withdrawal.Recipient, sdk.NewCoins(sdk.NewCoin(info.BaseToken, withdrawal.Base)))
	k.Withdrawals = append(k.Withdrawals, withdrawal)
	return nil
}

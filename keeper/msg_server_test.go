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

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redbank.calypso.zone/keeper"
	"redbank.calypso.zone/types"
	"redbank.calypso.zone/utils"
	"redbank.calypso.zone/utils/mocks"
)

// marketFixture creates zero-rate uosmo and uatom markets with both assets
// priced at 1.0 and whitelisted.
func marketFixture(t *testing.T) (*keeper.Keeper, *mocks.Suite, sdk.Context, types.MsgServer) {
	t.Helper()

	k, s, ctx := mocks.RedBankKeeper(t)
	srv := keeper.NewMsgServer(k)

	s.Oracle.Prices["uosmo"] = math.LegacyOneDec()
	s.Oracle.Prices["uatom"] = math.LegacyOneDec()
	s.Params.Assets["uosmo"] = assetParams("uosmo", "0.5", "0.55", true)
	s.Params.Assets["uatom"] = assetParams("uatom", "0.7", "0.75", true)

	createMarket(t, srv, ctx, "uosmo")
	createMarket(t, srv, ctx, "uatom")

	return k, s, ctx, srv
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	// ARRANGE
	k, s, ctx, srv := marketFixture(t)
	account := utils.TestAccount()
	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(500))))

	// ACT: deposit everything.
	resp, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(500))})
	require.NoError(t, err)

	// ASSERT
	assert.Equal(t, math.NewInt(500).Mul(types.ScalingFactor), resp.CollateralScaled)
	assert.True(t, s.Bank.GetBalance(ctx, account.Bytes, "uosmo").Amount.IsZero())
	assert.Equal(t, math.NewInt(500), s.Bank.GetBalance(ctx, types.ModuleAddress, "uosmo").Amount)

	market, _, err := k.GetMarket(ctx, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(500).Mul(types.ScalingFactor), market.CollateralTotalScaled)

	// ACT: withdraw part, then the rest via the withdraw-all form.
	withdrawResp, err := srv.Withdraw(ctx, &types.MsgWithdraw{Signer: account.Address, Denom: "uosmo", Amount: math.NewInt(200)})
	require.NoError(t, err)
	assert.Equal(t, sdk.NewCoin("uosmo", math.NewInt(200)), withdrawResp.Withdrawn)

	withdrawResp, err = srv.Withdraw(ctx, &types.MsgWithdraw{Signer: account.Address, Denom: "uosmo"})
	require.NoError(t, err)
	assert.Equal(t, sdk.NewCoin("uosmo", math.NewInt(300)), withdrawResp.Withdrawn)

	// ASSERT: the emptied row is deleted and every coin came back.
	_, found, err := k.GetPosition(ctx, account.Address, "uosmo")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, math.NewInt(500), s.Bank.GetBalance(ctx, account.Bytes, "uosmo").Amount)

	market, _, err = k.GetMarket(ctx, "uosmo")
	require.NoError(t, err)
	assert.True(t, market.CollateralTotalScaled.IsZero())
}

func TestDepositRejections(t *testing.T) {
	_, s, ctx, srv := marketFixture(t)
	account := utils.TestAccount()

	// ACT & ASSERT: zero amount.
	_, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.Coin{Denom: "uosmo", Amount: math.ZeroInt()}})
	require.ErrorIs(t, err, types.ErrNoAmount)

	// ACT & ASSERT: unknown market.
	_, err = srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.NewCoin("unknown", math.NewInt(100))})
	require.ErrorIs(t, err, types.ErrMarketNotFound)

	// ACT & ASSERT: deposit cap.
	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(2_000_000_000))))
	_, err = srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(1_000_000_001))})
	require.ErrorIs(t, err, types.ErrDepositCapExceeded)
}

func TestBorrowRejections(t *testing.T) {
	// ARRANGE: 1000 uosmo of collateral can back at most 500 of borrow value.
	_, s, ctx, srv := marketFixture(t)
	whale := utils.TestAccount()
	account := utils.TestAccount()

	s.Bank.Mint(whale.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))
	_, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: whale.Address, Coin: sdk.NewCoin("uatom", math.NewInt(1000))})
	require.NoError(t, err)

	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(1000))))
	_, err = srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(1000))})
	require.NoError(t, err)

	// ACT & ASSERT: more than the market holds.
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(2000))})
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	// ACT & ASSERT: more than the collateral supports.
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(600))})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// ACT & ASSERT: delisted borrow asset.
	params := s.Params.Assets["uatom"]
	params.Whitelisted = false
	s.Params.Assets["uatom"] = params
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(100))})
	require.ErrorIs(t, err, types.ErrNotWhitelisted)
}

func TestRepayRefundsExcess(t *testing.T) {
	// ARRANGE: the account owes 50 uatom and sends 75.
	k, s, ctx, srv := marketFixture(t)
	whale := utils.TestAccount()
	account := utils.TestAccount()

	s.Bank.Mint(whale.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100))))
	_, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: whale.Address, Coin: sdk.NewCoin("uatom", math.NewInt(100))})
	require.NoError(t, err)

	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(300))))
	_, err = srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(300))})
	require.NoError(t, err)
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(50))})
	require.NoError(t, err)

	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(25))))

	// ACT
	resp, err := srv.Repay(ctx, &types.MsgRepay{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(75))})
	require.NoError(t, err)

	// ASSERT: only the amount owed is consumed.
	assert.Equal(t, sdk.NewCoin("uatom", math.NewInt(50)), resp.Repaid)
	assert.Equal(t, sdk.NewCoin("uatom", math.NewInt(25)), resp.Refunded)
	assert.Equal(t, math.NewInt(25), s.Bank.GetBalance(ctx, account.Bytes, "uatom").Amount)

	// ASSERT: the debt row is gone and the market total is back to zero.
	_, found, err := k.GetPosition(ctx, account.Address, "uatom")
	require.NoError(t, err)
	assert.False(t, found)

	market, _, err := k.GetMarket(ctx, "uatom")
	require.NoError(t, err)
	assert.True(t, market.DebtTotalScaled.IsZero())
}

func TestRepayWithoutDebt(t *testing.T) {
	_, s, ctx, srv := marketFixture(t)
	account := utils.TestAccount()
	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10))))

	_, err := srv.Repay(ctx, &types.MsgRepay{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(10))})
	require.ErrorIs(t, err, types.ErrNoDebt)
}

func TestLendAndReclaim(t *testing.T) {
	// ARRANGE
	k, s, ctx, srv := marketFixture(t)
	account := utils.TestAccount()
	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(500))))
	_, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(500))})
	require.NoError(t, err)

	// ACT: move 200 into the lent bucket.
	lendResp, err := srv.Lend(ctx, &types.MsgLend{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(200))})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(200).Mul(types.ScalingFactor), lendResp.LendScaled)

	// ASSERT: shares moved between buckets, the market total is untouched.
	position, _, err := k.GetPosition(ctx, account.Address, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(300).Mul(types.ScalingFactor), position.CollateralScaled)
	assert.Equal(t, math.NewInt(200).Mul(types.ScalingFactor), position.LendScaled)

	market, _, err := k.GetMarket(ctx, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(500).Mul(types.ScalingFactor), market.CollateralTotalScaled)

	// ACT & ASSERT: lending more than the deposit bucket holds fails.
	_, err = srv.Lend(ctx, &types.MsgLend{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(400))})
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	// ACT: reclaim everything.
	reclaimResp, err := srv.Reclaim(ctx, &types.MsgReclaim{Signer: account.Address, Denom: "uosmo"})
	require.NoError(t, err)
	assert.Equal(t, sdk.NewCoin("uosmo", math.NewInt(200)), reclaimResp.Reclaimed)

	position, _, err = k.GetPosition(ctx, account.Address, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(500).Mul(types.ScalingFactor), position.CollateralScaled)
	assert.True(t, position.LendScaled.IsZero())

	// ACT & ASSERT: nothing left to reclaim.
	_, err = srv.Reclaim(ctx, &types.MsgReclaim{Signer: account.Address, Denom: "uosmo"})
	require.ErrorIs(t, err, types.ErrNoneLent)
}

func TestUpdateCollateralStatus(t *testing.T) {
	// ARRANGE
	k, s, ctx, srv := marketFixture(t)
	account := utils.TestAccount()
	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(300))))
	_, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(300))})
	require.NoError(t, err)

	// ACT: disabling is fine while there is no debt.
	_, err = srv.UpdateCollateralStatus(ctx, &types.MsgUpdateCollateralStatus{Signer: account.Address, Denom: "uosmo", Enabled: false})
	require.NoError(t, err)

	position, _, err := k.GetPosition(ctx, account.Address, "uosmo")
	require.NoError(t, err)
	assert.False(t, position.CollateralEnabled)

	// ARRANGE: re-enable and take on debt backed by this collateral.
	_, err = srv.UpdateCollateralStatus(ctx, &types.MsgUpdateCollateralStatus{Signer: account.Address, Denom: "uosmo", Enabled: true})
	require.NoError(t, err)

	whale := utils.TestAccount()
	s.Bank.Mint(whale.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100))))
	_, err = srv.Deposit(ctx, &types.MsgDeposit{Signer: whale.Address, Coin: sdk.NewCoin("uatom", math.NewInt(100))})
	require.NoError(t, err)
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(50))})
	require.NoError(t, err)

	// ACT & ASSERT: disabling now would strand the debt above max LTV.
	_, err = srv.UpdateCollateralStatus(ctx, &types.MsgUpdateCollateralStatus{Signer: account.Address, Denom: "uosmo", Enabled: false})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestSetUncollateralizedLoanLimit(t *testing.T) {
	// ARRANGE: a market with liquidity and an account holding no collateral.
	k, s, ctx, srv := marketFixture(t)
	whale := utils.TestAccount()
	account := utils.TestAccount()

	s.Bank.Mint(whale.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))
	_, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: whale.Address, Coin: sdk.NewCoin("uatom", math.NewInt(1000))})
	require.NoError(t, err)

	// ACT & ASSERT: only the authority may grant limits.
	_, err = srv.SetUncollateralizedLoanLimit(ctx, &types.MsgSetUncollateralizedLoanLimit{
		Authority: account.Address, Account: account.Address, Denom: "uatom", Limit: math.NewInt(700),
	})
	require.ErrorIs(t, err, types.ErrNotAuthorized)

	_, err = srv.SetUncollateralizedLoanLimit(ctx, &types.MsgSetUncollateralizedLoanLimit{
		Authority: mocks.Authority, Account: account.Address, Denom: "uatom", Limit: math.NewInt(700),
	})
	require.NoError(t, err)

	// ACT: borrow against the limit with zero collateral.
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(600))})
	require.NoError(t, err)

	position, _, err := k.GetPosition(ctx, account.Address, "uatom")
	require.NoError(t, err)
	assert.True(t, position.DebtUncollateralized)

	// ASSERT: the allowance is a hard cap.
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: account.Address, Coin: sdk.NewCoin("uatom", math.NewInt(200))})
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// ACT & ASSERT: revoking the limit reclassifies the debt, which cannot
	// pass the health check without collateral behind it.
	_, err = srv.SetUncollateralizedLoanLimit(ctx, &types.MsgSetUncollateralizedLoanLimit{
		Authority: mocks.Authority, Account: account.Address, Denom: "uatom", Limit: math.ZeroInt(),
	})
	require.ErrorIs(t, err, types.ErrInvalidHealthFactorAfterSettingUncollateralizedLoanLimit)
}

func TestCreateMarketGates(t *testing.T) {
	_, _, ctx, srv := marketFixture(t)
	account := utils.TestAccount()

	// ACT & ASSERT: authority only.
	_, err := srv.CreateMarket(ctx, &types.MsgCreateMarket{
		Authority:         account.Address,
		Denom:             "untrn",
		InterestRateModel: zeroRateModel(),
		ReserveFactor:     math.LegacyZeroDec(),
		DepositCap:        math.NewInt(1_000_000_000),
	})
	require.ErrorIs(t, err, types.ErrNotAuthorized)

	// ACT & ASSERT: no duplicates.
	_, err = srv.CreateMarket(ctx, &types.MsgCreateMarket{
		Authority:         mocks.Authority,
		Denom:             "uosmo",
		InterestRateModel: zeroRateModel(),
		ReserveFactor:     math.LegacyZeroDec(),
		DepositCap:        math.NewInt(1_000_000_000),
	})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestUpdateMarketTogglesFlags(t *testing.T) {
	// ARRANGE
	k, s, ctx, srv := marketFixture(t)
	account := utils.TestAccount()
	s.Bank.Mint(account.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(100))))

	// ACT: switch deposits off.
	_, err := srv.UpdateMarket(ctx, &types.MsgUpdateMarket{
		Authority:         mocks.Authority,
		Denom:             "uosmo",
		InterestRateModel: zeroRateModel(),
		ReserveFactor:     math.LegacyZeroDec(),
		DepositCap:        math.NewInt(1_000_000_000),
		Active:            true,
		DepositEnabled:    false,
		BorrowEnabled:     true,
	})
	require.NoError(t, err)

	market, _, err := k.GetMarket(ctx, "uosmo")
	require.NoError(t, err)
	assert.False(t, market.DepositEnabled)

	// ASSERT: deposits are refused while the flag is off.
	_, err = srv.Deposit(ctx, &types.MsgDeposit{Signer: account.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(100))})
	require.ErrorIs(t, err, types.ErrDepositNotEnabled)

	// ACT & ASSERT: unknown market.
	_, err = srv.UpdateMarket(ctx, &types.MsgUpdateMarket{
		Authority:         mocks.Authority,
		Denom:             "unknown",
		InterestRateModel: zeroRateModel(),
		ReserveFactor:     math.LegacyZeroDec(),
		DepositCap:        math.NewInt(1_000_000_000),
		Active:            true,
		DepositEnabled:    true,
		BorrowEnabled:     true,
	})
	require.ErrorIs(t, err, types.ErrMarketNotFound)
}

func TestDepositForOwnedAccount(t *testing.T) {
	// ARRANGE: a registry-managed account owned by the signer.
	k, s, ctx, srv := marketFixture(t)
	owner := utils.TestAccount()
	stranger := utils.TestAccount()
	s.Registry.Owners["credit-account-7"] = owner.Address

	s.Bank.Mint(owner.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(100))))
	s.Bank.Mint(stranger.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(100))))

	// ACT & ASSERT: a non-owner cannot operate the account.
	_, err := srv.Deposit(ctx, &types.MsgDeposit{
		Signer:  stranger.Address,
		Account: "credit-account-7",
		Coin:    sdk.NewCoin("uosmo", math.NewInt(100)),
	})
	require.ErrorIs(t, err, types.ErrNotTokenOwner)

	// ACT: the owner funds it; the position lands on the named account.
	_, err = srv.Deposit(ctx, &types.MsgDeposit{
		Signer:  owner.Address,
		Account: "credit-account-7",
		Coin:    sdk.NewCoin("uosmo", math.NewInt(100)),
	})
	require.NoError(t, err)

	position, found, err := k.GetPosition(ctx, "credit-account-7", "uosmo")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, math.NewInt(100).Mul(types.ScalingFactor), position.CollateralScaled)
}

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

func resolverHealth(total, maxLtvAdjusted, liquidationAdjusted, debt int64) types.Health {
	health := types.Health{
		TotalCollateralValue:                   math.NewInt(total),
		MaxLtvAdjustedCollateral:               math.NewInt(maxLtvAdjusted),
		LiquidationThresholdAdjustedCollateral: math.NewInt(liquidationAdjusted),
		TotalDebtValue:                         math.NewInt(debt),
	}
	maxLtvHf, _ := types.Ratio(health.MaxLtvAdjustedCollateral, health.TotalDebtValue)
	liquidationHf, _ := types.Ratio(health.LiquidationThresholdAdjustedCollateral, health.TotalDebtValue)
	health.MaxLtvHealthFactor = &maxLtvHf
	health.LiquidationHealthFactor = &liquidationHf
	return health
}

// scenarioInputs prices 1048 uosmo collateral at 1.0 against 500 uatom of
// debt at 1.2, putting the liquidation health factor at exactly 0.96.
func scenarioInputs(requested int64) keeper.LiquidationInputs {
	return keeper.LiquidationInputs{
		CollateralAmountAvailable: math.NewInt(1048),
		CollateralPrice:           math.LegacyOneDec(),
		CollateralParams:          assetParams("uosmo", "0.5", "0.55", true),
		DebtAmountOwed:            math.NewInt(500),
		DebtAmountRequested:       math.NewInt(requested),
		DebtPrice:                 math.LegacyMustNewDecFromStr("1.2"),
		TargetHealthFactor:        math.LegacyMustNewDecFromStr("1.2"),
		Health:                    resolverHealth(1048, 524, 576, 600),
	}
}

func TestResolveLiquidationRequestedAmountBinds(t *testing.T) {
	// ACT: the liquidator offers less than every other cap allows.
	amounts, err := keeper.ResolveLiquidation(scenarioInputs(45))
	require.NoError(t, err)

	// ASSERT: bonus = 0.01 + 0.5 * (1 - 0.96) = 0.03, fee adds another 0.01.
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.03"), amounts.LiquidationBonusApplied)
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.04"), amounts.TotalLiquidationFee)

	assert.Equal(t, math.NewInt(45), amounts.DebtToRepay)
	assert.Equal(t, math.NewInt(56), amounts.CollateralToLiquidate)
	assert.Equal(t, math.NewInt(55), amounts.CollateralToLiquidator)
	assert.Equal(t, math.NewInt(1), amounts.ProtocolFeeCollateral)
}

func TestResolveLiquidationTargetHealthFactorBinds(t *testing.T) {
	// ACT: the liquidator offers far more than the target health factor lets
	// them repay.
	amounts, err := keeper.ResolveLiquidation(scenarioInputs(10_000))
	require.NoError(t, err)

	// ASSERT: repay stops at the amount that lifts the account back to the
	// 1.2 target. The repayable value 144/0.628 = 229.299... stays fractional
	// through the price division, so floor(229.299.../1.2) = 191, not
	// floor(229/1.2) = 190.
	assert.Equal(t, math.NewInt(191), amounts.DebtToRepay)
	assert.Equal(t, math.NewInt(238), amounts.CollateralToLiquidate)
	assert.Equal(t, math.NewInt(236), amounts.CollateralToLiquidator)
	assert.Equal(t, math.NewInt(2), amounts.ProtocolFeeCollateral)
}

func TestResolveLiquidationHealthyAccount(t *testing.T) {
	inputs := scenarioInputs(45)
	inputs.Health = resolverHealth(12_000, 5_000, 9_636, 1_000)

	_, err := keeper.ResolveLiquidation(inputs)
	require.ErrorIs(t, err, types.ErrNotLiquidatable)
}

func TestResolveLiquidationRejectsUnreachableTarget(t *testing.T) {
	// ARRANGE: a high liquidation threshold plus a large bonus push the
	// effective threshold past the target health factor.
	inputs := scenarioInputs(45)
	inputs.CollateralParams = types.AssetParams{
		Denom:                "uosmo",
		MaxLoanToValue:       math.LegacyMustNewDecFromStr("0.5"),
		LiquidationThreshold: math.LegacyMustNewDecFromStr("0.9"),
		LiquidationBonus: types.LiquidationBonus{
			StartingLB: math.LegacyMustNewDecFromStr("0.4"),
			Slope:      math.LegacyMustNewDecFromStr("0.5"),
			MinLB:      math.LegacyMustNewDecFromStr("0.005"),
			MaxLB:      math.LegacyMustNewDecFromStr("0.5"),
		},
		ProtocolLiquidationFee: math.LegacyMustNewDecFromStr("0.01"),
		Whitelisted:            true,
	}
	inputs.Health = resolverHealth(300, 150, 100, 200)

	// ACT & ASSERT: 1.2 - 0.9 * (1 + 0.5) is negative, so no repay amount can
	// reach the target.
	_, err := keeper.ResolveLiquidation(inputs)
	require.ErrorIs(t, err, types.ErrInvalidLiquidationParams)
}

func TestResolveLiquidationUnprofitable(t *testing.T) {
	// ARRANGE: zero bonus and fee with equal prices leaves the liquidator
	// breaking even at best.
	inputs := keeper.LiquidationInputs{
		CollateralAmountAvailable: math.NewInt(100),
		CollateralPrice:           math.LegacyOneDec(),
		CollateralParams: types.AssetParams{
			Denom:                  "uosmo",
			MaxLoanToValue:         math.LegacyMustNewDecFromStr("0.5"),
			LiquidationThreshold:   math.LegacyMustNewDecFromStr("0.9"),
			LiquidationBonus:       types.LiquidationBonus{StartingLB: math.LegacyZeroDec(), Slope: math.LegacyZeroDec(), MinLB: math.LegacyZeroDec(), MaxLB: math.LegacyZeroDec()},
			ProtocolLiquidationFee: math.LegacyZeroDec(),
			Whitelisted:            true,
		},
		DebtAmountOwed:      math.NewInt(100),
		DebtAmountRequested: math.NewInt(50),
		DebtPrice:           math.LegacyOneDec(),
		TargetHealthFactor:  math.LegacyMustNewDecFromStr("1.2"),
		Health:              resolverHealth(100, 50, 90, 100),
	}

	_, err := keeper.ResolveLiquidation(inputs)
	require.ErrorIs(t, err, types.ErrLiquidationNotProfitable)
}

func zeroRateModel() types.InterestRateModel {
	return types.InterestRateModel{
		Base:               math.LegacyZeroDec(),
		SlopeOne:           math.LegacyZeroDec(),
		SlopeTwo:           math.LegacyZeroDec(),
		OptimalUtilization: math.LegacyOneDec(),
	}
}

func createMarket(t *testing.T, srv types.MsgServer, ctx sdk.Context, denom string) {
	t.Helper()

	_, err := srv.CreateMarket(ctx, &types.MsgCreateMarket{
		Authority:         mocks.Authority,
		Denom:             denom,
		InterestRateModel: zeroRateModel(),
		ReserveFactor:     math.LegacyZeroDec(),
		DepositCap:        math.NewInt(1_000_000_000),
	})
	require.NoError(t, err)
}

// liquidationFixture funds a whale with 1000 uatom of liquidity, has the
// liquidatee deposit 1048 uosmo and borrow 500 uatom, then moves the uatom
// price from 1.0 to 1.2 so the liquidation health factor lands at 0.96.
func liquidationFixture(t *testing.T) (*keeper.Keeper, *mocks.Suite, sdk.Context, types.MsgServer, utils.Account, utils.Account) {
	t.Helper()

	k, s, ctx := mocks.RedBankKeeper(t)
	srv := keeper.NewMsgServer(k)

	whale := utils.TestAccount()
	liquidatee := utils.TestAccount()

	s.Oracle.Prices["uosmo"] = math.LegacyOneDec()
	s.Oracle.Prices["uatom"] = math.LegacyOneDec()
	s.Params.Assets["uosmo"] = assetParams("uosmo", "0.5", "0.55", true)
	s.Params.Assets["uatom"] = assetParams("uatom", "0.7", "0.75", true)

	createMarket(t, srv, ctx, "uosmo")
	createMarket(t, srv, ctx, "uatom")

	s.Bank.Mint(whale.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))
	_, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: whale.Address, Coin: sdk.NewCoin("uatom", math.NewInt(1000))})
	require.NoError(t, err)

	s.Bank.Mint(liquidatee.Bytes, sdk.NewCoins(sdk.NewCoin("uosmo", math.NewInt(1048))))
	_, err = srv.Deposit(ctx, &types.MsgDeposit{Signer: liquidatee.Address, Coin: sdk.NewCoin("uosmo", math.NewInt(1048))})
	require.NoError(t, err)
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: liquidatee.Address, Coin: sdk.NewCoin("uatom", math.NewInt(500))})
	require.NoError(t, err)

	s.Oracle.Prices["uatom"] = math.LegacyMustNewDecFromStr("1.2")

	return k, s, ctx, srv, whale, liquidatee
}

func TestLiquidate(t *testing.T) {
	// ARRANGE
	k, s, ctx, srv, _, liquidatee := liquidationFixture(t)
	liquidator := utils.TestAccount()
	s.Bank.Mint(liquidator.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(45))))

	before, err := k.AccountHealth(ctx, liquidatee.Address, types.ACCOUNT_KIND_DEFAULT)
	require.NoError(t, err)
	require.True(t, before.IsLiquidatable())

	// ACT
	resp, err := srv.Liquidate(ctx, &types.MsgLiquidate{
		Liquidator:      liquidator.Address,
		Liquidatee:      liquidatee.Address,
		DebtCoin:        sdk.NewCoin("uatom", math.NewInt(45)),
		CollateralDenom: "uosmo",
	})
	require.NoError(t, err)

	// ASSERT: 45 repaid against a 4% total fee seizes 56 uosmo, 55 of which
	// go to the liquidator and 1 to the protocol.
	assert.Equal(t, sdk.NewCoin("uatom", math.NewInt(45)), resp.DebtRepaid)
	assert.Equal(t, sdk.NewCoin("uosmo", math.NewInt(56)), resp.CollateralSeized)
	assert.Equal(t, sdk.NewCoin("uosmo", math.NewInt(1)), resp.ProtocolFee)
	assert.True(t, resp.Refunded.Amount.IsZero())

	// ASSERT: collateral moved as scaled shares, debt shrank.
	position, _, err := k.GetPosition(ctx, liquidatee.Address, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(992).Mul(types.ScalingFactor), position.CollateralScaled)

	position, _, err = k.GetPosition(ctx, liquidator.Address, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(55).Mul(types.ScalingFactor), position.CollateralScaled)

	position, _, err = k.GetPosition(ctx, mocks.RewardsCollector.String(), "uosmo")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1).Mul(types.ScalingFactor), position.CollateralScaled)

	position, _, err = k.GetPosition(ctx, liquidatee.Address, "uatom")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(455).Mul(types.ScalingFactor), position.DebtScaled)

	// ASSERT: the seizure itself does not touch the collateral market total,
	// while the repayment shrinks the debt total.
	market, _, err := k.GetMarket(ctx, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1048).Mul(types.ScalingFactor), market.CollateralTotalScaled)
	market, _, err = k.GetMarket(ctx, "uatom")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(455).Mul(types.ScalingFactor), market.DebtTotalScaled)

	// ASSERT: the liquidator paid in full and the health factor rose.
	assert.True(t, s.Bank.GetBalance(ctx, liquidator.Bytes, "uatom").Amount.IsZero())

	after, err := k.AccountHealth(ctx, liquidatee.Address, types.ACCOUNT_KIND_DEFAULT)
	require.NoError(t, err)
	require.NotNil(t, after.LiquidationHealthFactor)
	assert.True(t, after.LiquidationHealthFactor.GT(*before.LiquidationHealthFactor))

	require.NotEmpty(t, s.Events.Events)
	assert.Equal(t, types.EventTypeLiquidate, s.Events.Events[len(s.Events.Events)-1].Type)
}

func TestLiquidateUpToTargetRefundsExcess(t *testing.T) {
	// ARRANGE
	k, s, ctx, srv, _, liquidatee := liquidationFixture(t)
	liquidator := utils.TestAccount()
	s.Bank.Mint(liquidator.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(300))))

	// ACT: offer more than the target health factor allows.
	resp, err := srv.Liquidate(ctx, &types.MsgLiquidate{
		Liquidator:      liquidator.Address,
		Liquidatee:      liquidatee.Address,
		DebtCoin:        sdk.NewCoin("uatom", math.NewInt(300)),
		CollateralDenom: "uosmo",
	})
	require.NoError(t, err)

	// ASSERT: repay capped at 191, the rest returned.
	assert.Equal(t, sdk.NewCoin("uatom", math.NewInt(191)), resp.DebtRepaid)
	assert.Equal(t, sdk.NewCoin("uatom", math.NewInt(109)), resp.Refunded)
	assert.Equal(t, math.NewInt(109), s.Bank.GetBalance(ctx, liquidator.Bytes, "uatom").Amount)

	// ASSERT: the account ends healthy, at or below the 1.2 target.
	after, err := k.AccountHealth(ctx, liquidatee.Address, types.ACCOUNT_KIND_DEFAULT)
	require.NoError(t, err)
	assert.False(t, after.IsLiquidatable())
	require.NotNil(t, after.LiquidationHealthFactor)
	assert.True(t, after.LiquidationHealthFactor.LTE(math.LegacyMustNewDecFromStr("1.2")))
}

func TestLiquidateSelf(t *testing.T) {
	_, _, ctx, srv, _, liquidatee := liquidationFixture(t)

	_, err := srv.Liquidate(ctx, &types.MsgLiquidate{
		Liquidator:      liquidatee.Address,
		Liquidatee:      liquidatee.Address,
		DebtCoin:        sdk.NewCoin("uatom", math.NewInt(45)),
		CollateralDenom: "uosmo",
	})
	require.ErrorIs(t, err, types.ErrCannotLiquidateSelf)
}

func TestLiquidateHealthyAccount(t *testing.T) {
	// ARRANGE: undo the price jump so the account is comfortably healthy.
	_, s, ctx, srv, _, liquidatee := liquidationFixture(t)
	s.Oracle.Prices["uatom"] = math.LegacyOneDec()

	liquidator := utils.TestAccount()
	s.Bank.Mint(liquidator.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(45))))

	_, err := srv.Liquidate(ctx, &types.MsgLiquidate{
		Liquidator:      liquidator.Address,
		Liquidatee:      liquidatee.Address,
		DebtCoin:        sdk.NewCoin("uatom", math.NewInt(45)),
		CollateralDenom: "uosmo",
	})
	require.ErrorIs(t, err, types.ErrNotLiquidatable)
}

func TestLiquidateManagedAccountRejected(t *testing.T) {
	_, s, ctx, srv, _, liquidatee := liquidationFixture(t)
	s.Registry.Managed[liquidatee.Address] = true

	liquidator := utils.TestAccount()
	_, err := srv.Liquidate(ctx, &types.MsgLiquidate{
		Liquidator:      liquidator.Address,
		Liquidatee:      liquidatee.Address,
		DebtCoin:        sdk.NewCoin("uatom", math.NewInt(45)),
		CollateralDenom: "uosmo",
	})
	require.ErrorIs(t, err, types.ErrNotAuthorized)
}

func TestLiquidateWithoutCollateral(t *testing.T) {
	_, _, ctx, srv, whale, _ := liquidationFixture(t)

	// The whale holds uatom collateral but no uosmo.
	liquidator := utils.TestAccount()
	_, err := srv.Liquidate(ctx, &types.MsgLiquidate{
		Liquidator:      liquidator.Address,
		Liquidatee:      whale.Address,
		DebtCoin:        sdk.NewCoin("uatom", math.NewInt(45)),
		CollateralDenom: "uosmo",
	})
	require.ErrorIs(t, err, types.ErrCannotLiquidateWhenNoCollateral)
}

// vaultLiquidationFixture mirrors liquidationFixture but parks the
// liquidatee's 1048 uosmo inside a vault redeemable one-to-one.
func vaultLiquidationFixture(t *testing.T, position types.VaultPosition) (*keeper.Keeper, *mocks.Suite, sdk.Context, types.MsgServer, utils.Account) {
	t.Helper()

	k, s, ctx := mocks.RedBankKeeper(t)
	srv := keeper.NewMsgServer(k)

	whale := utils.TestAccount()
	liquidatee := utils.TestAccount()

	s.Oracle.Prices["uosmo"] = math.LegacyOneDec()
	s.Oracle.Prices["uatom"] = math.LegacyOneDec()
	s.Params.Assets["uosmo"] = assetParams("uosmo", "0.5", "0.55", true)
	s.Params.Assets["uatom"] = assetParams("uatom", "0.7", "0.75", true)
	s.Vaults.Infos["vault1"] = types.VaultInfo{BaseToken: "uosmo", VaultToken: "uvault1"}
	s.Vaults.Rates["vault1"] = math.LegacyOneDec()
	s.Params.Vaults["vault1"] = types.VaultConfig{
		Addr:                 "vault1",
		MaxLoanToValue:       math.LegacyMustNewDecFromStr("0.5"),
		LiquidationThreshold: math.LegacyMustNewDecFromStr("0.55"),
		Whitelisted:          true,
	}

	createMarket(t, srv, ctx, "uatom")

	s.Bank.Mint(whale.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))
	_, err := srv.Deposit(ctx, &types.MsgDeposit{Signer: whale.Address, Coin: sdk.NewCoin("uatom", math.NewInt(1000))})
	require.NoError(t, err)

	require.NoError(t, k.SetVaultPosition(ctx, liquidatee.Address, "vault1", position))
	_, err = srv.Borrow(ctx, &types.MsgBorrow{Signer: liquidatee.Address, Coin: sdk.NewCoin("uatom", math.NewInt(500))})
	require.NoError(t, err)

	s.Oracle.Prices["uatom"] = math.LegacyMustNewDecFromStr("1.2")

	return k, s, ctx, srv, liquidatee
}

func TestLiquidateVaultPosition(t *testing.T) {
	// ARRANGE: all 1048 base tokens sit in unlocked shares.
	k, s, ctx, srv, liquidatee := vaultLiquidationFixture(t, types.NewUnlockedVaultPosition(math.NewInt(1048)))
	liquidator := utils.TestAccount()
	s.Bank.Mint(liquidator.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(45))))

	// ACT
	resp, err := srv.Liquidate(ctx, &types.MsgLiquidate{
		Liquidator:      liquidator.Address,
		Liquidatee:      liquidatee.Address,
		DebtCoin:        sdk.NewCoin("uatom", math.NewInt(45)),
		CollateralDenom: "vault1",
	})
	require.NoError(t, err)

	// ASSERT: same resolution as the plain-collateral case, paid out in the
	// vault's base token.
	assert.Equal(t, sdk.NewCoin("uatom", math.NewInt(45)), resp.DebtRepaid)
	assert.Equal(t, sdk.NewCoin("uosmo", math.NewInt(56)), resp.CollateralSeized)
	assert.Equal(t, sdk.NewCoin("uosmo", math.NewInt(1)), resp.ProtocolFee)

	assert.Equal(t, math.NewInt(55), s.Bank.GetBalance(ctx, liquidator.Bytes, "uosmo").Amount)
	assert.Equal(t, math.NewInt(1), s.Bank.GetBalance(ctx, mocks.RewardsCollector, "uosmo").Amount)
	assert.True(t, s.Bank.GetBalance(ctx, types.ModuleAddress, "uosmo").Amount.IsZero())

	// ASSERT: 56 shares burned at the one-to-one rate, all to the module.
	position, found, err := k.GetVaultPosition(ctx, liquidatee.Address, "vault1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, math.NewInt(992), position.UnlockedShares)

	require.Len(t, s.Vaults.Withdrawals, 1)
	assert.Equal(t, math.NewInt(56), s.Vaults.Withdrawals[0].Shares)
	assert.Equal(t, sdk.AccAddress(types.ModuleAddress), s.Vaults.Withdrawals[0].Recipient)

	// ASSERT: the force-withdraw event names the module account as recipient.
	var forceWithdraw *mocks.EmittedEvent
	for i, emitted := range s.Events.Events {
		if emitted.Type == types.EventTypeVaultForceWithdraw {
			forceWithdraw = &s.Events.Events[i]
		}
	}
	require.NotNil(t, forceWithdraw)
	attrs := make(map[string]string)
	for _, attr := range forceWithdraw.Attributes {
		attrs[attr.Key] = attr.Value
	}
	assert.Equal(t, types.ModuleAddress.String(), attrs[types.AttributeKeyRecipient])
	assert.Equal(t, "56", attrs[types.AttributeKeyAmount])
}

func TestLiquidateVaultDrainsUnlockingBucketsInOrder(t *testing.T) {
	// ARRANGE: no unlocked shares; 130 base tokens across two unlocking
	// buckets ahead of 918 locked shares.
	position := types.NewLockingVaultPosition(math.NewInt(918), []types.UnlockingPosition{
		{Id: 1, BaseCoin: sdk.NewCoin("uosmo", math.NewInt(30)), ReleaseAt: 1},
		{Id: 2, BaseCoin: sdk.NewCoin("uosmo", math.NewInt(100)), ReleaseAt: 2},
	})
	k, s, ctx, srv, liquidatee := vaultLiquidationFixture(t, position)
	liquidator := utils.TestAccount()
	s.Bank.Mint(liquidator.Bytes, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(45))))

	// ACT
	resp, err := srv.Liquidate(ctx, &types.MsgLiquidate{
		Liquidator:      liquidator.Address,
		Liquidatee:      liquidatee.Address,
		DebtCoin:        sdk.NewCoin("uatom", math.NewInt(45)),
		CollateralDenom: "vault1",
	})
	require.NoError(t, err)
	assert.Equal(t, sdk.NewCoin("uosmo", math.NewInt(56)), resp.CollateralSeized)

	// ASSERT: the oldest bucket is emptied and removed, the second is only
	// dented, the locked shares are untouched.
	stored, found, err := k.GetVaultPosition(ctx, liquidatee.Address, "vault1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, math.NewInt(918), stored.LockedShares)
	require.Len(t, stored.Unlocking, 1)
	assert.Equal(t, uint64(2), stored.Unlocking[0].Id)
	assert.Equal(t, math.NewInt(74), stored.Unlocking[0].BaseCoin.Amount)

	require.Len(t, s.Vaults.Withdrawals, 2)
	assert.Equal(t, uint64(1), s.Vaults.Withdrawals[0].UnlockingId)
	assert.Equal(t, math.NewInt(30), s.Vaults.Withdrawals[0].Base)
	assert.Equal(t, uint64(2), s.Vaults.Withdrawals[1].UnlockingId)
	assert.Equal(t, math.NewInt(26), s.Vaults.Withdrawals[1].Base)
}

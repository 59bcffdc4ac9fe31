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

	"cosmossdk.io/core/event"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"redbank.calypso.zone/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// resolveAccount authorizes the signer over the named account. An empty
// account defaults to the signer itself; any other account must be owned by
// the signer according to the account registry.
func (k msgServer) resolveAccount(ctx context.Context, signer, account string) (string, error) {
	if account == "" || account == signer {
		return signer, nil
	}

	owner, err := k.registry.OwnerOf(ctx, account)
	if err != nil {
		return "", err
	}
	if owner != signer {
		return "", sdkerrors.Wrapf(types.ErrNotTokenOwner, "account %s is not owned by %s", account, signer)
	}

	return account, nil
}

func (k msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}
	if msg.Coin.Amount.IsNil() || !msg.Coin.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrNoAmount, "deposit amount must be positive")
	}

	account, err := k.resolveAccount(ctx, msg.Signer, msg.Account)
	if err != nil {
		return nil, err
	}

	market, err := k.mustGetActiveMarket(ctx, msg.Coin.Denom)
	if err != nil {
		return nil, err
	}
	if !market.DepositEnabled {
		return nil, sdkerrors.Wrapf(types.ErrDepositNotEnabled, "denom %s", msg.Coin.Denom)
	}
	if err := k.RefreshMarket(ctx, &market); err != nil {
		return nil, err
	}

	if !market.DepositCap.IsNil() {
		liquidity, err := market.UnscaleLiquidity(market.CollateralTotalScaled)
		if err != nil {
			return nil, err
		}
		if liquidity.Add(msg.Coin.Amount).GT(market.DepositCap) {
			return nil, sdkerrors.Wrapf(types.ErrDepositCapExceeded, "cap %s, liquidity %s, deposit %s", market.DepositCap, liquidity, msg.Coin.Amount)
		}
	}

	signer, err := k.address.StringToBytes(msg.Signer)
	if err != nil {
		return nil, err
	}
	if err := k.bank.SendCoins(ctx, signer, k.moduleAddress, sdk.NewCoins(msg.Coin)); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to transfer deposit")
	}

	scaled, err := market.ScaleLiquidity(msg.Coin.Amount)
	if err != nil {
		return nil, err
	}
	if market.CollateralTotalScaled, err = market.CollateralTotalScaled.SafeAdd(scaled); err != nil {
		return nil, err
	}
	if err := k.IncreaseCollateralScaled(ctx, account, msg.Coin.Denom, scaled); err != nil {
		return nil, err
	}
	if err := k.UpdateMarketInterestRates(ctx, &market); err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeDeposit,
		event.NewAttribute(types.AttributeKeyAccount, account),
		event.NewAttribute(types.AttributeKeyAmount, msg.Coin.String()),
		event.NewAttribute(types.AttributeKeyAmountScaled, scaled.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgDepositResponse{CollateralScaled: scaled}, nil
}

func (k msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	account, err := k.resolveAccount(ctx, msg.Signer, msg.Account)
	if err != nil {
		return nil, err
	}

	market, err := k.mustGetActiveMarket(ctx, msg.Denom)
	if err != nil {
		return nil, err
	}
	if err := k.RefreshMarket(ctx, &market); err != nil {
		return nil, err
	}

	position, found, err := k.GetPosition(ctx, account, msg.Denom)
	if err != nil {
		return nil, err
	}
	if !found || !position.CollateralScaled.IsPositive() {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientBalance, "no %s collateral for account %s", msg.Denom, account)
	}

	balance, err := market.UnscaleLiquidity(position.CollateralScaled)
	if err != nil {
		return nil, err
	}

	// A nil or zero amount withdraws everything, consuming the scaled
	// balance exactly so the row can be deleted.
	var amount math.Int
	var scaled math.Int
	if msg.Amount.IsNil() || msg.Amount.IsZero() || msg.Amount.GTE(balance) {
		amount = balance
		scaled = position.CollateralScaled
	} else {
		amount = msg.Amount
		if scaled, err = market.ScaleLiquidity(amount); err != nil {
			return nil, err
		}
	}

	if err := k.DecreaseCollateralScaled(ctx, account, msg.Denom, scaled); err != nil {
		return nil, err
	}
	if market.CollateralTotalScaled, err = market.CollateralTotalScaled.SafeSub(scaled); err != nil {
		return nil, err
	}
	if err := k.UpdateMarketInterestRates(ctx, &market); err != nil {
		return nil, err
	}

	// The whole operation is one transaction, so failing here unwinds the
	// decrements above.
	health, err := k.AccountHealth(ctx, account, types.ACCOUNT_KIND_DEFAULT)
	if err != nil {
		return nil, err
	}
	if health.IsAboveMaxLtv() {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "withdrawal would leave account %s above max loan to value", account)
	}

	signer, err := k.address.StringToBytes(msg.Signer)
	if err != nil {
		return nil, err
	}
	withdrawn := sdk.NewCoin(msg.Denom, amount)
	if err := k.bank.SendCoins(ctx, k.moduleAddress, signer, sdk.NewCoins(withdrawn)); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to transfer withdrawal")
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeWithdraw,
		event.NewAttribute(types.AttributeKeyAccount, account),
		event.NewAttribute(types.AttributeKeyAmount, withdrawn.String()),
		event.NewAttribute(types.AttributeKeyAmountScaled, scaled.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgWithdrawResponse{Withdrawn: withdrawn}, nil
}

func (k msgServer) Borrow(ctx context.Context, msg *types.MsgBorrow) (*types.MsgBorrowResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}
	if msg.Coin.Amount.IsNil() || !msg.Coin.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrNoAmount, "borrow amount must be positive")
	}

	account, err := k.resolveAccount(ctx, msg.Signer, msg.Account)
	if err != nil {
		return nil, err
	}

	market, err := k.mustGetActiveMarket(ctx, msg.Coin.Denom)
	if err != nil {
		return nil, err
	}
	if !market.BorrowEnabled {
		return nil, sdkerrors.Wrapf(types.ErrBorrowNotEnabled, "denom %s", msg.Coin.Denom)
	}
	if err := k.RefreshMarket(ctx, &market); err != nil {
		return nil, err
	}

	assetParams, err := k.params.AssetParams(ctx, msg.Coin.Denom)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrMissingParams, "denom %s", msg.Coin.Denom)
	}
	if !assetParams.Whitelisted {
		return nil, sdkerrors.Wrapf(types.ErrNotWhitelisted, "denom %s", msg.Coin.Denom)
	}

	liquidity, err := market.UnscaleLiquidity(market.CollateralTotalScaled)
	if err != nil {
		return nil, err
	}
	debt, err := market.UnscaleDebt(market.DebtTotalScaled)
	if err != nil {
		return nil, err
	}
	if msg.Coin.Amount.GT(liquidity.Sub(debt)) {
		return nil, sdkerrors.Wrapf(types.ErrInsufficientBalance, "market %s has %s available", msg.Coin.Denom, liquidity.Sub(debt))
	}

	limit, err := k.GetUncollateralizedLoanLimit(ctx, account, msg.Coin.Denom)
	if err != nil {
		return nil, err
	}
	uncollateralized := limit.IsPositive()

	position, _, err := k.GetPosition(ctx, account, msg.Coin.Denom)
	if err != nil {
		return nil, err
	}
	if uncollateralized {
		owed, err := market.UnscaleDebt(position.DebtScaled)
		if err != nil {
			return nil, err
		}
		if owed.Add(msg.Coin.Amount).GT(limit) {
			return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "borrow exceeds uncollateralized loan limit %s", limit)
		}
	}

	scaled, err := market.ScaleDebt(msg.Coin.Amount)
	if err != nil {
		return nil, err
	}
	if err := k.IncreaseDebtScaled(ctx, account, msg.Coin.Denom, scaled, uncollateralized); err != nil {
		return nil, err
	}
	if market.DebtTotalScaled, err = market.DebtTotalScaled.SafeAdd(scaled); err != nil {
		return nil, err
	}
	if err := k.UpdateMarketInterestRates(ctx, &market); err != nil {
		return nil, err
	}

	if !uncollateralized {
		health, err := k.AccountHealth(ctx, account, types.ACCOUNT_KIND_DEFAULT)
		if err != nil {
			return nil, err
		}
		if health.IsAboveMaxLtv() {
			return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "borrow would leave account %s above max loan to value", account)
		}
	}

	signer, err := k.address.StringToBytes(msg.Signer)
	if err != nil {
		return nil, err
	}
	if err := k.bank.SendCoins(ctx, k.moduleAddress, signer, sdk.NewCoins(msg.Coin)); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to transfer borrowed funds")
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeBorrow,
		event.NewAttribute(types.AttributeKeyAccount, account),
		event.NewAttribute(types.AttributeKeyAmount, msg.Coin.String()),
		event.NewAttribute(types.AttributeKeyAmountScaled, scaled.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgBorrowResponse{DebtScaled: scaled}, nil
}

func (k msgServer) Repay(ctx context.Context, msg *types.MsgRepay) (*types.MsgRepayResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}
	if msg.Coin.Amount.IsNil() || !msg.Coin.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrNoAmount, "repay amount must be positive")
	}

	// Repaying on behalf of another account needs no ownership proof.
	account := msg.Account
	if account == "" {
		account = msg.Signer
	}

	market, err := k.mustGetActiveMarket(ctx, msg.Coin.Denom)
	if err != nil {
		return nil, err
	}
	if err := k.RefreshMarket(ctx, &market); err != nil {
		return nil, err
	}

	position, found, err := k.GetPosition(ctx, account, msg.Coin.Denom)
	if err != nil {
		return nil, err
	}
	if !found || !position.DebtScaled.IsPositive() {
		return nil, sdkerrors.Wrapf(types.ErrNoDebt, "account %s owes no %s", account, msg.Coin.Denom)
	}

	owed, err := market.UnscaleDebt(position.DebtScaled)
	if err != nil {
		return nil, err
	}
	repaid := math.MinInt(owed, msg.Coin.Amount)

	signer, err := k.address.StringToBytes(msg.Signer)
	if err != nil {
		return nil, err
	}
	if err := k.bank.SendCoins(ctx, signer, k.moduleAddress, sdk.NewCoins(msg.Coin)); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to collect repayment")
	}

	scaled, err := market.ScaleDebt(repaid)
	if err != nil {
		return nil, err
	}
	scaled = math.MinInt(scaled, position.DebtScaled)

	if err := k.DecreaseDebtScaled(ctx, account, msg.Coin.Denom, scaled); err != nil {
		return nil, err
	}
	if market.DebtTotalScaled, err = market.DebtTotalScaled.SafeSub(scaled); err != nil {
		return nil, err
	}
	if err := k.UpdateMarketInterestRates(ctx, &market); err != nil {
		return nil, err
	}

	refunded := sdk.NewCoin(msg.Coin.Denom, msg.Coin.Amount.Sub(repaid))
	if refunded.Amount.IsPositive() {
		if err := k.bank.SendCoins(ctx, k.moduleAddress, signer, sdk.NewCoins(refunded)); err != nil {
			return nil, sdkerrors.Wrap(err, "unable to refund excess repayment")
		}
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeRepay,
		event.NewAttribute(types.AttributeKeyAccount, account),
		event.NewAttribute(types.AttributeKeyAmount, sdk.NewCoin(msg.Coin.Denom, repaid).String()),
		event.NewAttribute(types.AttributeKeyDebtRefunded, refunded.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgRepayResponse{
		Repaid:   sdk.NewCoin(msg.Coin.Denom, repaid),
		Refunded: refunded,
	}, nil
}

func (k msgServer) Lend(ctx context.Context, msg *types.MsgLend) (*types.MsgLendResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}
	if msg.Coin.Amount.IsNil() || !msg.Coin.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(types.ErrNoAmount, "lend amount must be positive")
	}

	account, err := k.resolveAccount(ctx, msg.Signer, msg.Account)
	if err != nil {
		return nil, err
	}

	market, err := k.mustGetActiveMarket(ctx, msg.Coin.Denom)
	if err != nil {
		return nil, err
	}
	if err := k.RefreshMarket(ctx, &market); err != nil {
		return nil, err
	}

	// Lending moves shares from the deposit bucket to the lent bucket; the
	// market's liquidity total is unchanged.
	scaled, err := market.ScaleLiquidity(msg.Coin.Amount)
	if err != nil {
		return nil, err
	}
	if err := k.DecreaseCollateralScaled(ctx, account, msg.Coin.Denom, scaled); err != nil {
		return nil, err
	}
	if err := k.IncreaseLendScaled(ctx, account, msg.Coin.Denom, scaled); err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeLend,
		event.NewAttribute(types.AttributeKeyAccount, account),
		event.NewAttribute(types.AttributeKeyAmount, msg.Coin.String()),
		event.NewAttribute(types.AttributeKeyAmountScaled, scaled.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgLendResponse{LendScaled: scaled}, nil
}

func (k msgServer) Reclaim(ctx context.Context, msg *types.MsgReclaim) (*types.MsgReclaimResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	account, err := k.resolveAccount(ctx, msg.Signer, msg.Account)
	if err != nil {
		return nil, err
	}

	market, err := k.mustGetActiveMarket(ctx, msg.Denom)
	if err != nil {
		return nil, err
	}
	if err := k.RefreshMarket(ctx, &market); err != nil {
		return nil, err
	}

	position, found, err := k.GetPosition(ctx, account, msg.Denom)
	if err != nil {
		return nil, err
	}
	if !found || !position.LendScaled.IsPositive() {
		return nil, sdkerrors.Wrapf(types.ErrNoneLent, "account %s lent no %s", account, msg.Denom)
	}

	lent, err := market.UnscaleLiquidity(position.LendScaled)
	if err != nil {
		return nil, err
	}

	var amount, scaled math.Int
	if msg.Amount.IsNil() || msg.Amount.IsZero() || msg.Amount.GTE(lent) {
		amount = lent
		scaled = position.LendScaled
	} else {
		amount = msg.Amount
		if scaled, err = market.ScaleLiquidity(amount); err != nil {
			return nil, err
		}
	}

	if err := k.DecreaseLendScaled(ctx, account, msg.Denom, scaled); err != nil {
		return nil, err
	}
	if err := k.IncreaseCollateralScaled(ctx, account, msg.Denom, scaled); err != nil {
		return nil, err
	}

	reclaimed := sdk.NewCoin(msg.Denom, amount)
	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeReclaim,
		event.NewAttribute(types.AttributeKeyAccount, account),
		event.NewAttribute(types.AttributeKeyAmount, reclaimed.String()),
		event.NewAttribute(types.AttributeKeyAmountScaled, scaled.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgReclaimResponse{Reclaimed: reclaimed}, nil
}

func (k msgServer) Liquidate(ctx context.Context, msg *types.MsgLiquidate) (*types.MsgLiquidateResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	return k.Keeper.Liquidate(ctx, msg)
}

func (k msgServer) UpdateCollateralStatus(ctx context.Context, msg *types.MsgUpdateCollateralStatus) (*types.MsgUpdateCollateralStatusResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	account, err := k.resolveAccount(ctx, msg.Signer, msg.Account)
	if err != nil {
		return nil, err
	}

	if err := k.SetCollateralEnabled(ctx, account, msg.Denom, msg.Enabled); err != nil {
		return nil, err
	}

	if !msg.Enabled {
		health, err := k.AccountHealth(ctx, account, types.ACCOUNT_KIND_DEFAULT)
		if err != nil {
			return nil, err
		}
		if health.IsAboveMaxLtv() {
			return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "disabling %s as collateral would leave account %s above max loan to value", msg.Denom, account)
		}
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeCollateralToggle,
		event.NewAttribute(types.AttributeKeyAccount, account),
		event.NewAttribute(types.AttributeKeyDenom, msg.Denom),
		event.NewAttribute(types.AttributeKeyEnabled, boolString(msg.Enabled)),
	); err != nil {
		return nil, err
	}

	return &types.MsgUpdateCollateralStatusResponse{}, nil
}

func (k msgServer) SetUncollateralizedLoanLimit(ctx context.Context, msg *types.MsgSetUncollateralizedLoanLimit) (*types.MsgSetUncollateralizedLoanLimitResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}
	if msg.Authority != k.authority {
		return nil, sdkerrors.Wrapf(types.ErrNotAuthorized, "expected %s, got %s", k.authority, msg.Authority)
	}

	limit := msg.Limit
	if limit.IsNil() {
		limit = math.ZeroInt()
	}
	if err := k.Keeper.SetUncollateralizedLoanLimit(ctx, msg.Account, msg.Denom, limit); err != nil {
		return nil, err
	}

	// Existing debt changes classification with the limit, so it has to pass
	// the health check when it becomes collateralized again.
	position, found, err := k.GetPosition(ctx, msg.Account, msg.Denom)
	if err != nil {
		return nil, err
	}
	if found && position.DebtScaled.IsPositive() {
		position.DebtUncollateralized = limit.IsPositive()
		if err := k.SetPosition(ctx, msg.Account, msg.Denom, position); err != nil {
			return nil, err
		}

		if !limit.IsPositive() {
			health, err := k.AccountHealth(ctx, msg.Account, types.ACCOUNT_KIND_DEFAULT)
			if err != nil {
				return nil, err
			}
			if health.IsAboveMaxLtv() {
				return nil, sdkerrors.Wrapf(types.ErrInvalidHealthFactorAfterSettingUncollateralizedLoanLimit, "account %s", msg.Account)
			}
		}
	}

	return &types.MsgSetUncollateralizedLoanLimitResponse{}, nil
}

func (k msgServer) CreateMarket(ctx context.Context, msg *types.MsgCreateMarket) (*types.MsgCreateMarketResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}
	if msg.Authority != k.authority {
		return nil, sdkerrors.Wrapf(types.ErrNotAuthorized, "expected %s, got %s", k.authority, msg.Authority)
	}

	_, found, err := k.GetMarket(ctx, msg.Denom)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "market %s already exists", msg.Denom)
	}

	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	market := types.NewMarket(msg.Denom, msg.InterestRateModel, msg.ReserveFactor, msg.DepositCap, now)
	if err := market.Validate(); err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, err.Error())
	}
	if err := k.SetMarket(ctx, market); err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeMarketUpdated,
		event.NewAttribute(types.AttributeKeyDenom, msg.Denom),
		event.NewAttribute(types.AttributeKeyBorrowRate, market.BorrowRate.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgCreateMarketResponse{}, nil
}

func (k msgServer) UpdateMarket(ctx context.Context, msg *types.MsgUpdateMarket) (*types.MsgUpdateMarketResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}
	if msg.Authority != k.authority {
		return nil, sdkerrors.Wrapf(types.ErrNotAuthorized, "expected %s, got %s", k.authority, msg.Authority)
	}

	market, found, err := k.GetMarket(ctx, msg.Denom)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrMarketNotFound, "denom %s", msg.Denom)
	}

	// Settle accrual under the outgoing parameters before they change.
	if err := k.RefreshMarket(ctx, &market); err != nil {
		return nil, err
	}

	market.InterestRateModel = msg.InterestRateModel
	market.ReserveFactor = msg.ReserveFactor
	market.DepositCap = msg.DepositCap
	market.Active = msg.Active
	market.DepositEnabled = msg.DepositEnabled
	market.BorrowEnabled = msg.BorrowEnabled
	if err := market.Validate(); err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, err.Error())
	}

	if err := k.UpdateMarketInterestRates(ctx, &market); err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(ctx, types.EventTypeMarketUpdated,
		event.NewAttribute(types.AttributeKeyDenom, msg.Denom),
		event.NewAttribute(types.AttributeKeyBorrowRate, market.BorrowRate.String()),
	); err != nil {
		return nil, err
	}

	return &types.MsgUpdateMarketResponse{}, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

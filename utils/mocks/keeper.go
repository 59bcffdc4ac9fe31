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
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	codecaddress "github.com/cosmos/cosmos-sdk/codec/address"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"redbank.calypso.zone/keeper"
	"redbank.calypso.zone/types"
)

// Authority is the admin address wired into test keepers.
var Authority = authtypes.NewModuleAddress("gov").String()

// RewardsCollector receives protocol fees and reserve accruals in tests.
var RewardsCollector = authtypes.NewModuleAddress("rewards_collector")

// Suite bundles the mock collaborators behind a test keeper so assertions can
// reach into them.
type Suite struct {
	Bank     BankKeeper
	Oracle   OracleKeeper
	Params   *ParamsKeeper
	Vaults   *VaultKeeper
	Registry AccountRegistry
	Events   *EventService
}

// RedBankKeeper builds a keeper over fresh in-memory state with empty mock
// collaborators and a block time of 2024-01-01.
func RedBankKeeper(t testing.TB) (*keeper.Keeper, *Suite, sdk.Context) {
	t.Helper()

	bank := BankKeeper{Balances: make(map[string]sdk.Coins)}
	oracle := OracleKeeper{Prices: make(map[string]math.LegacyDec)}
	params := &ParamsKeeper{
		Assets: make(map[string]types.AssetParams),
		Vaults: make(map[string]types.VaultConfig),
		THF:    math.LegacyMustNewDecFromStr("1.2"),
	}
	vaults := &VaultKeeper{
		Infos: make(map[string]types.VaultInfo),
		Rates: make(map[string]math.LegacyDec),
		Bank:  bank,
	}
	registry := AccountRegistry{
		Owners:  make(map[string]string),
		Managed: make(map[string]bool),
	}

	return RedBankKeeperWithKeepers(t, bank, oracle, params, vaults, registry)
}

// RedBankKeeperWithKeepers builds a keeper over the provided collaborators.
func RedBankKeeperWithKeepers(
	t testing.TB,
	bank BankKeeper,
	oracle OracleKeeper,
	params *ParamsKeeper,
	vaults *VaultKeeper,
	registry AccountRegistry,
) (*keeper.Keeper, *Suite, sdk.Context) {
	t.Helper()

	events := &EventService{}
	k := keeper.NewKeeper(
		Authority,
		RewardsCollector,
		NewStoreService(),
		log.NewNopLogger(),
		HeaderService{},
		events,
		codecaddress.NewBech32Codec("cosmos"),
		AccountKeeper{},
		bank,
		oracle,
		params,
		vaults,
		registry,
	)

	ctx := sdk.NewContext(nil, cmtproto.Header{}, false, log.NewNopLogger()).
		WithHeaderInfo(header.Info{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})

	suite := &Suite{
		Bank:     bank,
		Oracle:   oracle,
		Params:   params,
		Vaults:   vaults,
		Registry: registry,
		Events:   events,
	}

	return k, suite, ctx
}

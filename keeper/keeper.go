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
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"redbank.calypso.zone/types"
)

type Keeper struct {
	authority        string
	rewardsCollector sdk.AccAddress
	moduleAddress    sdk.AccAddress

	store store.KVStoreService

	logger  log.Logger
	header  header.Service
	event   event.Service
	address address.Codec

	bank     types.BankKeeper
	oracle   types.OracleKeeper
	params   types.ParamsKeeper
	vaults   types.VaultKeeper
	registry types.AccountRegistry

	Markets                collections.Map[string, types.Market]
	Positions              collections.Map[collections.Pair[string, string], types.Position]
	VaultPositions         collections.Map[collections.Pair[string, string], types.VaultPosition]
	UncollateralizedLimits collections.Map[collections.Pair[string, string], math.Int]
	VaultUnlockingNextID   collections.Map[string, uint64]
}

func NewKeeper(
	authority string,
	rewardsCollector sdk.AccAddress,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	account types.AccountKeeper,
	bank types.BankKeeper,
	oracle types.OracleKeeper,
	params types.ParamsKeeper,
	vaults types.VaultKeeper,
	registry types.AccountRegistry,
) *Keeper {
	moduleAddress := account.GetModuleAddress(types.ModuleName)
	if moduleAddress == nil {
		panic("the redbank module account has not been set")
	}

	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		authority:        authority,
		rewardsCollector: rewardsCollector,
		moduleAddress:    moduleAddress,

		store: store,

		logger:  logger.With("module", types.ModuleName),
		header:  header,
		event:   event,
		address: address,

		bank:     bank,
		oracle:   oracle,
		params:   params,
		vaults:   vaults,
		registry: registry,

		Markets:                collections.NewMap(builder, types.MarketPrefix, "markets", collections.StringKey, types.JSONValue[types.Market]("market")),
		Positions:              collections.NewMap(builder, types.PositionPrefix, "positions", collections.PairKeyCodec(collections.StringKey, collections.StringKey), types.JSONValue[types.Position]("position")),
		VaultPositions:         collections.NewMap(builder, types.VaultPositionPrefix, "vault_positions", collections.PairKeyCodec(collections.StringKey, collections.StringKey), types.JSONValue[types.VaultPosition]("vault_position")),
		UncollateralizedLimits: collections.NewMap(builder, types.UncollateralizedLimitPrefix, "uncollateralized_limits", collections.PairKeyCodec(collections.StringKey, collections.StringKey), sdk.IntValue),
		VaultUnlockingNextID:   collections.NewMap(builder, types.VaultUnlockingNextIDPrefix, "vault_unlocking_next_id", collections.StringKey, collections.Uint64Value),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bankKeeper types.BankKeeper) {
	k.bank = bankKeeper
}

// GetAuthority returns the configured admin authority.
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetRewardsCollector returns the address that receives protocol fees and
// reserve accruals.
func (k *Keeper) GetRewardsCollector() sdk.AccAddress {
	return k.rewardsCollector
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import "context"

//go:generate mockgen -source=store.go -destination=../mock/store_mock.go -package=mock

// Store is the backing key-value store consulted by the Resolver. identity is
// empty for the Global tier. GetRaw reports absence with ok == false; raw is
// either a string or a native scalar decoded from a structured file.
//
// Implementations own their concurrency discipline and do not validate
// scopes; the Resolver enforces them.
type Store interface {
	GetRaw(ctx context.Context, scope KeyType, identity, name string) (raw any, ok bool, err error)
	SetRaw(ctx context.Context, scope KeyType, identity, name, value string) error
}

// Deleter is implemented by stores that can remove a value.
type Deleter interface {
	DeleteRaw(ctx context.Context, scope KeyType, identity, name string) error
}

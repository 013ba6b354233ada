// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/raywall/tenant-auth-service/dyndb"
)

var (
	ErrNotFound      = errors.New("users: not found")
	ErrAlreadyExists = errors.New("users: already exists")
)

// Repository manages credential records over the tenant-scoped table.
type Repository struct {
	store dyndb.Store[User]
}

// NewRepository builds a repository over the given client and table.
// The table is keyed (tenant_id, email); every lookup carries both halves,
// which is what enforces tenant isolation on each access.
func NewRepository(client dyndb.Client, tableName string) *Repository {
	return &Repository{
		store: dyndb.New[User](client, dyndb.TableConfig{
			TableName: tableName,
			HashKey:   "tenant_id",
			SortKey:   "email",
		}),
	}
}

// NewRepositoryWithStore injects a prebuilt store (tests).
func NewRepositoryWithStore(store dyndb.Store[User]) *Repository {
	return &Repository{store: store}
}

// Create persists a new record. Uniqueness of (tenant_id, email) is enforced
// by a conditional write; an existing record returns ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, user *User) error {
	err := r.store.PutIfAbsent(ctx, *user)
	if errors.Is(err, dyndb.ErrConditionFailed) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("users: create failed: %w", err)
	}
	return nil
}

// GetByKey fetches the record for a (tenant_id, email) pair.
func (r *Repository) GetByKey(ctx context.Context, tenantID, email string) (*User, error) {
	user, err := r.store.Get(ctx, tenantID, email)
	if errors.Is(err, dyndb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("users: get failed: %w", err)
	}
	return user, nil
}

package repository

import (
	"context"
	"log/slog"

	"studiobook/internal/domain/directory"
	"studiobook/internal/infra"
	"studiobook/internal/infra/jsonstore"
)

// DirectoryRepository serves the reference collections (users, studios,
// follows). Reads never fail the caller with corrupt data: an unreadable
// reference collection degrades to an empty list, which the integrity guard
// treats conservatively.
type DirectoryRepository struct {
	store  *jsonstore.Store
	logger *slog.Logger
}

func NewDirectoryRepository(store *jsonstore.Store, logger *slog.Logger) *DirectoryRepository {
	return &DirectoryRepository{store: store, logger: logger}
}

func (r *DirectoryRepository) ListUsers(_ context.Context) ([]directory.User, error) {
	return jsonstore.Load[directory.User](r.store, jsonstore.CollectionUsers)
}

func (r *DirectoryRepository) ListStudios(_ context.Context) ([]directory.Studio, error) {
	return jsonstore.Load[directory.Studio](r.store, jsonstore.CollectionStudios)
}

func (r *DirectoryRepository) ListFollows(_ context.Context) ([]directory.Follow, error) {
	return jsonstore.Load[directory.Follow](r.store, jsonstore.CollectionFollows)
}

func (r *DirectoryRepository) FindUserByID(ctx context.Context, id string) (*directory.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, infra.WrapStoreErr(r.logger, infra.KindNotFound, "user "+id, nil)
}

func (r *DirectoryRepository) FindStudioByID(ctx context.Context, id string) (*directory.Studio, error) {
	studios, err := r.ListStudios(ctx)
	if err != nil {
		return nil, err
	}
	for i := range studios {
		if studios[i].ID == id {
			return &studios[i], nil
		}
	}
	return nil, infra.WrapStoreErr(r.logger, infra.KindNotFound, "studio "+id, nil)
}

// UpdateUsers runs a read-modify-write of the user collection under its
// lock. Slug maintenance goes through here so concurrent writers cannot be
// overwritten by a stale snapshot.
func (r *DirectoryRepository) UpdateUsers(_ context.Context, fn func(users []directory.User) ([]directory.User, error)) error {
	return jsonstore.Update(r.store, jsonstore.CollectionUsers, fn)
}

// UpdateStudios is UpdateUsers for the studio collection.
func (r *DirectoryRepository) UpdateStudios(_ context.Context, fn func(studios []directory.Studio) ([]directory.Studio, error)) error {
	return jsonstore.Update(r.store, jsonstore.CollectionStudios, fn)
}

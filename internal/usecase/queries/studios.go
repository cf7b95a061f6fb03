package queries

import (
	"context"
	"sort"

	"studiobook/internal/domain/directory"
)

type StudioQueries interface {
	// ListStudios returns the studio collection with duplicate slugs
	// collapsed (latest record wins) and follower counts joined.
	ListStudios(ctx context.Context) ([]StudioView, error)
	// TopFollowed returns up to limit studios ordered by follower count.
	TopFollowed(ctx context.Context, limit int) ([]StudioView, error)
}

type studioQueriesImpl struct {
	directory DirectoryReader
}

func NewStudioQueries(dir DirectoryReader) StudioQueries {
	return &studioQueriesImpl{directory: dir}
}

func (q *studioQueriesImpl) ListStudios(ctx context.Context) ([]StudioView, error) {
	studios, err := q.directory.ListStudios(ctx)
	if err != nil {
		return nil, err
	}
	studios = directory.Deduplicate(studios)

	counts := q.followerCounts(ctx)
	views := make([]StudioView, 0, len(studios))
	for _, s := range studios {
		views = append(views, StudioView{Studio: s, Followers: counts[s.ID]})
	}
	return views, nil
}

func (q *studioQueriesImpl) TopFollowed(ctx context.Context, limit int) ([]StudioView, error) {
	views, err := q.ListStudios(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Followers > views[j].Followers
	})
	if limit > 0 && len(views) > limit {
		views = views[:limit]
	}
	return views, nil
}

func (q *studioQueriesImpl) followerCounts(ctx context.Context) map[string]int {
	follows, err := q.directory.ListFollows(ctx)
	if err != nil {
		return map[string]int{}
	}
	counts := make(map[string]int, len(follows))
	for _, f := range follows {
		counts[f.FollowingID]++
	}
	return counts
}

// Package directory holds the reference entities that bookings point at:
// users (artists), studios and the follow graph. The booking core never
// mutates these beyond slug maintenance; they come from the reference-data
// collections.
package directory

import "time"

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email,omitempty"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug,omitempty"`
	Role         string     `json:"role,omitempty"`
	AvatarURL    string     `json:"avatarUrl,omitempty"`
	StudioID     string     `json:"studioId,omitempty"`
	CustomerRef  string     `json:"customerRef,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type Studio struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug,omitempty"`
	Location  string     `json:"location,omitempty"`
	OwnerID   string     `json:"ownerId,omitempty"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Follow feeds display enrichment only; it plays no part in the lifecycle.
type Follow struct {
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u User) SlugKey() string  { return u.Slug }
func (u User) EntityID() string { return u.ID }
func (u User) LastTouched() time.Time {
	if u.UpdatedAt != nil {
		return *u.UpdatedAt
	}
	return u.CreatedAt
}

func (s Studio) SlugKey() string  { return s.Slug }
func (s Studio) EntityID() string { return s.ID }
func (s Studio) LastTouched() time.Time {
	if s.UpdatedAt != nil {
		return *s.UpdatedAt
	}
	return s.CreatedAt
}

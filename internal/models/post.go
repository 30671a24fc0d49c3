// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is an article written by a user, optionally filed under a
// category. Only published posts appear in public listings; an unset
// PublishedAt on an unpublished post is normal.
type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	AuthorID    uuid.UUID  `json:"author_id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Virtual fields populated by PostStore joins.
	AuthorName   string `json:"author"`
	CategoryName string `json:"category,omitempty"`
}

// IsVisible reports whether the post belongs in public listings.
func (p *BlogPost) IsVisible() bool {
	return p.IsPublished
}

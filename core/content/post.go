// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"errors"
	"time"

	"codeberg.org/jackfan/blog/core/tag"
)

var errMissingTitle = errors.New("post has no title")

// Post holds the metadata of a single blog post.
//
// Post bodies are rendered elsewhere; only what listing pages need lives here.
type Post struct {
	Title   string    `yaml:"title"`
	Slug    string    `yaml:"slug"`
	Date    time.Time `yaml:"date"`
	Tags    []string  `yaml:"tags"`
	Summary string    `yaml:"summary"`
	Draft   bool      `yaml:"draft"`
}

// TagList returns the post's tags as [tag.Tag] values, in file order.
func (p Post) TagList() []tag.Tag {
	tags := make([]tag.Tag, 0, len(p.Tags))

	for _, text := range p.Tags {
		tags = append(tags, tag.New(text))
	}

	return tags
}

// HasTag reports whether any of the post's tags slugifies to slug.
func (p Post) HasTag(slug string) bool {
	for _, text := range p.Tags {
		if tag.Slug(text) == slug {
			return true
		}
	}

	return false
}

// normalize fills derived fields and checks required ones.
func (p *Post) normalize() error {
	if p.Title == "" {
		return errMissingTitle
	}

	if p.Slug == "" {
		p.Slug = tag.Slug(p.Title)
	}

	return nil
}

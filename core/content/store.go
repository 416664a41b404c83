// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"cmp"
	"slices"
	"sync/atomic"

	"codeberg.org/jackfan/blog/core/tag"
)

// TagCount is a tag together with the number of posts carrying it.
type TagCount struct {
	Tag   tag.Tag
	Count int
}

// Store is an immutable, query-ready view over a set of posts.
//
// It is safe for concurrent use once constructed.
type Store struct {
	posts []Post
	tags  []TagCount
	// byTag maps a tag slug to indices into posts.
	byTag map[string][]int
	// tagIndex maps a tag slug to its index in tags.
	tagIndex map[string]int
}

// NewStore builds a Store from posts.
//
// Drafts are dropped unless includeDrafts is set. Posts are ordered newest
// first, ties broken by title. Tags that slugify identically are merged and
// keep the text of their first occurrence in that order.
func NewStore(posts []Post, includeDrafts bool) *Store {
	kept := make([]Post, 0, len(posts))

	for _, p := range posts {
		if p.Draft && !includeDrafts {
			continue
		}

		kept = append(kept, p)
	}

	slices.SortStableFunc(kept, func(a, b Post) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}

		return cmp.Compare(a.Title, b.Title)
	})

	s := &Store{
		posts:    kept,
		byTag:    make(map[string][]int),
		tagIndex: make(map[string]int),
	}

	for i, p := range kept {
		seen := make(map[string]bool, len(p.Tags))

		for _, text := range p.Tags {
			slug := tag.Slug(text)
			if seen[slug] {
				continue
			}

			seen[slug] = true

			s.byTag[slug] = append(s.byTag[slug], i)

			if idx, ok := s.tagIndex[slug]; ok {
				s.tags[idx].Count++

				continue
			}

			s.tagIndex[slug] = len(s.tags)
			s.tags = append(s.tags, TagCount{Tag: tag.New(text), Count: 1})
		}
	}

	return s
}

// Len returns the number of posts in the store.
func (s *Store) Len() int {
	return len(s.posts)
}

// Posts returns all posts, newest first.
func (s *Store) Posts() []Post {
	return slices.Clone(s.posts)
}

// Recent returns at most n of the newest posts.
func (s *Store) Recent(n int) []Post {
	if n <= 0 {
		return nil
	}

	return slices.Clone(s.posts[:min(n, len(s.posts))])
}

// Tags returns every tag with its post count, most used first, then by slug.
func (s *Store) Tags() []TagCount {
	// Sort a copy so tagIndex stays valid.
	tags := slices.Clone(s.tags)

	slices.SortFunc(tags, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Tag.Slug(), b.Tag.Slug())
	})

	return tags
}

// PostsByTag returns the tag registered under slug and its posts, newest first.
//
// The boolean is false when no post carries the tag.
func (s *Store) PostsByTag(slug string) (TagCount, []Post, bool) {
	idx, ok := s.tagIndex[slug]
	if !ok {
		return TagCount{}, nil, false
	}

	indices := s.byTag[slug]
	posts := make([]Post, 0, len(indices))

	for _, i := range indices {
		posts = append(posts, s.posts[i])
	}

	return s.tags[idx], posts, true
}

var current atomic.Pointer[Store]

// Current returns the store serving requests. It is never nil.
func Current() *Store {
	if s := current.Load(); s != nil {
		return s
	}

	return NewStore(nil, false)
}

// SetCurrent replaces the store serving requests.
func SetCurrent(s *Store) {
	current.Store(s)
}

// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds how many post files are parsed at once.
const maxConcurrentReads = 8

// Load reads every post file in dir.
//
// A missing directory is not an error; it yields no posts.
func Load(ctx context.Context, dir string) ([]Post, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		log.Warn().
			Str("path", dir).
			Msg("Content directory not found, serving no posts")

		return nil, nil
	}

	return LoadFS(ctx, os.DirFS(dir), ".")
}

// LoadFS reads every *.yaml and *.yml file directly under dir in fsys as a Post.
//
// Files are parsed concurrently. The returned posts keep directory order.
func LoadFS(ctx context.Context, fsys fs.FS, dir string) ([]Post, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %q: %w", dir, err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() || !isPostFile(entry.Name()) {
			continue
		}

		names = append(names, path.Join(dir, entry.Name()))
	}

	posts := make([]Post, len(names))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentReads)

	for i, name := range names {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			post, err := readPost(fsys, name)
			if err != nil {
				return err
			}

			posts[i] = post

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Debug().
		Int("count", len(posts)).
		Str("path", dir).
		Msg("Parsed post files")

	return posts, nil
}

func readPost(fsys fs.FS, name string) (Post, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Post{}, fmt.Errorf("reading post %q: %w", name, err)
	}

	var post Post

	if err := yaml.UnmarshalWithOptions(data, &post, yaml.DisallowUnknownField()); err != nil {
		return Post{}, fmt.Errorf("parsing post %q: %w", name, err)
	}

	if err := post.normalize(); err != nil {
		return Post{}, fmt.Errorf("invalid post %q: %w", name, err)
	}

	return post, nil
}

func isPostFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

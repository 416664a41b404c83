// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package fragments holds the leaf components that pages are composed of.

They take no request state and render the same markup for the same input.
*/
package fragments

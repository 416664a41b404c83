// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package partials holds components that would otherwise be included under fragments/,
but are also served on their own by backend code.
*/
package partials

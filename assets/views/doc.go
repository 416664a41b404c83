// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views contains the full pages of the blog.

Each page has a XxxData struct and a function returning a templ.Component.
Pages are wrapped in [Layout], which reads the request's common data from the
render context and skips the document shell for htmx requests.
*/
package views

// Package main provides the entry point of barbersite, a server-rendered
// barbershop marketing site. It serves the landing page, an admin dashboard
// for business info, theme colors and the photo gallery, and a small JSON API.
// Content is kept in JSON documents on disk or in a SQL database. The
// create-shop command clones the site for another shop.
package main

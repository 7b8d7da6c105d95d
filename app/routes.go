// Package app declares the web UI's client-side navigation: the route table
// and the hash-history router built from it.
package app

import (
	"github.com/vcrobe/legcpu-web/components"
	"github.com/vcrobe/legcpu-web/router"
)

// NewRoutes returns the application's route table. Every call builds a new,
// equal table.
func NewRoutes() router.Table {
	return router.Table{
		{Path: "/", Component: components.LegCpuView},
	}
}

// NewHistory returns the history strategy the application navigates with.
// Hash addressing keeps the location out of the server-visible path.
func NewHistory() router.History {
	return router.NewHashHistory("")
}

// NewRouter builds a router from NewRoutes and NewHistory.
func NewRouter() *router.Router {
	return router.MustNew(router.Options{
		History: NewHistory(),
		Routes:  NewRoutes(),
	})
}

var (
	// Routes is the raw route table, exported for the bootstrap sequence.
	// Treat it as read-only: Router holds its own copy, so edits here do not
	// change navigation. Use NewRoutes or Router.Routes for a private copy.
	Routes = NewRoutes()

	// Router is the application router.
	Router = NewRouter()
)

package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath prefixes the JSON endpoints.
	APIPath = RootPath + "api"

	// ErrNilACDFatalLogMsg is used if app or cfg or deps var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or deps is nil"
)

package handler

const (
	// APIPath is the prefix of the public routes.
	APIPath = "/api"

	// AdminPath is the prefix of the token protected routes.
	AdminPath = APIPath + "/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// IDPath is the route suffix for a numeric id parameter.
	IDPath = "/:id"

	// ErrNilDepsLogMsg is used if a handler is initialized without its collaborators.
	ErrNilDepsLogMsg = "router or executor is nil"
)

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount in the account module.
// Each service is optional and will only be mounted if provided.
type RouterOptions struct {
	Password Mountable
	Profile  Mountable
}

// Router creates the account module router.
//
//	r.Mount("/", account.Router(account.RouterOptions{
//		Password: account.NewPasswordService(authenticate, register),
//		Profile:  account.NewProfileService(tokens),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Profile != nil {
		r.Mount("/me", opts.Profile.Handle())
	}
	if opts.Password != nil {
		r.Mount("/", opts.Password.Handle())
	}

	return r
}

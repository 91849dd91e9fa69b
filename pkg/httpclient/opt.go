package httpclient

import (
	"net/url"

	// Packages
	opt "github.com/mutablelogic/go-clinic/pkg/opt"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithPage sets the page number to return, starting at 1
func WithPage(page uint) opt.Opt {
	return opt.SetUint(opt.PageKey, page)
}

// WithLimit sets the number of results per page. The server accepts
// values between 1 and 100.
func WithLimit(limit uint) opt.Opt {
	return opt.SetUint(opt.LimitKey, limit)
}

// WithPatient filters conversations by patient. An empty id removes the filter.
func WithPatient(id string) opt.Opt {
	return opt.SetString(opt.PatientKey, id)
}

// WithTaskType filters conversations by task type. An empty value removes
// the filter.
func WithTaskType(task schema.TaskType) opt.Opt {
	return opt.SetString(opt.TaskTypeKey, string(task))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// listQuery applies the pagination defaults and then the caller's options,
// and returns the query for the given keys
func listQuery(opts []opt.Opt, keys ...string) (url.Values, error) {
	o, err := opt.Apply(append([]opt.Opt{
		opt.SetUint(opt.PageKey, DefaultPage),
		opt.SetUint(opt.LimitKey, DefaultLimit),
	}, opts...)...)
	if err != nil {
		return nil, err
	}
	return o.Query(append([]string{opt.PageKey, opt.LimitKey}, keys...)...), nil
}

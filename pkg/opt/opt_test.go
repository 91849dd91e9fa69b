package opt_test

import (
	"errors"
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-clinic/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func TestApplyEmpty(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("missing"))
	assert.Empty(opts.Query(opt.PageKey, opt.LimitKey))
}

func TestStringOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetString(opt.PatientKey, " abc "))
	assert.NoError(err)
	assert.Equal("abc", opts.GetString(opt.PatientKey))
	assert.Equal([]string{" abc "}, opts.Query(opt.PatientKey)[opt.PatientKey])
}

func TestStringOptionsEmptyRemoves(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetString(opt.TaskTypeKey, "diagnosis"), opt.SetString(opt.TaskTypeKey, ""))
	assert.NoError(err)
	assert.False(opts.Has(opt.TaskTypeKey))
}

func TestUintOptionsReplace(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetUint(opt.LimitKey, 20), opt.SetUint(opt.LimitKey, 5))
	assert.NoError(err)
	assert.Equal(uint(5), opts.GetUint(opt.LimitKey))
	assert.Equal([]string{"5"}, opts.Query(opt.LimitKey)[opt.LimitKey])
}

func TestQueryOmitsUnset(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetUint(opt.PageKey, 2))
	assert.NoError(err)
	query := opts.Query(opt.PageKey, opt.PatientKey)
	assert.Len(query, 1)
	assert.Equal("2", query.Get(opt.PageKey))
}

func TestWithOptsAndError(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.WithOpts(opt.SetUint(opt.PageKey, 3), opt.SetUint(opt.LimitKey, 7)))
	assert.NoError(err)
	assert.Equal(uint(3), opts.GetUint(opt.PageKey))
	assert.Equal(uint(7), opts.GetUint(opt.LimitKey))

	sentinel := errors.New("boom")
	_, err = opt.Apply(opt.SetUint(opt.PageKey, 1), opt.Error(sentinel))
	assert.ErrorIs(err, sentinel)
}

func TestNilOptionIgnored(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(nil, opt.SetUint(opt.PageKey, 1))
	assert.NoError(err)
	assert.Equal(uint(1), opts.GetUint(opt.PageKey))
}

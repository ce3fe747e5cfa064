//go:build !charconv_noassert

package assert

const enabled = true

//go:build charconv_fmt

package realconv

// activeBackend is the Backend the package formats and scans with.
type activeBackend = FmtBackend

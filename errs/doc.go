// Package errs centralizes libnn's sentinel error vocabulary so that every
// other package reports failures through the same five abstract kinds:
// index, shape, invariant, config, and parse errors. Use errors.Is against
// the exported sentinels; never match on message text.
package errs

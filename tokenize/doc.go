// Package tokenize strips spaces from an input line and splits it on commas.
//
// Tokens are chars views over the input; nothing is copied until a token is
// written or collected.
package tokenize

// Package xmltvlistings wraps the xmltvlistings.com download API.
//
// The API bills channel downloads against a small daily quota and signals
// exhaustion with a sentinel text inside a 200 response, so every payload
// goes through sanity checks before a caller is allowed to publish it over
// an existing file.
package xmltvlistings

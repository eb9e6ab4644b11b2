// Package log provides a credential-masking slog handler.
//
// Research runs carry a trade-API subscription key; the handler makes
// sure neither it nor any other credential-shaped attribute ever reaches
// the log sink in clear text.
package log

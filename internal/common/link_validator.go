package common

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidLink is returned when a submitted link is not a valid http(s) URL
var ErrInvalidLink = errors.New("links must be valid http or https URLs")

// ErrTooManyLinks is returned when a submission carries more links than allowed
var ErrTooManyLinks = errors.New("too many links")

// MaxLinks is the per-submission link limit for profiles and answers
const MaxLinks = 10

// ValidateLinks validates user-submitted links on author profiles and answers.
// Each link must parse as an absolute http or https URL with a host.
func ValidateLinks(links []string) error {
	if len(links) > MaxLinks {
		return ErrTooManyLinks
	}
	for _, link := range links {
		u, err := url.Parse(strings.TrimSpace(link))
		if err != nil {
			return ErrInvalidLink
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidLink
		}
	}
	return nil
}

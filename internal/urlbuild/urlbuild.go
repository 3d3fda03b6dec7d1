// Package urlbuild assembles server action URLs from a base address, a
// controller, an action, a container path and query parameters.
package urlbuild

import (
	"fmt"
	"net/url"
	"strings"
)

// Builder produces URLs of the form
//
//	{BaseURL}{ContextPath}/{controller}{containerPath}/{action}?{params}
type Builder struct {
	BaseURL     string
	ContextPath string
}

// New validates baseURL and returns a Builder. Trailing slashes are
// dropped from baseURL and contextPath.
func New(baseURL, contextPath string) (*Builder, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must include scheme and host", baseURL)
	}
	return &Builder{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		ContextPath: normalizePath(contextPath),
	}, nil
}

// Build returns the URL for controller/action in containerPath. Container
// segments are path-escaped; params are encoded sorted by key.
func (b *Builder) Build(controller, action, containerPath string, params url.Values) string {
	var sb strings.Builder
	sb.WriteString(b.BaseURL)
	sb.WriteString(b.ContextPath)
	sb.WriteString("/")
	sb.WriteString(url.PathEscape(controller))
	sb.WriteString(EncodeContainerPath(containerPath))
	sb.WriteString("/")
	sb.WriteString(url.PathEscape(action))
	if len(params) > 0 {
		sb.WriteString("?")
		sb.WriteString(params.Encode())
	}
	return sb.String()
}

// EncodeContainerPath returns containerPath with a leading slash, no
// trailing slash and each segment path-escaped. The root container is "".
func EncodeContainerPath(containerPath string) string {
	var parts []string
	for _, seg := range strings.Split(containerPath, "/") {
		if seg != "" {
			parts = append(parts, url.PathEscape(seg))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "/" + strings.Join(parts, "/")
}

func normalizePath(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

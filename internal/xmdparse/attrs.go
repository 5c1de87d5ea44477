package xmdparse

import "github.com/zadoox/xmd/internal/xmdattrs"

func parseAttrs(s string) map[string]string { return xmdattrs.Parse(s) }

func extractLabel(s string) string { return xmdattrs.Label(s) }

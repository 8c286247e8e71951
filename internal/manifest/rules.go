package manifest

import (
	"context"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/solo"
)

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	packagePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*$`)
)

type rule func(m *Manifest) error

func (r rule) check(ctx context.Context, in rop.Result[*Manifest]) rop.Result[*Manifest] {
	return solo.FailOnError(ctx, in, func(_ context.Context, m *Manifest) error { return r(m) })
}

var rules = []rule{
	checkName,
	checkPackages,
	checkVersion,
	checkAuthorEmail,
	checkURL("url", func(m *Manifest) string { return m.URL }),
	checkURL("download_url", func(m *Manifest) string { return m.DownloadURL }),
	checkKeywords,
	checkClassifiers,
}

// Validate runs every rule and reports all violations as one joined
// error of *FieldError values.
func Validate(ctx context.Context, m *Manifest) rop.Result[*Manifest] {
	if m == nil {
		return rop.Err[*Manifest](fieldErr("manifest", "missing"))
	}

	checks := make([]func(context.Context, rop.Result[*Manifest]) rop.Result[*Manifest], 0, len(rules))
	for _, r := range rules {
		checks = append(checks, r.check)
	}
	return solo.ValidateAll(ctx, rop.Ok(m), false, checks...)
}

// Warnings lists inconsistencies that do not make the manifest invalid.
func Warnings(m *Manifest) []string {
	var out []string

	if m.Name != "" && len(m.Packages) > 0 {
		normalized := strings.ReplaceAll(m.Name, "-", "_")
		found := false
		for _, p := range m.Packages {
			if p == m.Name || p == normalized {
				found = true
				break
			}
		}
		if !found {
			out = append(out, "name "+m.Name+" is not one of the declared packages")
		}
	}

	if m.DownloadURL != "" && m.Version != "" && !strings.Contains(m.DownloadURL, m.Version) {
		out = append(out, "download_url does not reference version "+m.Version)
	}

	return out
}

func checkName(m *Manifest) error {
	if !namePattern.MatchString(m.Name) {
		return fieldErr("name", "%q is not a valid distribution name", m.Name)
	}
	return nil
}

func checkPackages(m *Manifest) error {
	if len(m.Packages) == 0 {
		return fieldErr("packages", "at least one package is required")
	}
	seen := make(map[string]struct{}, len(m.Packages))
	for _, p := range m.Packages {
		if !packagePattern.MatchString(p) {
			return fieldErr("packages", "%q is not a dotted package name", p)
		}
		if _, dup := seen[p]; dup {
			return fieldErr("packages", "%q is listed twice", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

func checkVersion(m *Manifest) error {
	if _, err := SemVer(m.Version); err != nil {
		return fieldErr("version", "%v", err)
	}
	return nil
}

func checkAuthorEmail(m *Manifest) error {
	if m.AuthorEmail == "" {
		return nil
	}
	addr, err := mail.ParseAddress(m.AuthorEmail)
	if err != nil || addr.Address != m.AuthorEmail {
		return fieldErr("author_email", "%q is not a bare e-mail address", m.AuthorEmail)
	}
	return nil
}

func checkURL(field string, get func(m *Manifest) string) rule {
	return func(m *Manifest) error {
		raw := get(m)
		if raw == "" {
			return nil
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fieldErr(field, "%q is not an absolute http(s) URL", raw)
		}
		return nil
	}
}

func checkKeywords(m *Manifest) error {
	seen := make(map[string]struct{}, len(m.Keywords))
	for _, k := range m.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			return fieldErr("keywords", "empty keyword")
		}
		key := strings.ToLower(k)
		if _, dup := seen[key]; dup {
			return fieldErr("keywords", "%q is listed twice", k)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func checkClassifiers(m *Manifest) error {
	for _, c := range m.Classifiers {
		parts := strings.Split(c, " :: ")
		if len(parts) < 2 {
			return fieldErr("classifiers", "%q is not of the form \"Topic :: Subtopic\"", c)
		}
		for _, p := range parts {
			if strings.TrimSpace(p) == "" || strings.Contains(p, "::") {
				return fieldErr("classifiers", "%q has an empty or malformed segment", c)
			}
		}
	}
	return nil
}

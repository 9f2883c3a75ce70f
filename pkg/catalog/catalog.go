// Package catalog assembles the domain catalogs into one classification
// table for tooling, documentation and consistency checks.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
	"github.com/Goden-Gun/apperr-lib/pkg/auth"
	"github.com/Goden-Gun/apperr-lib/pkg/chat"
	"github.com/Goden-Gun/apperr-lib/pkg/group"
	"github.com/Goden-Gun/apperr-lib/pkg/notification"
	"github.com/Goden-Gun/apperr-lib/pkg/profile"
)

// DomainCatalog owns the errors of the catalog tooling itself.
const DomainCatalog apperr.Domain = "CATALOG"

var own = apperr.NewCatalog(DomainCatalog, "CATALOG")

var (
	KindCodeNotFound  = own.Define("CATALOG-001", "code_not_found", apperr.ShapeNotFound, "해당 오류 코드를 찾을 수 없습니다.")
	KindDomainUnknown = own.Define("CATALOG-002", "domain_unknown", apperr.ShapeInvalidInput, "알 수 없는 도메인입니다.")
)

func CodeNotFound(code string) *apperr.Error {
	return KindCodeNotFound.New(apperr.Detailf("no kind with code %q", code), apperr.Field("code", code))
}

func DomainUnknown(domain string) *apperr.Error {
	return KindDomainUnknown.New(apperr.Detailf("unknown domain %q", domain), apperr.Field("domain", domain))
}

// Catalogs returns the catalog of every domain, in domain order.
func Catalogs() []*apperr.Catalog {
	return []*apperr.Catalog{
		auth.Catalog(),
		own,
		chat.Catalog(),
		group.Catalog(),
		notification.Catalog(),
		profile.Catalog(),
	}
}

// Entry is one row of the classification table.
type Entry struct {
	Code        string `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Domain      string `json:"domain" yaml:"domain"`
	Category    string `json:"category" yaml:"category"`
	Shape       string `json:"shape" yaml:"shape"`
	HTTPStatus  int    `json:"httpStatus" yaml:"httpStatus"`
	Severity    string `json:"severity" yaml:"severity"`
	Retryable   bool   `json:"retryable" yaml:"retryable"`
	UserMessage string `json:"userMessage" yaml:"userMessage"`
}

func entryOf(k *apperr.Kind) Entry {
	return Entry{
		Code:        k.Code,
		Name:        k.Name,
		Domain:      string(k.Domain),
		Category:    string(k.Shape.Category),
		Shape:       k.Shape.Name,
		HTTPStatus:  k.Shape.HTTPStatus,
		Severity:    string(k.Shape.Severity),
		Retryable:   k.Shape.Retryable,
		UserMessage: k.UserMessage,
	}
}

// Entries lists the kinds of domain, or of every domain when domain is
// empty, sorted by domain then code.
func Entries(domain string) ([]Entry, error) {
	var kinds []*apperr.Kind
	for _, c := range Catalogs() {
		if domain != "" && !strings.EqualFold(domain, string(c.Domain())) {
			continue
		}
		kinds = append(kinds, c.Kinds()...)
	}
	if domain != "" && len(kinds) == 0 {
		return nil, DomainUnknown(domain)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if kinds[i].Domain != kinds[j].Domain {
			return kinds[i].Domain < kinds[j].Domain
		}
		return kinds[i].Code < kinds[j].Code
	})
	out := make([]Entry, len(kinds))
	for i, k := range kinds {
		out[i] = entryOf(k)
	}
	return out, nil
}

// Find returns the entry for code.
func Find(code string) (Entry, error) {
	k, ok := apperr.Lookup(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return Entry{}, CodeNotFound(code)
	}
	return entryOf(k), nil
}

// Check runs the classification policy over every kind and verifies that
// conditions with the same name in different domains share one shape.
func Check() error {
	errs := []error{apperr.CheckAll()}

	byName := make(map[string]*apperr.Kind)
	codes := make(map[string]bool)
	for _, c := range Catalogs() {
		for _, k := range c.Kinds() {
			if codes[k.Code] {
				errs = append(errs, fmt.Errorf("%s: defined twice", k.Code))
			}
			codes[k.Code] = true
			if prev, ok := byName[k.Name]; ok && prev.Shape != k.Shape {
				errs = append(errs, fmt.Errorf("%s and %s: %q classified as %s and %s",
					prev.Code, k.Code, k.Name, prev.Shape.Name, k.Shape.Name))
				continue
			}
			byName[k.Name] = k
		}
	}
	return errors.Join(errs...)
}
